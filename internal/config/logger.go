package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var logger *logrus.Logger

func Init() {
	logger = logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
}

// WithContext returns a log entry carrying the chi request ID when present.
func WithContext(ctx context.Context) *logrus.Entry {
	if logger == nil {
		Init()
	}

	entry := logrus.NewEntry(logger)
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		entry = entry.WithField("request_id", reqID)
	}
	return entry
}
