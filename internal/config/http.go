package config

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

// Envelope is the response shape every endpoint returns.
type Envelope struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
}

func JSON(w http.ResponseWriter, status int, data interface{}) {
	JSONMessage(w, status, data, "success")
}

func JSONMessage(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(Envelope{
		StatusCode: status,
		Data:       data,
		Message:    message,
	}); err != nil {
		WithContext(context.Background()).WithError(err).Error("Failed to encode response")
	}
}

// Error maps any service error to its envelope. Unknown errors are reported
// as internal failures without leaking their message.
func Error(w http.ResponseWriter, err error) {
	e := apperr.From(err)
	JSONMessage(w, e.StatusCode(), nil, e.Message)
}
