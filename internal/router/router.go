package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/abhinav-rai/pathcraft/internal/auth"
	"github.com/abhinav-rai/pathcraft/internal/config"
	"github.com/abhinav-rai/pathcraft/internal/course"
	"github.com/abhinav-rai/pathcraft/internal/middlewares"
	"github.com/abhinav-rai/pathcraft/internal/topic"
	"github.com/abhinav-rai/pathcraft/internal/user"
)

type RouterConfig struct {
	UserHandler   *user.Handler
	CourseHandler *course.Handler
	TopicHandler  *topic.Handler
}

func New(cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.CorsMiddleware)

	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		config.JSONMessage(w, http.StatusOK, nil, "pong")
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", cfg.UserHandler.Register)
		r.Post("/login", cfg.UserHandler.Login)
		r.Post("/refresh", cfg.UserHandler.Refresh)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/users", user.Routes(cfg.UserHandler))
		r.Mount("/learning-paths", course.Routes(cfg.CourseHandler))
		r.Mount("/topics", topic.Routes(cfg.TopicHandler))
	})

	return r
}
