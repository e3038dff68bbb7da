package course

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/create", h.Create)
	r.Get("/", h.List)
	r.Get("/{slug}", h.Get)

	return r
}
