package topic

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/create-notes", h.CreateNotes)
	r.Post("/create-quiz", h.CreateQuiz)
	r.Post("/check-answer", h.CheckAnswer)
	r.Get("/", h.ListTopics)

	return r
}
