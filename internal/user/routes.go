package user

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/me", h.GetUser)
	r.Patch("/me", h.UpdateProfile)
	r.Post("/update-password", h.UpdatePassword)
	r.Post("/logout", h.Logout)
	return r
}
