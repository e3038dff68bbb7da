package course

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/abhinav-rai/pathcraft/internal/auth"
	"github.com/abhinav-rai/pathcraft/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to create learning path")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateCourseDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	course, err := h.service.CreateFromPrompt(r.Context(), userID, dto.UserPrompt)
	if err != nil {
		log.WithError(err).Error("Failed to create learning path")
		config.Error(w, err)
		return
	}

	config.JSONMessage(w, http.StatusCreated, course, "New course created")
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to list learning paths")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	courses, err := h.service.List(r.Context(), userID)
	if err != nil {
		log.WithError(err).Error("Failed to list learning paths")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, courses)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to fetch learning path")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	slug := chi.URLParam(r, "slug")
	if slug == "" {
		http.Error(w, "slug required", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	course, err := h.service.GetBySlug(r.Context(), userID, slug)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, course)
}
