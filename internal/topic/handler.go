package topic

import (
	"encoding/json"
	"net/http"

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

func (h *Handler) CreateNotes(w http.ResponseWriter, r *http.Request) {
	h.createArtifact(w, r, KindNotes)
}

func (h *Handler) CreateQuiz(w http.ResponseWriter, r *http.Request) {
	h.createArtifact(w, r, KindQuiz)
}

func (h *Handler) createArtifact(w http.ResponseWriter, r *http.Request, kind ArtifactKind) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to generate artifact")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CreateArtifactDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.CourseID == uuid.Nil || dto.TopicSlug == "" {
		http.Error(w, "courseId and topicSlug are required", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)

	var t *Topic
	if kind == KindNotes {
		t, err = h.service.GenerateNotes(r.Context(), userID, dto.CourseID, dto.TopicSlug)
	} else {
		t, err = h.service.GenerateQuiz(r.Context(), userID, dto.CourseID, dto.TopicSlug)
	}
	if err != nil {
		log.WithError(err).Errorf("Failed to generate %s artifact", kind)
		config.Error(w, err)
		return
	}

	config.JSONMessage(w, http.StatusCreated, t, "Artifact generated")
}

func (h *Handler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to check answer")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto CheckAnswerDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if dto.CourseID == uuid.Nil || dto.TopicSlug == "" {
		http.Error(w, "courseId and topicSlug are required", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	result, err := h.service.CheckAnswer(r.Context(), userID, dto)
	if err != nil {
		log.WithError(err).Error("Failed to check answer")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, result)
}

func (h *Handler) ListTopics(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated to list topics")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	courseID, err := uuid.Parse(r.URL.Query().Get("courseId"))
	if err != nil {
		http.Error(w, "valid courseId query parameter required", http.StatusBadRequest)
		return
	}

	userID := uuid.MustParse(claims.UserID)
	views, err := h.service.ListTopics(r.Context(), userID, courseID)
	if err != nil {
		log.WithError(err).Error("Failed to list topics")
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, views)
}
