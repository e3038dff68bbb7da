package user

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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.Register(r.Context(), dto)
	if err != nil {
		log.WithError(err).Error("Failed to register user")
		config.Error(w, err)
		return
	}

	config.JSONMessage(w, http.StatusCreated, u, "User created successfully")
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	pair, err := h.service.Login(r.Context(), dto)
	if err != nil {
		config.Error(w, err)
		return
	}

	auth.SetTokenCookies(w, pair.AccessToken, pair.RefreshToken)
	config.JSONMessage(w, http.StatusOK, nil, "User logged in successfully")
}

func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	refreshToken := ""
	if cookie, err := r.Cookie(auth.RefreshTokenCookie); err == nil {
		refreshToken = cookie.Value
	}
	if refreshToken == "" {
		var body struct {
			RefreshToken string `json:"refreshToken"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			refreshToken = body.RefreshToken
		}
	}

	pair, err := h.service.Refresh(r.Context(), refreshToken)
	if err != nil {
		config.Error(w, err)
		return
	}

	auth.SetTokenCookies(w, pair.AccessToken, pair.RefreshToken)
	config.JSONMessage(w, http.StatusOK, nil, "Session refreshed")
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.service.Logout(r.Context(), uuid.MustParse(claims.UserID)); err != nil {
		log.WithError(err).Error("Failed to log out")
		config.Error(w, err)
		return
	}

	auth.ClearTokenCookies(w)
	config.JSONMessage(w, http.StatusOK, nil, "User logged out")
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), uuid.MustParse(claims.UserID), dto)
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSONMessage(w, http.StatusOK, u, "User updated")
}

func (h *Handler) UpdatePassword(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var dto UpdatePasswordDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.service.UpdatePassword(r.Context(), uuid.MustParse(claims.UserID), dto); err != nil {
		config.Error(w, err)
		return
	}

	config.JSONMessage(w, http.StatusOK, nil, "Password updated")
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	u, err := h.service.GetByID(r.Context(), uuid.MustParse(claims.UserID))
	if err != nil {
		config.Error(w, err)
		return
	}

	config.JSON(w, http.StatusOK, u)
}
