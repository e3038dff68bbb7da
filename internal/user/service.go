package user

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
	"github.com/abhinav-rai/pathcraft/internal/auth"
	"github.com/abhinav-rai/pathcraft/internal/config"
)

type Service interface {
	Register(ctx context.Context, dto RegisterDTO) (*User, error)
	Login(ctx context.Context, dto LoginDTO) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	GetByID(ctx context.Context, userID uuid.UUID) (*User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*User, error)
	UpdatePassword(ctx context.Context, userID uuid.UUID, dto UpdatePasswordDTO) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, dto RegisterDTO) (*User, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Username) == "" || strings.TrimSpace(dto.Email) == "" || dto.Password == "" {
		return nil, apperr.Validation("userName, email and password are required", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Persistence("failed to register user", err)
	}

	u := &User{
		ID:       uuid.New(),
		Username: dto.Username,
		Email:    strings.ToLower(strings.TrimSpace(dto.Email)),
		Password: string(hash),
	}

	if err := s.repo.Create(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("user already exists", nil)
		}
		log.WithError(err).Error("Failed to create user")
		return nil, apperr.Persistence("failed to register user", err)
	}

	log.Infof("User %s registered", u.Email)
	return u, nil
}

func (s *service) Login(ctx context.Context, dto LoginDTO) (*TokenPair, error) {
	log := config.WithContext(ctx)

	if dto.Email == "" || dto.Password == "" {
		return nil, apperr.Validation("email and password are required", nil)
	}

	u, err := s.repo.GetByEmail(strings.ToLower(strings.TrimSpace(dto.Email)))
	if err != nil {
		return nil, apperr.Persistence("failed to log in", err)
	}
	if u == nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.Password)); err != nil {
		return nil, apperr.Unauthorized("invalid credentials")
	}

	pair, err := s.issueTokens(u.ID)
	if err != nil {
		log.WithError(err).Error("Failed to issue tokens")
		return nil, apperr.Persistence("failed to log in", err)
	}
	return pair, nil
}

func (s *service) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if refreshToken == "" {
		return nil, apperr.Unauthorized("refresh token required")
	}

	claims, err := auth.ValidateJWT(refreshToken)
	if err != nil || claims.TokenType != "refresh" {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	u, err := s.repo.GetByID(uuid.MustParse(claims.UserID))
	if err != nil {
		return nil, apperr.Persistence("failed to refresh session", err)
	}
	if u == nil || u.RefreshToken == "" {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	stored, err := config.Decrypt(u.RefreshToken)
	if err != nil || stored != refreshToken {
		return nil, apperr.Unauthorized("invalid refresh token")
	}

	pair, err := s.issueTokens(u.ID)
	if err != nil {
		return nil, apperr.Persistence("failed to refresh session", err)
	}
	return pair, nil
}

func (s *service) Logout(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.UpdateRefreshToken(userID, ""); err != nil {
		return apperr.Persistence("failed to log out", err)
	}
	return nil
}

func (s *service) GetByID(ctx context.Context, userID uuid.UUID) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, apperr.Persistence("failed to fetch user", err)
	}
	if u == nil {
		return nil, apperr.NotFound("user not found")
	}
	return u, nil
}

func (s *service) UpdateProfile(ctx context.Context, userID uuid.UUID, dto UpdateProfileDTO) (*User, error) {
	log := config.WithContext(ctx)

	if strings.TrimSpace(dto.Username) == "" || strings.TrimSpace(dto.Email) == "" {
		return nil, apperr.Validation("userName and email are required", nil)
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	u.Username = dto.Username
	u.Email = strings.ToLower(strings.TrimSpace(dto.Email))

	if err := s.repo.Update(u); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Validation("email already in use", nil)
		}
		log.WithError(err).Error("Failed to update user")
		return nil, apperr.Persistence("failed to update user", err)
	}

	return u, nil
}

func (s *service) UpdatePassword(ctx context.Context, userID uuid.UUID, dto UpdatePasswordDTO) error {
	log := config.WithContext(ctx)

	if dto.NewPassword == "" {
		return apperr.Validation("newPassword is required", nil)
	}

	u, err := s.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(dto.CurrentPassword)); err != nil {
		return apperr.Unauthorized("current password is incorrect")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(dto.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Persistence("failed to update password", err)
	}
	u.Password = string(hash)

	if err := s.repo.Update(u); err != nil {
		log.WithError(err).Error("Failed to update password")
		return apperr.Persistence("failed to update password", err)
	}

	return nil
}

// issueTokens rotates the pair: the new refresh token replaces the stored one
// (encrypted at rest), invalidating any previously issued refresh token.
func (s *service) issueTokens(userID uuid.UUID) (*TokenPair, error) {
	accessToken, err := auth.GenerateJWT(userID.String(), "access", auth.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := auth.GenerateJWT(userID.String(), "refresh", auth.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}

	encrypted, err := config.Encrypt(refreshToken)
	if err != nil {
		return nil, err
	}
	if err := s.repo.UpdateRefreshToken(userID, encrypted); err != nil {
		return nil, err
	}

	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
