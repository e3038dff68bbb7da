package user

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

type fakeRepo struct {
	users     map[uuid.UUID]*User
	updateErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{users: make(map[uuid.UUID]*User)}
}

func (f *fakeRepo) Create(u *User) error {
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) Update(u *User) error {
	if f.updateErr != nil {
		return f.updateErr
	}
	f.users[u.ID] = u
	return nil
}

func (f *fakeRepo) GetByID(id uuid.UUID) (*User, error) {
	return f.users[id], nil
}

func (f *fakeRepo) GetByEmail(email string) (*User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (f *fakeRepo) UpdateRefreshToken(id uuid.UUID, encryptedToken string) error {
	if u, ok := f.users[id]; ok {
		u.RefreshToken = encryptedToken
	}
	return nil
}

func seedUser(t *testing.T, repo *fakeRepo, password string) *User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt failed: %v", err)
	}
	u := &User{
		ID:       uuid.New(),
		Username: "abhinav",
		Email:    "abhinav@example.com",
		Password: string(hash),
	}
	repo.users[u.ID] = u
	return u
}

func TestUpdatePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "old-password")
		svc := NewService(repo)

		err := svc.UpdatePassword(ctx, u.ID, UpdatePasswordDTO{
			CurrentPassword: "old-password",
			NewPassword:     "new-password",
		})
		if err != nil {
			t.Fatalf("UpdatePassword failed: %v", err)
		}

		stored := repo.users[u.ID]
		if err := bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("new-password")); err != nil {
			t.Error("stored hash must verify against the new password")
		}
	})

	t.Run("WrongCurrentPassword", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "old-password")
		svc := NewService(repo)

		err := svc.UpdatePassword(ctx, u.ID, UpdatePasswordDTO{
			CurrentPassword: "not-the-password",
			NewPassword:     "new-password",
		})
		if !apperr.IsKind(err, apperr.KindUnauthorized) {
			t.Errorf("want unauthorized for a wrong current password, got %v", err)
		}
		if err := bcrypt.CompareHashAndPassword([]byte(repo.users[u.ID].Password), []byte("old-password")); err != nil {
			t.Error("a failed update must not touch the stored hash")
		}
	})

	t.Run("MissingNewPassword", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "old-password")
		svc := NewService(repo)

		err := svc.UpdatePassword(ctx, u.ID, UpdatePasswordDTO{CurrentPassword: "old-password"})
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error without a new password, got %v", err)
		}
	})

	t.Run("UnknownUser", func(t *testing.T) {
		svc := NewService(newFakeRepo())

		err := svc.UpdatePassword(ctx, uuid.New(), UpdatePasswordDTO{
			CurrentPassword: "x", NewPassword: "y",
		})
		if !apperr.IsKind(err, apperr.KindNotFound) {
			t.Errorf("want not-found for unknown user, got %v", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "pw")
		svc := NewService(repo)

		updated, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileDTO{
			Username: "abhinav-rai",
			Email:    "  Abhinav.Rai@Example.com ",
		})
		if err != nil {
			t.Fatalf("UpdateProfile failed: %v", err)
		}
		if updated.Username != "abhinav-rai" {
			t.Errorf("want updated username, got %q", updated.Username)
		}
		if updated.Email != "abhinav.rai@example.com" {
			t.Errorf("email must be normalized, got %q", updated.Email)
		}
	})

	t.Run("MissingFields", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "pw")
		svc := NewService(repo)

		_, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileDTO{Username: "x", Email: " "})
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error for blank email, got %v", err)
		}
	})

	t.Run("EmailTaken", func(t *testing.T) {
		repo := newFakeRepo()
		u := seedUser(t, repo, "pw")
		repo.updateErr = gorm.ErrDuplicatedKey
		svc := NewService(repo)

		_, err := svc.UpdateProfile(ctx, u.ID, UpdateProfileDTO{
			Username: "abhinav",
			Email:    "taken@example.com",
		})
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error for a taken email, got %v", err)
		}
	})
}
