package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	Username string    `gorm:"type:text;not null" json:"username"`
	Email    string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	// bcrypt hash, never serialized
	Password  string `gorm:"type:text;not null" json:"-"`
	AvatarURL string `gorm:"type:text" json:"avatar_url,omitempty"`
	// current refresh token, AES-GCM encrypted at rest
	RefreshToken string    `gorm:"type:text" json:"-"`
	CreatedAt    time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}
