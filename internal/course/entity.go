package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// TopicSpec is one entry of the generated course catalog. It has no lifecycle
// of its own; materialized per-user topic records reference it by slug.
type TopicSpec struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Slug        string   `json:"slug"`
	Tags        []string `json:"tags"`
}

type Course struct {
	ID                   uuid.UUID                      `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID               uuid.UUID                      `gorm:"type:uuid;not null;index" json:"user_id"`
	Slug                 string                         `gorm:"type:text;not null;uniqueIndex" json:"slug"`
	Title                string                         `gorm:"type:text;not null" json:"title"`
	Description          string                         `gorm:"type:text;not null" json:"description"`
	Level                string                         `gorm:"type:text" json:"level"`
	Tags                 datatypes.JSONSlice[string]    `gorm:"type:jsonb" json:"tags"`
	Topics               datatypes.JSONSlice[TopicSpec] `gorm:"type:jsonb;not null" json:"topics"`
	TopicsCount          int                            `gorm:"not null;default:0" json:"topics_count"`
	CompletedTopicsCount int                            `gorm:"not null;default:0" json:"completed_topics_count"`
	Progress             int                            `gorm:"not null;default:0" json:"progress"`
	CreatedAt            time.Time                      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time                      `gorm:"autoUpdateTime" json:"updated_at"`
}
