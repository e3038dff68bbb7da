package topic

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type ArtifactKind string

const (
	KindNotes ArtifactKind = "notes"
	KindQuiz  ArtifactKind = "quiz"
)

// Note is one section of generated study notes. Description holds markdown.
type Note struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// Option ids are 1-based display ids.
type Option struct {
	ID    int    `json:"id"`
	Value string `json:"value"`
}

// Question is the public view of a quiz question. It never carries the
// correct answer.
type Question struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

type Answer struct {
	OptionID    int    `json:"optionId"`
	OptionIndex int    `json:"optionIndex"`
	Value       string `json:"value"`
	Explanation string `json:"explanation"`
}

// Solution is the private counterpart of a Question. Exposed only through
// the answer checker, never through artifact reads or topic listings.
type Solution struct {
	QuestionID int    `json:"questionId"`
	Question   string `json:"question"`
	Answer     Answer `json:"answer"`
}

// Attempt is one recorded answer submission. The log is append-only and
// re-attempts of the same question are allowed.
type Attempt struct {
	QuestionID int  `json:"questionId"`
	AnswerID   int  `json:"answerId"`
	IsCorrect  bool `json:"isCorrect"`
}

// Topic is the materialized per-user record for one catalog entry,
// at most one per (course, user, slug).
type Topic struct {
	ID          uuid.UUID                     `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	CourseID    uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex:idx_topics_course_user_slug" json:"course_id"`
	UserID      uuid.UUID                     `gorm:"type:uuid;not null;uniqueIndex:idx_topics_course_user_slug" json:"user_id"`
	Slug        string                        `gorm:"type:text;not null;uniqueIndex:idx_topics_course_user_slug" json:"slug"`
	Title       string                        `gorm:"type:text;not null" json:"title"`
	Description string                        `gorm:"type:text;not null" json:"description"`
	Notes       datatypes.JSONSlice[Note]     `gorm:"type:jsonb" json:"notes"`
	Questions   datatypes.JSONSlice[Question] `gorm:"type:jsonb" json:"questions"`
	Solutions   datatypes.JSONSlice[Solution] `gorm:"type:jsonb" json:"-"`
	Attempts    datatypes.JSONSlice[Attempt]  `gorm:"type:jsonb" json:"attempts"`
	Progress    int                           `gorm:"not null;default:0" json:"progress"`
	IsCompleted bool                          `gorm:"not null;default:false" json:"is_completed"`
	CreatedAt   time.Time                     `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                     `gorm:"autoUpdateTime" json:"updated_at"`
}

// HasArtifact reports whether the artifact of the given kind has already been
// generated. Generation is skipped entirely when it has.
func (t *Topic) HasArtifact(kind ArtifactKind) bool {
	switch kind {
	case KindNotes:
		return len(t.Notes) > 0
	case KindQuiz:
		return len(t.Questions) > 0 && len(t.Solutions) > 0
	default:
		return false
	}
}
