package topic

import "github.com/google/uuid"

type CreateArtifactDTO struct {
	CourseID  uuid.UUID `json:"courseId"`
	TopicSlug string    `json:"topicSlug"`
}

type CheckAnswerDTO struct {
	CourseID   uuid.UUID `json:"courseId"`
	TopicSlug  string    `json:"topicSlug"`
	QuestionID int       `json:"questionId"`
	OptionID   int       `json:"optionId"`
}

// AnswerResult is the immediate feedback for one submission. The full
// solution is intentionally included here, and only here.
type AnswerResult struct {
	IsCorrect     bool     `json:"isCorrect"`
	CorrectAnswer Solution `json:"correctAnswer"`
	Progress      int      `json:"progress"`
	IsCompleted   bool     `json:"isCompleted"`
}

// TopicView is one catalog entry overlaid with the user's materialized state.
type TopicView struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	IsActive    bool     `json:"isActive"`
	IsStarted   bool     `json:"isStarted"`
	HasNotes    bool     `json:"hasNotes"`
	HasQuiz     bool     `json:"hasQuiz"`
	Progress    int      `json:"progress"`
	IsCompleted bool     `json:"isCompleted"`
}
