package topic

import (
	"testing"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

func quizTopic(questionCount int) *Topic {
	t := &Topic{Slug: "intro", Title: "Intro"}
	for i := 1; i <= questionCount; i++ {
		t.Questions = append(t.Questions, Question{
			ID:       i,
			Question: "q",
			Options: []Option{
				{ID: 1, Value: "a"}, {ID: 2, Value: "b"},
				{ID: 3, Value: "c"}, {ID: 4, Value: "d"},
			},
		})
		t.Solutions = append(t.Solutions, Solution{
			QuestionID: i,
			Question:   "q",
			Answer:     Answer{OptionID: 2, OptionIndex: 1, Value: "b", Explanation: "because"},
		})
	}
	return t
}

func TestApplyAnswer(t *testing.T) {
	t.Run("CorrectAnswer", func(t *testing.T) {
		topic := quizTopic(8)

		result, err := applyAnswer(topic, 1, 2)
		if err != nil {
			t.Fatalf("applyAnswer failed: %v", err)
		}
		if !result.IsCorrect {
			t.Error("submitting the solution's optionId must be correct")
		}
		if result.CorrectAnswer.Answer.Explanation != "because" {
			t.Error("result must carry the full solution for feedback")
		}
	})

	t.Run("WrongAnswer", func(t *testing.T) {
		topic := quizTopic(8)

		result, err := applyAnswer(topic, 1, 3)
		if err != nil {
			t.Fatalf("applyAnswer failed: %v", err)
		}
		if result.IsCorrect {
			t.Error("any option other than the solution must be incorrect")
		}
		if result.CorrectAnswer.Answer.OptionID != 2 {
			t.Error("wrong answers still return the correct solution")
		}
	})

	t.Run("UnknownQuestion", func(t *testing.T) {
		topic := quizTopic(8)

		_, err := applyAnswer(topic, 99, 1)
		if !apperr.IsKind(err, apperr.KindNotFound) {
			t.Errorf("want not-found for unknown question, got %v", err)
		}
		if len(topic.Attempts) != 0 {
			t.Error("failed submissions must not be recorded")
		}
	})

	t.Run("NoQuizGenerated", func(t *testing.T) {
		topic := &Topic{Slug: "intro"}

		_, err := applyAnswer(topic, 1, 1)
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error when no quiz exists, got %v", err)
		}
	})

	t.Run("AttemptsAreAppendOnly", func(t *testing.T) {
		topic := quizTopic(8)

		for i := 0; i < 5; i++ {
			if _, err := applyAnswer(topic, 1, 2); err != nil {
				t.Fatalf("applyAnswer failed: %v", err)
			}
		}
		if len(topic.Attempts) != 5 {
			t.Errorf("5 submissions must produce 5 attempts, got %d", len(topic.Attempts))
		}
	})

	t.Run("ProgressScenario", func(t *testing.T) {
		topic := quizTopic(8)

		result, err := applyAnswer(topic, 1, 2)
		if err != nil {
			t.Fatalf("applyAnswer failed: %v", err)
		}
		if result.Progress != 13 {
			t.Errorf("1 of 8 questions answered: want progress 13, got %d", result.Progress)
		}

		for q := 2; q <= 8; q++ {
			if result, err = applyAnswer(topic, q, 2); err != nil {
				t.Fatalf("applyAnswer failed: %v", err)
			}
		}
		if result.Progress != 100 {
			t.Errorf("all 8 questions answered: want progress 100, got %d", result.Progress)
		}
		if !result.IsCompleted {
			t.Error("topic must be completed at progress 100")
		}
	})
}

func TestComputeProgress(t *testing.T) {
	attempts := func(questionIDs ...int) []Attempt {
		out := make([]Attempt, 0, len(questionIDs))
		for _, id := range questionIDs {
			out = append(out, Attempt{QuestionID: id, AnswerID: 1})
		}
		return out
	}

	t.Run("DistinctQuestionsCounted", func(t *testing.T) {
		// 4 attempts but only 2 distinct questions
		if got := computeProgress(attempts(1, 1, 1, 2), 8); got != 25 {
			t.Errorf("want 25, got %d", got)
		}
	})

	t.Run("CappedAt100", func(t *testing.T) {
		if got := computeProgress(attempts(1, 2, 3), 2); got != 100 {
			t.Errorf("want 100, got %d", got)
		}
	})

	t.Run("ZeroQuestions", func(t *testing.T) {
		if got := computeProgress(attempts(1), 0); got != 0 {
			t.Errorf("want 0 for empty quiz, got %d", got)
		}
	})

	t.Run("Rounding", func(t *testing.T) {
		if got := computeProgress(attempts(1), 3); got != 33 {
			t.Errorf("want 33, got %d", got)
		}
		if got := computeProgress(attempts(1, 2), 3); got != 67 {
			t.Errorf("want 67, got %d", got)
		}
	})
}
