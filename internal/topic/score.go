package topic

import (
	"math"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

// applyAnswer records one submission on the topic: appends to the attempts
// log, recomputes progress, and sets the completion flag. The caller persists
// the mutated topic under a row lock.
func applyAnswer(t *Topic, questionID, optionID int) (*AnswerResult, error) {
	if len(t.Solutions) == 0 {
		return nil, apperr.Validation("quiz has not been generated for this topic", nil)
	}

	var solution *Solution
	for i := range t.Solutions {
		if t.Solutions[i].QuestionID == questionID {
			solution = &t.Solutions[i]
			break
		}
	}
	if solution == nil {
		return nil, apperr.NotFound("question not found in quiz")
	}

	isCorrect := optionID == solution.Answer.OptionID

	t.Attempts = append(t.Attempts, Attempt{
		QuestionID: questionID,
		AnswerID:   optionID,
		IsCorrect:  isCorrect,
	})
	t.Progress = computeProgress(t.Attempts, len(t.Questions))
	t.IsCompleted = t.Progress >= 100

	return &AnswerResult{
		IsCorrect:     isCorrect,
		CorrectAnswer: *solution,
		Progress:      t.Progress,
		IsCompleted:   t.IsCompleted,
	}, nil
}

// computeProgress counts distinct questions answered, not raw attempts, so
// re-answering the same question never inflates progress.
func computeProgress(attempts []Attempt, totalQuestions int) int {
	if totalQuestions == 0 {
		return 0
	}

	answered := make(map[int]struct{}, len(attempts))
	for _, a := range attempts {
		answered[a.QuestionID] = struct{}{}
	}

	progress := int(math.Round(100 * float64(len(answered)) / float64(totalQuestions)))
	if progress > 100 {
		progress = 100
	}
	return progress
}
