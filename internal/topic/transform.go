package topic

import (
	"encoding/json"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

type notesPayload struct {
	Notes []Note `json:"notes"`
}

type quizPayload struct {
	Questions []struct {
		Question    string   `json:"question"`
		Options     []string `json:"options"`
		AnswerIndex int      `json:"answerIndex"`
		Explanation string   `json:"explanation"`
	} `json:"questions"`
}

func notesFromPayload(raw json.RawMessage) ([]Note, error) {
	var payload notesPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, apperr.Generation("model returned invalid output", err)
	}
	return payload.Notes, nil
}

// quizFromPayload splits the generated quiz into the public question views
// and the private solution set. Question and option ids are 1-based.
func quizFromPayload(raw json.RawMessage) ([]Question, []Solution, error) {
	var payload quizPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, nil, apperr.Generation("model returned invalid output", err)
	}

	questions := make([]Question, 0, len(payload.Questions))
	solutions := make([]Solution, 0, len(payload.Questions))

	for i, q := range payload.Questions {
		if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			return nil, nil, apperr.Generation("model returned invalid output", nil)
		}
		questionID := i + 1

		options := make([]Option, 0, len(q.Options))
		for j, value := range q.Options {
			options = append(options, Option{ID: j + 1, Value: value})
		}

		questions = append(questions, Question{
			ID:       questionID,
			Question: q.Question,
			Options:  options,
		})
		solutions = append(solutions, Solution{
			QuestionID: questionID,
			Question:   q.Question,
			Answer: Answer{
				OptionID:    q.AnswerIndex + 1,
				OptionIndex: q.AnswerIndex,
				Value:       q.Options[q.AnswerIndex],
				Explanation: q.Explanation,
			},
		})
	}

	return questions, solutions, nil
}
