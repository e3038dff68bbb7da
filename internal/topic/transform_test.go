package topic

import (
	"encoding/json"
	"testing"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

func TestQuizFromPayload(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{
				"question": "What is a goroutine?",
				"options": ["a thread", "a lightweight routine", "a process", "a channel"],
				"answerIndex": 1,
				"explanation": "Goroutines are lightweight."
			},
			{
				"question": "What does chan do?",
				"options": ["locks", "communicates", "sleeps", "panics"],
				"answerIndex": 1,
				"explanation": "Channels communicate."
			}
		]
	}`)

	questions, solutions, err := quizFromPayload(raw)
	if err != nil {
		t.Fatalf("quizFromPayload failed: %v", err)
	}

	if len(questions) != 2 || len(solutions) != 2 {
		t.Fatalf("want 2 questions and 2 solutions, got %d and %d", len(questions), len(solutions))
	}

	q := questions[0]
	if q.ID != 1 {
		t.Errorf("question ids are 1-based, got %d", q.ID)
	}
	if len(q.Options) != 4 || q.Options[0].ID != 1 || q.Options[3].ID != 4 {
		t.Errorf("option ids must be 1-based and ordered, got %+v", q.Options)
	}

	s := solutions[0]
	if s.QuestionID != 1 {
		t.Errorf("solution must reference its question, got %d", s.QuestionID)
	}
	if s.Answer.OptionID != 2 || s.Answer.OptionIndex != 1 {
		t.Errorf("answerIndex 1 must map to optionId 2 / optionIndex 1, got %+v", s.Answer)
	}
	if s.Answer.Value != "a lightweight routine" {
		t.Errorf("solution value must be the correct option text, got %q", s.Answer.Value)
	}
	if s.Answer.Explanation != "Goroutines are lightweight." {
		t.Errorf("solution must keep the explanation, got %q", s.Answer.Explanation)
	}
}

func TestQuizFromPayloadRejectsOutOfRangeIndex(t *testing.T) {
	raw := json.RawMessage(`{
		"questions": [
			{"question": "q", "options": ["a", "b", "c", "d"], "answerIndex": 4, "explanation": "e"}
		]
	}`)

	_, _, err := quizFromPayload(raw)
	if !apperr.IsKind(err, apperr.KindGeneration) {
		t.Errorf("answerIndex outside the options must be a generation error, got %v", err)
	}
}

func TestNotesFromPayload(t *testing.T) {
	raw := json.RawMessage(`{"notes":[{"title":"Basics","description":"## Intro\nSome markdown"}]}`)

	notes, err := notesFromPayload(raw)
	if err != nil {
		t.Fatalf("notesFromPayload failed: %v", err)
	}
	if len(notes) != 1 || notes[0].Title != "Basics" {
		t.Errorf("unexpected notes: %+v", notes)
	}
}
