package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

var testSchema = &Schema{
	Name: "test-artifact",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{"type": "string", "minLength": 1},
			"items": map[string]any{
				"type":     "array",
				"minItems": 4,
				"maxItems": 4,
				"items":    map[string]any{"type": "string"},
			},
			"answerIndex": map[string]any{
				"type":    "integer",
				"minimum": 0,
				"maximum": 3,
			},
		},
		"required":             []any{"title", "items", "answerIndex"},
		"additionalProperties": false,
	},
}

func TestValidate(t *testing.T) {
	t.Run("ValidPayload", func(t *testing.T) {
		raw := json.RawMessage(`{"title":"ok","items":["a","b","c","d"],"answerIndex":2}`)
		if err := Validate(testSchema, raw); err != nil {
			t.Errorf("valid payload rejected: %v", err)
		}
	})

	t.Run("NotJSON", func(t *testing.T) {
		err := Validate(testSchema, json.RawMessage(`here is your quiz: {`))
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error for malformed JSON, got %v", err)
		}
	})

	t.Run("MissingRequiredField", func(t *testing.T) {
		err := Validate(testSchema, json.RawMessage(`{"items":["a","b","c","d"],"answerIndex":0}`))
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error for missing field, got %v", err)
		}
	})

	t.Run("WrongCardinality", func(t *testing.T) {
		err := Validate(testSchema, json.RawMessage(`{"title":"ok","items":["a","b","c"],"answerIndex":0}`))
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error for 3 items, got %v", err)
		}
	})

	t.Run("OutOfRangeIndex", func(t *testing.T) {
		err := Validate(testSchema, json.RawMessage(`{"title":"ok","items":["a","b","c","d"],"answerIndex":4}`))
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error for answerIndex 4, got %v", err)
		}
	})

	t.Run("WrongType", func(t *testing.T) {
		err := Validate(testSchema, json.RawMessage(`{"title":1,"items":["a","b","c","d"],"answerIndex":0}`))
		if !apperr.IsKind(err, apperr.KindValidation) {
			t.Errorf("want validation error for wrong type, got %v", err)
		}
	})

	t.Run("NilSchema", func(t *testing.T) {
		if err := Validate(nil, json.RawMessage(`{}`)); err != nil {
			t.Errorf("nil schema should accept anything, got %v", err)
		}
	})
}

func TestCleanFences(t *testing.T) {
	cases := map[string]string{
		"{\"a\":1}":                      `{"a":1}`,
		"```json\n{\"a\":1}\n```":        `{"a":1}`,
		"```\n{\"a\":1}\n```":            `{"a":1}`,
		"  \n```json\n{\"a\":1}\n```\n ": `{"a":1}`,
	}

	for in, want := range cases {
		if got := CleanFences(in); got != want {
			t.Errorf("CleanFences(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestMockProvider(t *testing.T) {
	t.Run("ValidResponse", func(t *testing.T) {
		m := NewMockProvider(`{"title":"ok","items":["a","b","c","d"],"answerIndex":1}`)

		raw, err := m.GenerateJSON(context.Background(), "sys", "usr", testSchema)
		if err != nil {
			t.Fatalf("GenerateJSON failed: %v", err)
		}
		if len(raw) == 0 {
			t.Error("expected non-empty payload")
		}
		if m.Calls != 1 {
			t.Errorf("want 1 call, got %d", m.Calls)
		}
		if m.LastSystem != "sys" || m.LastUser != "usr" {
			t.Error("mock did not capture prompts")
		}
	})

	t.Run("InvalidResponseIsGenerationError", func(t *testing.T) {
		m := NewMockProvider(`{"title":"ok"}`)

		_, err := m.GenerateJSON(context.Background(), "sys", "usr", testSchema)
		if !apperr.IsKind(err, apperr.KindGeneration) {
			t.Errorf("model output failing the schema must surface as generation error, got %v", err)
		}
	})

	t.Run("EmptyResponse", func(t *testing.T) {
		m := NewMockProvider(``)

		_, err := m.GenerateJSON(context.Background(), "sys", "usr", testSchema)
		if !apperr.IsKind(err, apperr.KindGeneration) {
			t.Errorf("want generation error for empty response, got %v", err)
		}
	})
}
