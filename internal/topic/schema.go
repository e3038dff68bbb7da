package topic

import "github.com/abhinav-rai/pathcraft/internal/llm"

// NotesSchema constrains generated notes: at least one section, each with a
// title and a markdown body.
var NotesSchema = &llm.Schema{
	Name:        "topic-notes",
	Description: "Ordered study notes for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"notes": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"description": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
					},
					"required":             []any{"title", "description"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"notes"},
		"additionalProperties": false,
	},
}

// QuizSchema constrains generated quizzes: each question has exactly 4
// options and an answerIndex in [0,3].
var QuizSchema = &llm.Schema{
	Name:        "topic-quiz",
	Description: "A multiple-choice quiz for one topic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type":     "array",
				"minItems": 1,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
						"options": map[string]any{
							"type":     "array",
							"minItems": 4,
							"maxItems": 4,
							"items": map[string]any{
								"type":      "string",
								"minLength": 1,
							},
						},
						"answerIndex": map[string]any{
							"type":    "integer",
							"minimum": 0,
							"maximum": 3,
						},
						"explanation": map[string]any{
							"type": "string",
						},
					},
					"required":             []any{"question", "options", "answerIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
