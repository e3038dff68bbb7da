package course

import "github.com/abhinav-rai/pathcraft/internal/llm"

// LearningPathSchema constrains generated learning paths: 7-10 topics, each
// with a title, description, and at least 3 tags.
var LearningPathSchema = &llm.Schema{
	Name:        "learning-path",
	Description: "A structured learning path with an ordered topic catalog",
	Definition: map[string]any{
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
			"level": map[string]any{
				"type": "string",
				"enum": []any{"beginner", "intermediate", "advanced"},
			},
			"tags": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 1,
			},
			"topics": map[string]any{
				"type":     "array",
				"minItems": 7,
				"maxItems": 10,
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
						"tags": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string"},
							"minItems": 3,
						},
					},
					"required":             []any{"title", "description", "tags"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "description", "level", "tags", "topics"},
		"additionalProperties": false,
	},
}
