package llm

import (
	"context"
	"encoding/json"
)

// Schema describes the shape a generated payload must satisfy before it is
// trusted. Definition is a standard JSON-schema document.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Provider is the text-generation port. Implementations must return a single
// syntactically valid JSON document that satisfies the given schema, or an
// error; partial or prose output is never returned to callers.
type Provider interface {
	GenerateJSON(ctx context.Context, system, user string, schema *Schema) (json.RawMessage, error)
}
