package llm

import (
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/abhinav-rai/pathcraft/internal/apperr"
)

// schemaCache caches compiled JSON schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// Validate checks raw JSON against the given schema. Returns an
// apperr.Validation error when the payload is not valid JSON or does not
// satisfy the schema. Nothing is persisted by callers on failure.
func Validate(schema *Schema, raw json.RawMessage) error {
	if schema == nil {
		return nil
	}

	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return apperr.Validation("payload is not valid JSON", err)
	}

	compiled, err := getCompiledSchema(schema)
	if err != nil {
		return apperr.Validation(fmt.Sprintf("schema %q cannot be compiled", schema.Name), err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return apperr.Validation(fmt.Sprintf("payload does not match schema %q", schema.Name), err)
	}

	return nil
}

// CleanFences strips markdown code fences the model sometimes wraps around
// its JSON output.
func CleanFences(raw string) string {
	clean := strings.TrimSpace(raw)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}

// checkGenerated validates model output and reclassifies schema failures as
// generation errors: the model, not the caller, produced the bad payload.
func checkGenerated(schema *Schema, raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, apperr.Generation("model returned an empty response", nil)
	}
	if err := Validate(schema, raw); err != nil {
		return nil, apperr.Generation("model returned invalid output", err)
	}
	return raw, nil
}

func getCompiledSchema(schema *Schema) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(schema.Name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The compiler expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(schema.Definition)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", schema.Name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(schema.Name, compiled)
	return compiled, nil
}
