package llm

import (
	"context"
	"encoding/json"
)

// MockProvider is a test double. It validates its canned response against the
// requested schema exactly like the real provider, and counts calls so tests
// can assert the generate-once invariant.
type MockProvider struct {
	Response   json.RawMessage
	Err        error
	Calls      int
	LastSystem string
	LastUser   string
}

func NewMockProvider(response string) *MockProvider {
	return &MockProvider{Response: json.RawMessage(response)}
}

func (m *MockProvider) GenerateJSON(_ context.Context, system, user string, schema *Schema) (json.RawMessage, error) {
	m.Calls++
	m.LastSystem = system
	m.LastUser = user

	if m.Err != nil {
		return nil, m.Err
	}
	return checkGenerated(schema, m.Response)
}
