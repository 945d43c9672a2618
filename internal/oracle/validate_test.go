package oracle

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func testSchema() *Schema {
	return &Schema{
		Name:        "test-object",
		Description: "A test object",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"text":  map[string]any{"type": "string"},
				"score": map[string]any{"type": "integer", "minimum": 0},
				"level": map[string]any{"type": "string", "enum": []any{"novice", "mastered"}},
			},
			"required": []any{"text", "score"},
		},
	}
}

func TestValidateResponse_ValidJSON(t *testing.T) {
	raw := json.RawMessage(`{"text":"well done","score":10,"level":"mastered"}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_ValidWithoutOptional(t *testing.T) {
	raw := json.RawMessage(`{"text":"keep going","score":3}`)
	if err := validateResponse(testSchema(), raw); err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}
}

func TestValidateResponse_MissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"text":"incomplete"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for missing required field")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_WrongType(t *testing.T) {
	raw := json.RawMessage(`{"text":"bad","score":"ten"}`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for wrong type")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_MalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{not json`)
	err := validateResponse(testSchema(), raw)
	if err == nil {
		t.Fatal("expected error for malformed JSON")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
}

func TestValidateResponse_BadDefinitionSurfaced(t *testing.T) {
	bad := &Schema{
		Name:       "broken-definition",
		Definition: map[string]any{"type": 12},
	}
	err := validateResponse(bad, json.RawMessage(`{}`))
	if err == nil {
		t.Fatal("expected error for uncompilable definition")
	}
	var invErr *ErrInvalidResponse
	if !errors.As(err, &invErr) {
		t.Fatalf("expected ErrInvalidResponse, got: %T", err)
	}
	if !strings.Contains(err.Error(), "broken-definition") {
		t.Fatalf("expected the schema name in the error, got: %v", err)
	}
}

func TestValidateResponse_CompiledOnce(t *testing.T) {
	raw := json.RawMessage(`{"text":"again","score":1}`)
	for i := 0; i < 3; i++ {
		if err := validateResponse(testSchema(), raw); err != nil {
			t.Fatalf("pass %d: %v", i, err)
		}
	}
	schemas.mu.Lock()
	_, cached := schemas.byName["test-object"]
	schemas.mu.Unlock()
	if !cached {
		t.Fatal("expected the compiled schema to be cached by name")
	}
}

func TestValidateResponse_NilSchema(t *testing.T) {
	raw := json.RawMessage(`anything at all`)
	if err := validateResponse(nil, raw); err != nil {
		t.Fatalf("expected nil schema to skip validation, got: %v", err)
	}
}
