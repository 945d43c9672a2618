package oracle

import (
	"context"
	"encoding/json"
)

// Provider is the content oracle abstraction. The engine sends a prompt
// context and receives structured text; availability is never assumed.
type Provider interface {
	// Generate sends a prompt to the oracle and returns structured JSON.
	// When Schema is set, the provider uses its native structured-output
	// mechanism and the returned Content is validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request describes what to ask the oracle for.
type Request struct {
	// System sets the oracle's role and constraints.
	System string

	// Prompt is the user-facing request text (single-turn).
	Prompt string

	// Schema is the JSON Schema the response must conform to. When nil,
	// Content is raw text wrapped as a JSON string.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Default 0.0.
	Temperature float64
}

// Schema defines the JSON structure expected from the oracle.
type Schema struct {
	// Name identifies this schema. Kebab-case, e.g. "celebration-text".
	Name string

	// Description guides generation.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the oracle's output.
type Response struct {
	// Content is the generated output: validated JSON when a Schema was
	// requested, otherwise the raw text as a JSON value.
	Content json.RawMessage

	// Usage reports token consumption for this request.
	Usage Usage

	// Model is the actual model that served the request.
	Model string

	// StopReason is normalized to: "end", "max_tokens", "error".
	StopReason string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

type contextKey string

const purposeKey contextKey = "oracle_purpose"

// WithPurpose attaches a purpose label ("teaching", "hint", "celebration")
// to the context for logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
