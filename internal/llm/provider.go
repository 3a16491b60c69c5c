package llm

import (
	"context"
	"encoding/json"
)

// Provider is the core abstraction for text generation. Callers pass a
// Request and receive structured JSON; when a Schema is set, the provider
// uses its native structured-output mechanism and the response is validated
// before it is returned.
type Provider interface {
	// Generate sends a prompt to the model and returns its response.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured with.
	ModelID() string
}

// ImageProvider generates a single illustration for a prompt and returns an
// image reference (a data URI for the Gemini backend). Used by the
// generation pipeline to fill unresolved image placeholders.
type ImageProvider interface {
	GenerateImage(ctx context.Context, prompt string) (string, error)
}

// Request describes what to send to the model.
type Request struct {
	// System sets the model's role and constraints.
	System string

	// Messages is the conversation. Every flow in Lexio is single turn, so
	// this is one user message in practice.
	Messages []Message

	// Schema is the JSON Schema the response must conform to. When nil the
	// raw text is returned as a json.RawMessage.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0 - 1.0. Zero value means
	// deterministic.
	Temperature float64
}

// Message is a single conversation entry.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender role.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema describes the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema (tool name for Anthropic, schema name for
	// OpenAI). Kebab-case, e.g. "game-session".
	Name string

	// Description tells the model what the schema represents.
	Description string

	// Definition is the JSON Schema definition as a map.
	Definition map[string]any
}

// Response holds the model output.
type Response struct {
	// Content is the generated output: validated JSON when the request
	// carried a Schema, raw text otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens", or "error".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// resolveModel maps a friendly model name to a provider model ID, passing
// unknown names through so direct model IDs keep working.
func resolveModel(name string, models map[string]string) string {
	if id, ok := models[name]; ok {
		return id
	}
	return name
}
