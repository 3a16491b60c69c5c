package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var testSchema = &Schema{
	Name:        "test-object",
	Description: "test",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"word": map[string]any{"type": "string"},
			"len":  map[string]any{"type": "integer"},
		},
		"required":             []any{"word"},
		"additionalProperties": false,
	},
}

func TestValidateResponseAccepts(t *testing.T) {
	raw := json.RawMessage(`{"word":"cat","len":3}`)
	if err := validateResponse(testSchema, raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateResponseRejectsMissingRequired(t *testing.T) {
	raw := json.RawMessage(`{"len":3}`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsBadJSON(t *testing.T) {
	raw := json.RawMessage(`{"word":`)
	err := validateResponse(testSchema, raw)
	var inv *ErrInvalidResponse
	if !errors.As(err, &inv) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not json`)); err != nil {
		t.Fatalf("nil schema must not validate: %v", err)
	}
}

func TestResolveModel(t *testing.T) {
	if got := resolveModel("gemini-flash", geminiModels); got != "gemini-2.0-flash" {
		t.Fatalf("resolveModel(gemini-flash) = %q", got)
	}
	if got := resolveModel("gemini-image", geminiModels); got != "gemini-2.0-flash-preview-image-generation" {
		t.Fatalf("resolveModel(gemini-image) = %q", got)
	}
	// Unknown names pass through as direct model IDs.
	if got := resolveModel("my-custom-model", geminiModels); got != "my-custom-model" {
		t.Fatalf("resolveModel(my-custom-model) = %q", got)
	}
}
