// Package docflow runs the document intake flows: suitability validation,
// subject categorization, and key-vocabulary extraction.
package docflow

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/adwitiya/lexio/internal/llm"
)

// MinDocumentChars is the minimum document length. Shorter documents are
// rejected locally without a model call.
const MinDocumentChars = 50

// maxDocumentChars caps how much of the document is sent to the model.
const maxDocumentChars = 4000

// Categories is the closed set of subject categories a document can be
// assigned.
var Categories = []string{
	"Science",
	"History & Social Science",
	"Mathematics",
	"Computer Science & Coding",
	"Engineering",
	"Language Learning & Literature",
	"General & Other",
}

// DefaultCategory is the fallback for content that fits nothing specific.
const DefaultCategory = "General & Other"

// ValidCategory reports whether c is one of the known categories.
func ValidCategory(c string) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Validation is the outcome of the suitability check. Reason is user-facing
// and empty when the document is valid.
type Validation struct {
	Valid  bool
	Reason string
}

// Flows runs document intake against an LLM provider.
type Flows struct {
	provider llm.Provider
}

// New creates document flows backed by the given provider.
func New(provider llm.Provider) *Flows {
	return &Flows{provider: provider}
}

const validateSystemPrompt = `You are an AI assistant for a language learning app. Your task is to validate document content to ensure it is suitable for creating educational games.

The content should be coherent, primarily text-based, and contain learnable vocabulary. It should not be gibberish, random characters, or inappropriate content.

If the document is not valid, provide a concise, user-friendly reason. For example: "The document appears to contain code, not learnable text." or "The content is too short or lacks clear vocabulary." If it is valid, the reason must be an empty string.`

var validateSchema = &llm.Schema{
	Name:        "document-validation",
	Description: "Whether a document is suitable for game generation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"isValid": map[string]any{
				"type":        "boolean",
				"description": "Whether the document can be used to generate a learning game",
			},
			"reason": map[string]any{
				"type":        "string",
				"description": "User-facing explanation when invalid; empty when valid",
			},
		},
		"required":             []any{"isValid", "reason"},
		"additionalProperties": false,
	},
}

// Validate checks whether text is suitable for game generation. Documents
// under MinDocumentChars are rejected without consulting the model.
func (f *Flows) Validate(ctx context.Context, text string) (*Validation, error) {
	if len(text) < MinDocumentChars {
		return &Validation{
			Valid:  false,
			Reason: fmt.Sprintf("The document is too short. Please provide at least %d characters of text.", MinDocumentChars),
		}, nil
	}

	ctx = llm.WithPurpose(ctx, "doc-validate")
	resp, err := f.provider.Generate(ctx, llm.Request{
		System: validateSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Document text:\n" + truncate(text, maxDocumentChars)},
		},
		Schema:    validateSchema,
		MaxTokens: 256,
	})
	if err != nil {
		return nil, fmt.Errorf("validate document: %w", err)
	}

	var out struct {
		IsValid bool   `json:"isValid"`
		Reason  string `json:"reason"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse validation output: %w", err)
	}
	return &Validation{Valid: out.IsValid, Reason: out.Reason}, nil
}

const categorizeSystemPrompt = `You are an expert librarian AI. Your task is to analyze the provided text and classify it into one of the following categories. Choose the single best fit.

Categories:
- Science (Biology, Chemistry, Physics, etc.)
- History & Social Science (Politics, Sociology, etc.)
- Mathematics
- Computer Science & Coding (Programming, Algorithms, Software, etc.)
- Engineering (Mechanical, Electrical, Civil, etc.)
- Language Learning & Literature (Fiction, Poetry, Grammar, etc.)
- General & Other (News articles, miscellaneous topics, etc.)`

var categorizeSchema = &llm.Schema{
	Name:        "document-category",
	Description: "The subject category of a document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"category": map[string]any{
				"type": "string",
				"enum": []any{
					"Science",
					"History & Social Science",
					"Mathematics",
					"Computer Science & Coding",
					"Engineering",
					"Language Learning & Literature",
					"General & Other",
				},
				"description": "The most likely category for the document content",
			},
		},
		"required":             []any{"category"},
		"additionalProperties": false,
	},
}

// Categorize classifies text into one of Categories. Unknown model output
// falls back to DefaultCategory.
func (f *Flows) Categorize(ctx context.Context, text string) (string, error) {
	ctx = llm.WithPurpose(ctx, "doc-categorize")
	resp, err := f.provider.Generate(ctx, llm.Request{
		System: categorizeSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Document text:\n" + truncate(text, maxDocumentChars)},
		},
		Schema:    categorizeSchema,
		MaxTokens: 64,
	})
	if err != nil {
		return "", fmt.Errorf("categorize document: %w", err)
	}

	var out struct {
		Category string `json:"category"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("parse category output: %w", err)
	}
	if !ValidCategory(out.Category) {
		return DefaultCategory, nil
	}
	return out.Category, nil
}

const vocabularySystemPrompt = `You are an expert vocabulary extractor. Analyze the given document text and identify key vocabulary words that are most relevant and useful for language learning games. Return a list of these words.`

var vocabularySchema = &llm.Schema{
	Name:        "vocabulary-list",
	Description: "Key vocabulary extracted from a document",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"vocabularyList": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "Key vocabulary words from the document",
			},
		},
		"required":             []any{"vocabularyList"},
		"additionalProperties": false,
	},
}

// ExtractVocabulary pulls the key vocabulary words from text. Whitespace is
// trimmed and empty entries are dropped.
func (f *Flows) ExtractVocabulary(ctx context.Context, text string) ([]string, error) {
	ctx = llm.WithPurpose(ctx, "vocab-extract")
	resp, err := f.provider.Generate(ctx, llm.Request{
		System: vocabularySystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: "Document text:\n" + truncate(text, maxDocumentChars)},
		},
		Schema:    vocabularySchema,
		MaxTokens: 512,
	})
	if err != nil {
		return nil, fmt.Errorf("extract vocabulary: %w", err)
	}

	var out struct {
		VocabularyList []string `json:"vocabularyList"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse vocabulary output: %w", err)
	}

	words := out.VocabularyList[:0]
	for _, w := range out.VocabularyList {
		if w = strings.TrimSpace(w); w != "" {
			words = append(words, w)
		}
	}
	return words, nil
}

// truncate caps s at max bytes, backing off to the previous rune boundary so
// a multi-byte character is never split.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
