package gamegen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/adwitiya/lexio/internal/llm"
)

const hintSystemPrompt = `You are a game master providing hints to players of word games based on the context of the document they uploaded. Give a hint without giving away the answer. The hint must not contain the word itself.`

// GenerateHint asks for a single hint for word, grounded in the document
// context. Hints are a single attempt with no retry; failures return a
// HintError and the game simply proceeds without a hint.
func (g *Generator) GenerateHint(ctx context.Context, documentContext, word string) (string, error) {
	ctx = llm.WithPurpose(ctx, "hint")

	var b strings.Builder
	fmt.Fprintf(&b, "The user is stuck on the word %q.\n", word)
	b.WriteString("\nDocument context:\n")
	b.WriteString(truncate(documentContext, g.config.MaxDocumentChars))

	req := llm.Request{
		System: hintSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: b.String()},
		},
		Schema:      HintSchema,
		MaxTokens:   256,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return "", &HintError{Word: word, Err: err}
	}

	var out struct {
		Hint string `json:"hint"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", &HintError{Word: word, Err: err}
	}
	if out.Hint == "" {
		return "", &HintError{Word: word, Err: fmt.Errorf("empty hint")}
	}
	return out.Hint, nil
}
