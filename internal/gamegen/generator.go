package gamegen

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/adwitiya/lexio/internal/llm"
	"github.com/adwitiya/lexio/internal/rounds"
)

// Generator produces playable sessions from document text. The provider is
// invoked at most Config.MaxAttempts times per generation; the attempt loop
// here is the only retry layer, so the provider should be unwrapped.
type Generator struct {
	provider llm.Provider
	images   llm.ImageProvider
	config   Config

	// sleep is swapped out in tests.
	sleep func(time.Duration)
}

// New creates a Generator with the given providers and config.
func New(provider llm.Provider, images llm.ImageProvider, cfg Config) *Generator {
	return &Generator{
		provider: provider,
		images:   images,
		config:   cfg,
		sleep:    time.Sleep,
	}
}

// GenerateSession produces a sequential session for the given input. Rounds
// that fail structural validation are dropped; generation fails only when no
// round survives. Image placeholders are resolved before returning, and any
// image failure fails the whole generation. Without an image provider,
// rounds that need an image are dropped instead.
func (g *Generator) GenerateSession(ctx context.Context, in Input) (*rounds.Session, error) {
	ctx = llm.WithPurpose(ctx, "session-gen")
	in.DocumentText = truncate(in.DocumentText, g.config.MaxDocumentChars)

	req := llm.Request{
		System: sessionSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSessionUserMessage(in)},
		},
		Schema:      SessionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	var session *rounds.Session
	err := g.withAttempts(ctx, func() error {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return err
		}

		var out rounds.Session
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			return fmt.Errorf("parse session output: %w", err)
		}

		kept := out.Rounds[:0]
		for i := range out.Rounds {
			r := out.Rounds[i]
			if verr := r.Validate(); verr != nil {
				fmt.Fprintf(os.Stderr, "warning: dropping invalid round: %v\n", verr)
				continue
			}
			kept = append(kept, r)
		}
		out.Rounds = kept
		if len(out.Rounds) == 0 {
			return fmt.Errorf("no valid rounds in session output")
		}

		// Image placeholders can never resolve without an image provider;
		// drop those rounds rather than failing the session.
		if g.images == nil {
			kept = out.Rounds[:0]
			for i := range out.Rounds {
				if needsImage(&out.Rounds[i]) {
					fmt.Fprintf(os.Stderr, "warning: dropping image round for %q: no image provider configured\n", out.Rounds[i].Word)
					continue
				}
				kept = append(kept, out.Rounds[i])
			}
			out.Rounds = kept
			if len(out.Rounds) == 0 {
				return fmt.Errorf("every round needs an image and no image provider is configured")
			}
		}

		out.GameType = in.GameType
		if err := g.resolveImages(ctx, out.Rounds); err != nil {
			return err
		}

		session = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return session, nil
}

// GeneratePool produces a letter-pool session for the given input. The raw
// pool is repaired before returning; a pool whose main set repairs down to
// empty counts as a failed attempt.
func (g *Generator) GeneratePool(ctx context.Context, in Input) (*rounds.WordPool, error) {
	ctx = llm.WithPurpose(ctx, "session-gen")
	in.DocumentText = truncate(in.DocumentText, g.config.MaxDocumentChars)

	req := llm.Request{
		System: poolSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPoolUserMessage(in)},
		},
		Schema:      WordPoolSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	var pool *rounds.WordPool
	err := g.withAttempts(ctx, func() error {
		resp, err := g.provider.Generate(ctx, req)
		if err != nil {
			return err
		}

		var out rounds.WordPool
		if err := json.Unmarshal(resp.Content, &out); err != nil {
			return fmt.Errorf("parse pool output: %w", err)
		}

		RepairPool(&out)
		if len(out.MainWords) == 0 {
			return fmt.Errorf("no formable main words in pool output")
		}

		out.GameType = in.GameType
		pool = &out
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pool, nil
}

// withAttempts runs fn up to MaxAttempts times with a fixed delay between
// attempts. After the last failure it returns a GenerationError carrying the
// player-facing overloaded message, never the raw backend error.
func (g *Generator) withAttempts(ctx context.Context, fn func() error) error {
	attempts := g.config.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		lastErr = fn()
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if attempt < attempts {
			g.sleep(g.config.RetryDelay)
		}
	}
	return &GenerationError{Message: OverloadedMessage, Err: lastErr}
}
