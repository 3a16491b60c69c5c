package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/adwitiya/lexio/internal/store"
)

// eventRepoSpy records appended events in memory.
type eventRepoSpy struct {
	events []store.LLMRequestEventData
}

func (s *eventRepoSpy) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	s.events = append(s.events, data)
	return nil
}

func (s *eventRepoSpy) StatsByPurpose(context.Context) ([]store.LLMStats, error) {
	return nil, nil
}

func TestLoggingRecordsProviderNameAndModel(t *testing.T) {
	repo := &eventRepoSpy{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 7, OutputTokens: 3},
	})
	p := WithLogging(mock, "gemini", repo)

	ctx := WithPurpose(context.Background(), "session-gen")
	if _, err := p.Generate(ctx, Request{}); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Provider != "gemini" {
		t.Errorf("provider = %q, want %q", ev.Provider, "gemini")
	}
	if ev.Model != "mock" {
		t.Errorf("model = %q, want %q", ev.Model, "mock")
	}
	if ev.Purpose != "session-gen" {
		t.Errorf("purpose = %q", ev.Purpose)
	}
	if !ev.Success || ev.InputTokens != 7 || ev.OutputTokens != 3 {
		t.Errorf("event = %+v", ev)
	}
}

func TestLoggingRecordsFailure(t *testing.T) {
	repo := &eventRepoSpy{}
	mock := NewMockProvider(MockResponse{Err: errors.New("backend down")})
	p := WithLogging(mock, "openai", repo)

	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	if len(repo.events) != 1 {
		t.Fatalf("events = %d, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if ev.Success {
		t.Error("failed request logged as success")
	}
	if ev.Provider != "openai" {
		t.Errorf("provider = %q", ev.Provider)
	}
	if ev.ErrorMessage == "" {
		t.Error("error message missing")
	}
}

func TestWithLoggingNilRepoPassesThrough(t *testing.T) {
	mock := NewMockProvider()
	p := WithLogging(mock, "gemini", nil)
	if _, ok := p.(*MockProvider); !ok {
		t.Errorf("nil repo must return the provider unwrapped, got %T", p)
	}
}
