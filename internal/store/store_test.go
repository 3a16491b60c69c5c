package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestDocumentSaveGetList(t *testing.T) {
	s := openTestStore(t)
	repo := s.DocumentRepo()
	ctx := context.Background()

	// No document yet.
	doc, err := repo.Get(ctx, "missing")
	if err != nil {
		t.Fatalf("get (empty): %v", err)
	}
	if doc != nil {
		t.Fatal("expected nil document when none exist")
	}

	err = repo.Save(ctx, &Document{
		ID:       "doc-1",
		Title:    "Cell Biology Notes",
		Content:  "The mitochondria is the powerhouse of the cell.",
		Category: "Science",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	doc, err = repo.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc == nil {
		t.Fatal("expected non-nil document")
	}
	if doc.Title != "Cell Biology Notes" {
		t.Errorf("title = %q", doc.Title)
	}
	if doc.Category != "Science" {
		t.Errorf("category = %q", doc.Category)
	}

	docs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("len(docs) = %d, want 1", len(docs))
	}
}

func TestDocumentDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.DocumentRepo()
	ctx := context.Background()

	err := repo.Save(ctx, &Document{
		ID:      "doc-1",
		Title:   "History Outline",
		Content: "The treaty was signed in 1648.",
	})
	if err != nil {
		t.Fatalf("save: %v", err)
	}

	if err := repo.Delete(ctx, "doc-1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	doc, err := repo.Get(ctx, "doc-1")
	if err != nil {
		t.Fatalf("get after delete: %v", err)
	}
	if doc != nil {
		t.Fatal("expected nil document after delete")
	}

	// Deleting a missing document is not an error.
	if err := repo.Delete(ctx, "doc-1"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
}

func TestSessionStartedAndCompleted(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	err := repo.Started(ctx, SessionStart{
		SessionID:  "sess-1",
		DocID:      "doc-1",
		GameType:   "Personalized Practice",
		Difficulty: "medium",
		RoundCount: 7,
	})
	if err != nil {
		t.Fatalf("started: %v", err)
	}

	records, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("len(records) = %d, want 1", len(records))
	}
	rec := records[0]
	if rec.Completed {
		t.Error("session must not be completed before Completed is called")
	}
	if rec.Score != 0 {
		t.Errorf("score = %d, want 0", rec.Score)
	}
	if rec.RoundsTotal != 7 {
		t.Errorf("rounds_total = %d, want 7", rec.RoundsTotal)
	}

	err = repo.Completed(ctx, SessionResult{
		SessionID:         "sess-1",
		Score:             140,
		RoundsCompleted:   7,
		TerminationReason: "rounds",
	})
	if err != nil {
		t.Fatalf("completed: %v", err)
	}

	records, err = repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	rec = records[0]
	if !rec.Completed {
		t.Error("expected completed session")
	}
	if rec.Score != 140 {
		t.Errorf("score = %d, want 140", rec.Score)
	}
	if rec.TerminationReason != "rounds" {
		t.Errorf("termination_reason = %q", rec.TerminationReason)
	}
	if rec.CompletedAt == nil {
		t.Error("expected non-nil completed_at")
	}
}

func TestSessionCompletedUnknownID(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()

	err := repo.Completed(context.Background(), SessionResult{SessionID: "nope"})
	if err == nil {
		t.Fatal("expected error completing unknown session")
	}
}

func TestEventAppendAndStats(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "session-gen", InputTokens: 100, OutputTokens: 50, Success: true},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "session-gen", InputTokens: 120, OutputTokens: 0, Success: false, ErrorMessage: "rate limited"},
		{Provider: "gemini", Model: "gemini-2.0-flash", Purpose: "hint", InputTokens: 30, OutputTokens: 10, Success: true},
	}
	for i, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	stats, err := repo.StatsByPurpose(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("len(stats) = %d, want 2", len(stats))
	}

	// Sorted by purpose: hint, session-gen.
	if stats[0].Purpose != "hint" || stats[0].Requests != 1 || stats[0].Failures != 0 {
		t.Errorf("hint stats = %+v", stats[0])
	}
	sg := stats[1]
	if sg.Purpose != "session-gen" || sg.Requests != 2 || sg.Failures != 1 {
		t.Errorf("session-gen stats = %+v", sg)
	}
	if sg.InputTokens != 220 || sg.OutputTokens != 50 {
		t.Errorf("session-gen tokens = %d/%d, want 220/50", sg.InputTokens, sg.OutputTokens)
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"documents", "game_sessions", "llm_request_events"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("query sqlite_master for %s: %v", table, err)
			continue
		}
		if name != table {
			t.Errorf("table name = %q, want %q", name, table)
		}
	}
}
