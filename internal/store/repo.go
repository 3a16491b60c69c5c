package store

import (
	"context"
	"time"
)

// Document is an uploaded source text with its assigned category.
type Document struct {
	ID        string
	Title     string
	Content   string
	Category  string
	CreatedAt time.Time
}

// DocumentRepo manages the document library.
type DocumentRepo interface {
	// Save stores a new document. The ID must be set by the caller.
	Save(ctx context.Context, doc *Document) error

	// Get returns the document with the given ID, or nil if none exists.
	Get(ctx context.Context, id string) (*Document, error)

	// List returns all documents, newest first.
	List(ctx context.Context) ([]*Document, error)

	// Delete removes the document with the given ID. Deleting a missing
	// document is not an error.
	Delete(ctx context.Context, id string) error
}

// SessionStart identifies a session at the moment play begins.
type SessionStart struct {
	SessionID  string
	DocID      string
	GameType   string
	Difficulty string
	RoundCount int
}

// SessionResult carries the final outcome of a completed session.
type SessionResult struct {
	SessionID         string
	Score             int
	RoundsCompleted   int
	MainWordsFound    int
	BonusWordsFound   int
	TerminationReason string
}

// SessionRecord is a stored play session, started and possibly completed.
type SessionRecord struct {
	SessionID         string
	DocID             string
	GameType          string
	Difficulty        string
	Score             int
	RoundsTotal       int
	RoundsCompleted   int
	MainWordsFound    int
	BonusWordsFound   int
	TerminationReason string
	Completed         bool
	StartedAt         time.Time
	CompletedAt       *time.Time
}

// SessionRepo records play sessions. Each session produces at most two
// writes: one at start and one at completion.
type SessionRepo interface {
	// Started records a new session with a zero score.
	Started(ctx context.Context, start SessionStart) error

	// Completed records the final outcome of a previously started session.
	Completed(ctx context.Context, result SessionResult) error

	// List returns all session records, newest first.
	List(ctx context.Context) ([]*SessionRecord, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
}

// LLMStats aggregates request events per purpose.
type LLMStats struct {
	Purpose      string
	Requests     int
	Failures     int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// StatsByPurpose aggregates recorded events grouped by purpose.
	StatsByPurpose(ctx context.Context) ([]LLMStats, error)
}
