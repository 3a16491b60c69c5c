package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// GameSession records one play session. A row is written when the session
// starts (zero score) and updated exactly once when it completes; there are
// no per-round writes.
type GameSession struct {
	ent.Schema
}

func (GameSession) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			NotEmpty().
			Comment("Stable external identifier (UUID)"),
		field.String("doc_id").
			NotEmpty().
			Comment("Document the session was generated from"),
		field.String("game_type").
			NotEmpty(),
		field.String("difficulty").
			NotEmpty().
			Comment("easy, medium, or hard"),
		field.Int("score").
			Default(0).
			NonNegative(),
		field.Int("rounds_total").
			Default(0),
		field.Int("rounds_completed").
			Default(0),
		field.Int("main_words_found").
			Default(0),
		field.Int("bonus_words_found").
			Default(0),
		field.String("termination_reason").
			Optional().
			Default("").
			Comment("Why the session ended: lives, clock, rounds, or pool"),
		field.Bool("completed").
			Default(false),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
		field.Time("completed_at").
			Optional().
			Nillable(),
	}
}

func (GameSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("doc_id"),
		index.Fields("started_at"),
	}
}
