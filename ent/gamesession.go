// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/adwitiya/lexio/ent/gamesession"
)

// GameSession is the model entity for the GameSession schema.
type GameSession struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Stable external identifier (UUID)
	SessionID string `json:"session_id,omitempty"`
	// Document the session was generated from
	DocID string `json:"doc_id,omitempty"`
	// GameType holds the value of the "game_type" field.
	GameType string `json:"game_type,omitempty"`
	// easy, medium, or hard
	Difficulty string `json:"difficulty,omitempty"`
	// Score holds the value of the "score" field.
	Score int `json:"score,omitempty"`
	// RoundsTotal holds the value of the "rounds_total" field.
	RoundsTotal int `json:"rounds_total,omitempty"`
	// RoundsCompleted holds the value of the "rounds_completed" field.
	RoundsCompleted int `json:"rounds_completed,omitempty"`
	// MainWordsFound holds the value of the "main_words_found" field.
	MainWordsFound int `json:"main_words_found,omitempty"`
	// BonusWordsFound holds the value of the "bonus_words_found" field.
	BonusWordsFound int `json:"bonus_words_found,omitempty"`
	// Why the session ended: lives, clock, rounds, or pool
	TerminationReason string `json:"termination_reason,omitempty"`
	// Completed holds the value of the "completed" field.
	Completed bool `json:"completed,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*GameSession) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case gamesession.FieldCompleted:
			values[i] = new(sql.NullBool)
		case gamesession.FieldID, gamesession.FieldScore, gamesession.FieldRoundsTotal, gamesession.FieldRoundsCompleted, gamesession.FieldMainWordsFound, gamesession.FieldBonusWordsFound:
			values[i] = new(sql.NullInt64)
		case gamesession.FieldSessionID, gamesession.FieldDocID, gamesession.FieldGameType, gamesession.FieldDifficulty, gamesession.FieldTerminationReason:
			values[i] = new(sql.NullString)
		case gamesession.FieldStartedAt, gamesession.FieldCompletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the GameSession fields.
func (_m *GameSession) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case gamesession.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case gamesession.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case gamesession.FieldDocID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field doc_id", values[i])
			} else if value.Valid {
				_m.DocID = value.String
			}
		case gamesession.FieldGameType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field game_type", values[i])
			} else if value.Valid {
				_m.GameType = value.String
			}
		case gamesession.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case gamesession.FieldScore:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field score", values[i])
			} else if value.Valid {
				_m.Score = int(value.Int64)
			}
		case gamesession.FieldRoundsTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rounds_total", values[i])
			} else if value.Valid {
				_m.RoundsTotal = int(value.Int64)
			}
		case gamesession.FieldRoundsCompleted:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rounds_completed", values[i])
			} else if value.Valid {
				_m.RoundsCompleted = int(value.Int64)
			}
		case gamesession.FieldMainWordsFound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field main_words_found", values[i])
			} else if value.Valid {
				_m.MainWordsFound = int(value.Int64)
			}
		case gamesession.FieldBonusWordsFound:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bonus_words_found", values[i])
			} else if value.Valid {
				_m.BonusWordsFound = int(value.Int64)
			}
		case gamesession.FieldTerminationReason:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field termination_reason", values[i])
			} else if value.Valid {
				_m.TerminationReason = value.String
			}
		case gamesession.FieldCompleted:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field completed", values[i])
			} else if value.Valid {
				_m.Completed = value.Bool
			}
		case gamesession.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = value.Time
			}
		case gamesession.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the GameSession.
// This includes values selected through modifiers, order, etc.
func (_m *GameSession) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this GameSession.
// Note that you need to call GameSession.Unwrap() before calling this method if this GameSession
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *GameSession) Update() *GameSessionUpdateOne {
	return NewGameSessionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the GameSession entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *GameSession) Unwrap() *GameSession {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: GameSession is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *GameSession) String() string {
	var builder strings.Builder
	builder.WriteString("GameSession(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("doc_id=")
	builder.WriteString(_m.DocID)
	builder.WriteString(", ")
	builder.WriteString("game_type=")
	builder.WriteString(_m.GameType)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("score=")
	builder.WriteString(fmt.Sprintf("%v", _m.Score))
	builder.WriteString(", ")
	builder.WriteString("rounds_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundsTotal))
	builder.WriteString(", ")
	builder.WriteString("rounds_completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.RoundsCompleted))
	builder.WriteString(", ")
	builder.WriteString("main_words_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.MainWordsFound))
	builder.WriteString(", ")
	builder.WriteString("bonus_words_found=")
	builder.WriteString(fmt.Sprintf("%v", _m.BonusWordsFound))
	builder.WriteString(", ")
	builder.WriteString("termination_reason=")
	builder.WriteString(_m.TerminationReason)
	builder.WriteString(", ")
	builder.WriteString("completed=")
	builder.WriteString(fmt.Sprintf("%v", _m.Completed))
	builder.WriteString(", ")
	builder.WriteString("started_at=")
	builder.WriteString(_m.StartedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// GameSessions is a parsable slice of GameSession.
type GameSessions []*GameSession
