// Code generated by ent, DO NOT EDIT.

package gamesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the gamesession type in the database.
	Label = "game_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDocID holds the string denoting the doc_id field in the database.
	FieldDocID = "doc_id"
	// FieldGameType holds the string denoting the game_type field in the database.
	FieldGameType = "game_type"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldRoundsTotal holds the string denoting the rounds_total field in the database.
	FieldRoundsTotal = "rounds_total"
	// FieldRoundsCompleted holds the string denoting the rounds_completed field in the database.
	FieldRoundsCompleted = "rounds_completed"
	// FieldMainWordsFound holds the string denoting the main_words_found field in the database.
	FieldMainWordsFound = "main_words_found"
	// FieldBonusWordsFound holds the string denoting the bonus_words_found field in the database.
	FieldBonusWordsFound = "bonus_words_found"
	// FieldTerminationReason holds the string denoting the termination_reason field in the database.
	FieldTerminationReason = "termination_reason"
	// FieldCompleted holds the string denoting the completed field in the database.
	FieldCompleted = "completed"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// Table holds the table name of the gamesession in the database.
	Table = "game_sessions"
)

// Columns holds all SQL columns for gamesession fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldDocID,
	FieldGameType,
	FieldDifficulty,
	FieldScore,
	FieldRoundsTotal,
	FieldRoundsCompleted,
	FieldMainWordsFound,
	FieldBonusWordsFound,
	FieldTerminationReason,
	FieldCompleted,
	FieldStartedAt,
	FieldCompletedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DocIDValidator is a validator for the "doc_id" field. It is called by the builders before save.
	DocIDValidator func(string) error
	// GameTypeValidator is a validator for the "game_type" field. It is called by the builders before save.
	GameTypeValidator func(string) error
	// DifficultyValidator is a validator for the "difficulty" field. It is called by the builders before save.
	DifficultyValidator func(string) error
	// DefaultScore holds the default value on creation for the "score" field.
	DefaultScore int
	// ScoreValidator is a validator for the "score" field. It is called by the builders before save.
	ScoreValidator func(int) error
	// DefaultRoundsTotal holds the default value on creation for the "rounds_total" field.
	DefaultRoundsTotal int
	// DefaultRoundsCompleted holds the default value on creation for the "rounds_completed" field.
	DefaultRoundsCompleted int
	// DefaultMainWordsFound holds the default value on creation for the "main_words_found" field.
	DefaultMainWordsFound int
	// DefaultBonusWordsFound holds the default value on creation for the "bonus_words_found" field.
	DefaultBonusWordsFound int
	// DefaultTerminationReason holds the default value on creation for the "termination_reason" field.
	DefaultTerminationReason string
	// DefaultCompleted holds the default value on creation for the "completed" field.
	DefaultCompleted bool
	// DefaultStartedAt holds the default value on creation for the "started_at" field.
	DefaultStartedAt func() time.Time
)

// OrderOption defines the ordering options for the GameSession queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDocID orders the results by the doc_id field.
func ByDocID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDocID, opts...).ToFunc()
}

// ByGameType orders the results by the game_type field.
func ByGameType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGameType, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByRoundsTotal orders the results by the rounds_total field.
func ByRoundsTotal(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundsTotal, opts...).ToFunc()
}

// ByRoundsCompleted orders the results by the rounds_completed field.
func ByRoundsCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRoundsCompleted, opts...).ToFunc()
}

// ByMainWordsFound orders the results by the main_words_found field.
func ByMainWordsFound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMainWordsFound, opts...).ToFunc()
}

// ByBonusWordsFound orders the results by the bonus_words_found field.
func ByBonusWordsFound(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBonusWordsFound, opts...).ToFunc()
}

// ByTerminationReason orders the results by the termination_reason field.
func ByTerminationReason(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTerminationReason, opts...).ToFunc()
}

// ByCompleted orders the results by the completed field.
func ByCompleted(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompleted, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}
