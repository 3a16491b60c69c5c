// Code generated by ent, DO NOT EDIT.

package gamesession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/adwitiya/lexio/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldSessionID, v))
}

// DocID applies equality check predicate on the "doc_id" field. It's identical to DocIDEQ.
func DocID(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldDocID, v))
}

// GameType applies equality check predicate on the "game_type" field. It's identical to GameTypeEQ.
func GameType(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldGameType, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldDifficulty, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldScore, v))
}

// RoundsTotal applies equality check predicate on the "rounds_total" field. It's identical to RoundsTotalEQ.
func RoundsTotal(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldRoundsTotal, v))
}

// RoundsCompleted applies equality check predicate on the "rounds_completed" field. It's identical to RoundsCompletedEQ.
func RoundsCompleted(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldRoundsCompleted, v))
}

// MainWordsFound applies equality check predicate on the "main_words_found" field. It's identical to MainWordsFoundEQ.
func MainWordsFound(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldMainWordsFound, v))
}

// BonusWordsFound applies equality check predicate on the "bonus_words_found" field. It's identical to BonusWordsFoundEQ.
func BonusWordsFound(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldBonusWordsFound, v))
}

// TerminationReason applies equality check predicate on the "termination_reason" field. It's identical to TerminationReasonEQ.
func TerminationReason(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldTerminationReason, v))
}

// Completed applies equality check predicate on the "completed" field. It's identical to CompletedEQ.
func Completed(v bool) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompleted, v))
}

// StartedAt applies equality check predicate on the "started_at" field. It's identical to StartedAtEQ.
func StartedAt(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldStartedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompletedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldSessionID, v))
}

// DocIDEQ applies the EQ predicate on the "doc_id" field.
func DocIDEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldDocID, v))
}

// DocIDNEQ applies the NEQ predicate on the "doc_id" field.
func DocIDNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldDocID, v))
}

// DocIDIn applies the In predicate on the "doc_id" field.
func DocIDIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldDocID, vs...))
}

// DocIDNotIn applies the NotIn predicate on the "doc_id" field.
func DocIDNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldDocID, vs...))
}

// DocIDGT applies the GT predicate on the "doc_id" field.
func DocIDGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldDocID, v))
}

// DocIDGTE applies the GTE predicate on the "doc_id" field.
func DocIDGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldDocID, v))
}

// DocIDLT applies the LT predicate on the "doc_id" field.
func DocIDLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldDocID, v))
}

// DocIDLTE applies the LTE predicate on the "doc_id" field.
func DocIDLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldDocID, v))
}

// DocIDContains applies the Contains predicate on the "doc_id" field.
func DocIDContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldDocID, v))
}

// DocIDHasPrefix applies the HasPrefix predicate on the "doc_id" field.
func DocIDHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldDocID, v))
}

// DocIDHasSuffix applies the HasSuffix predicate on the "doc_id" field.
func DocIDHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldDocID, v))
}

// DocIDEqualFold applies the EqualFold predicate on the "doc_id" field.
func DocIDEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldDocID, v))
}

// DocIDContainsFold applies the ContainsFold predicate on the "doc_id" field.
func DocIDContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldDocID, v))
}

// GameTypeEQ applies the EQ predicate on the "game_type" field.
func GameTypeEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldGameType, v))
}

// GameTypeNEQ applies the NEQ predicate on the "game_type" field.
func GameTypeNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldGameType, v))
}

// GameTypeIn applies the In predicate on the "game_type" field.
func GameTypeIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldGameType, vs...))
}

// GameTypeNotIn applies the NotIn predicate on the "game_type" field.
func GameTypeNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldGameType, vs...))
}

// GameTypeGT applies the GT predicate on the "game_type" field.
func GameTypeGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldGameType, v))
}

// GameTypeGTE applies the GTE predicate on the "game_type" field.
func GameTypeGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldGameType, v))
}

// GameTypeLT applies the LT predicate on the "game_type" field.
func GameTypeLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldGameType, v))
}

// GameTypeLTE applies the LTE predicate on the "game_type" field.
func GameTypeLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldGameType, v))
}

// GameTypeContains applies the Contains predicate on the "game_type" field.
func GameTypeContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldGameType, v))
}

// GameTypeHasPrefix applies the HasPrefix predicate on the "game_type" field.
func GameTypeHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldGameType, v))
}

// GameTypeHasSuffix applies the HasSuffix predicate on the "game_type" field.
func GameTypeHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldGameType, v))
}

// GameTypeEqualFold applies the EqualFold predicate on the "game_type" field.
func GameTypeEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldGameType, v))
}

// GameTypeContainsFold applies the ContainsFold predicate on the "game_type" field.
func GameTypeContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldGameType, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldDifficulty, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldScore, v))
}

// RoundsTotalEQ applies the EQ predicate on the "rounds_total" field.
func RoundsTotalEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldRoundsTotal, v))
}

// RoundsTotalNEQ applies the NEQ predicate on the "rounds_total" field.
func RoundsTotalNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldRoundsTotal, v))
}

// RoundsTotalIn applies the In predicate on the "rounds_total" field.
func RoundsTotalIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldRoundsTotal, vs...))
}

// RoundsTotalNotIn applies the NotIn predicate on the "rounds_total" field.
func RoundsTotalNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldRoundsTotal, vs...))
}

// RoundsTotalGT applies the GT predicate on the "rounds_total" field.
func RoundsTotalGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldRoundsTotal, v))
}

// RoundsTotalGTE applies the GTE predicate on the "rounds_total" field.
func RoundsTotalGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldRoundsTotal, v))
}

// RoundsTotalLT applies the LT predicate on the "rounds_total" field.
func RoundsTotalLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldRoundsTotal, v))
}

// RoundsTotalLTE applies the LTE predicate on the "rounds_total" field.
func RoundsTotalLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldRoundsTotal, v))
}

// RoundsCompletedEQ applies the EQ predicate on the "rounds_completed" field.
func RoundsCompletedEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldRoundsCompleted, v))
}

// RoundsCompletedNEQ applies the NEQ predicate on the "rounds_completed" field.
func RoundsCompletedNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldRoundsCompleted, v))
}

// RoundsCompletedIn applies the In predicate on the "rounds_completed" field.
func RoundsCompletedIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldRoundsCompleted, vs...))
}

// RoundsCompletedNotIn applies the NotIn predicate on the "rounds_completed" field.
func RoundsCompletedNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldRoundsCompleted, vs...))
}

// RoundsCompletedGT applies the GT predicate on the "rounds_completed" field.
func RoundsCompletedGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldRoundsCompleted, v))
}

// RoundsCompletedGTE applies the GTE predicate on the "rounds_completed" field.
func RoundsCompletedGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldRoundsCompleted, v))
}

// RoundsCompletedLT applies the LT predicate on the "rounds_completed" field.
func RoundsCompletedLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldRoundsCompleted, v))
}

// RoundsCompletedLTE applies the LTE predicate on the "rounds_completed" field.
func RoundsCompletedLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldRoundsCompleted, v))
}

// MainWordsFoundEQ applies the EQ predicate on the "main_words_found" field.
func MainWordsFoundEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldMainWordsFound, v))
}

// MainWordsFoundNEQ applies the NEQ predicate on the "main_words_found" field.
func MainWordsFoundNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldMainWordsFound, v))
}

// MainWordsFoundIn applies the In predicate on the "main_words_found" field.
func MainWordsFoundIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldMainWordsFound, vs...))
}

// MainWordsFoundNotIn applies the NotIn predicate on the "main_words_found" field.
func MainWordsFoundNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldMainWordsFound, vs...))
}

// MainWordsFoundGT applies the GT predicate on the "main_words_found" field.
func MainWordsFoundGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldMainWordsFound, v))
}

// MainWordsFoundGTE applies the GTE predicate on the "main_words_found" field.
func MainWordsFoundGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldMainWordsFound, v))
}

// MainWordsFoundLT applies the LT predicate on the "main_words_found" field.
func MainWordsFoundLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldMainWordsFound, v))
}

// MainWordsFoundLTE applies the LTE predicate on the "main_words_found" field.
func MainWordsFoundLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldMainWordsFound, v))
}

// BonusWordsFoundEQ applies the EQ predicate on the "bonus_words_found" field.
func BonusWordsFoundEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldBonusWordsFound, v))
}

// BonusWordsFoundNEQ applies the NEQ predicate on the "bonus_words_found" field.
func BonusWordsFoundNEQ(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldBonusWordsFound, v))
}

// BonusWordsFoundIn applies the In predicate on the "bonus_words_found" field.
func BonusWordsFoundIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldBonusWordsFound, vs...))
}

// BonusWordsFoundNotIn applies the NotIn predicate on the "bonus_words_found" field.
func BonusWordsFoundNotIn(vs ...int) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldBonusWordsFound, vs...))
}

// BonusWordsFoundGT applies the GT predicate on the "bonus_words_found" field.
func BonusWordsFoundGT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldBonusWordsFound, v))
}

// BonusWordsFoundGTE applies the GTE predicate on the "bonus_words_found" field.
func BonusWordsFoundGTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldBonusWordsFound, v))
}

// BonusWordsFoundLT applies the LT predicate on the "bonus_words_found" field.
func BonusWordsFoundLT(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldBonusWordsFound, v))
}

// BonusWordsFoundLTE applies the LTE predicate on the "bonus_words_found" field.
func BonusWordsFoundLTE(v int) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldBonusWordsFound, v))
}

// TerminationReasonEQ applies the EQ predicate on the "termination_reason" field.
func TerminationReasonEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldTerminationReason, v))
}

// TerminationReasonNEQ applies the NEQ predicate on the "termination_reason" field.
func TerminationReasonNEQ(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldTerminationReason, v))
}

// TerminationReasonIn applies the In predicate on the "termination_reason" field.
func TerminationReasonIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldTerminationReason, vs...))
}

// TerminationReasonNotIn applies the NotIn predicate on the "termination_reason" field.
func TerminationReasonNotIn(vs ...string) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldTerminationReason, vs...))
}

// TerminationReasonGT applies the GT predicate on the "termination_reason" field.
func TerminationReasonGT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldTerminationReason, v))
}

// TerminationReasonGTE applies the GTE predicate on the "termination_reason" field.
func TerminationReasonGTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldTerminationReason, v))
}

// TerminationReasonLT applies the LT predicate on the "termination_reason" field.
func TerminationReasonLT(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldTerminationReason, v))
}

// TerminationReasonLTE applies the LTE predicate on the "termination_reason" field.
func TerminationReasonLTE(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldTerminationReason, v))
}

// TerminationReasonContains applies the Contains predicate on the "termination_reason" field.
func TerminationReasonContains(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContains(FieldTerminationReason, v))
}

// TerminationReasonHasPrefix applies the HasPrefix predicate on the "termination_reason" field.
func TerminationReasonHasPrefix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasPrefix(FieldTerminationReason, v))
}

// TerminationReasonHasSuffix applies the HasSuffix predicate on the "termination_reason" field.
func TerminationReasonHasSuffix(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldHasSuffix(FieldTerminationReason, v))
}

// TerminationReasonIsNil applies the IsNil predicate on the "termination_reason" field.
func TerminationReasonIsNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldIsNull(FieldTerminationReason))
}

// TerminationReasonNotNil applies the NotNil predicate on the "termination_reason" field.
func TerminationReasonNotNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldNotNull(FieldTerminationReason))
}

// TerminationReasonEqualFold applies the EqualFold predicate on the "termination_reason" field.
func TerminationReasonEqualFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldEqualFold(FieldTerminationReason, v))
}

// TerminationReasonContainsFold applies the ContainsFold predicate on the "termination_reason" field.
func TerminationReasonContainsFold(v string) predicate.GameSession {
	return predicate.GameSession(sql.FieldContainsFold(FieldTerminationReason, v))
}

// CompletedEQ applies the EQ predicate on the "completed" field.
func CompletedEQ(v bool) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompleted, v))
}

// CompletedNEQ applies the NEQ predicate on the "completed" field.
func CompletedNEQ(v bool) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldCompleted, v))
}

// StartedAtEQ applies the EQ predicate on the "started_at" field.
func StartedAtEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldStartedAt, v))
}

// StartedAtNEQ applies the NEQ predicate on the "started_at" field.
func StartedAtNEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldStartedAt, v))
}

// StartedAtIn applies the In predicate on the "started_at" field.
func StartedAtIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldStartedAt, vs...))
}

// StartedAtNotIn applies the NotIn predicate on the "started_at" field.
func StartedAtNotIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldStartedAt, vs...))
}

// StartedAtGT applies the GT predicate on the "started_at" field.
func StartedAtGT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldStartedAt, v))
}

// StartedAtGTE applies the GTE predicate on the "started_at" field.
func StartedAtGTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldStartedAt, v))
}

// StartedAtLT applies the LT predicate on the "started_at" field.
func StartedAtLT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldStartedAt, v))
}

// StartedAtLTE applies the LTE predicate on the "started_at" field.
func StartedAtLTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldStartedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.GameSession {
	return predicate.GameSession(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.GameSession {
	return predicate.GameSession(sql.FieldNotNull(FieldCompletedAt))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.GameSession) predicate.GameSession {
	return predicate.GameSession(sql.NotPredicates(p))
}
