// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adwitiya/lexio/ent/gamesession"
	"github.com/adwitiya/lexio/ent/predicate"
)

// GameSessionUpdate is the builder for updating GameSession entities.
type GameSessionUpdate struct {
	config
	hooks    []Hook
	mutation *GameSessionMutation
}

// Where appends a list predicates to the GameSessionUpdate builder.
func (_u *GameSessionUpdate) Where(ps ...predicate.GameSession) *GameSessionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetDocID sets the "doc_id" field.
func (_u *GameSessionUpdate) SetDocID(v string) *GameSessionUpdate {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableDocID(v *string) *GameSessionUpdate {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetGameType sets the "game_type" field.
func (_u *GameSessionUpdate) SetGameType(v string) *GameSessionUpdate {
	_u.mutation.SetGameType(v)
	return _u
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableGameType(v *string) *GameSessionUpdate {
	if v != nil {
		_u.SetGameType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GameSessionUpdate) SetDifficulty(v string) *GameSessionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableDifficulty(v *string) *GameSessionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GameSessionUpdate) SetScore(v int) *GameSessionUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableScore(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameSessionUpdate) AddScore(v int) *GameSessionUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetRoundsTotal sets the "rounds_total" field.
func (_u *GameSessionUpdate) SetRoundsTotal(v int) *GameSessionUpdate {
	_u.mutation.ResetRoundsTotal()
	_u.mutation.SetRoundsTotal(v)
	return _u
}

// SetNillableRoundsTotal sets the "rounds_total" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableRoundsTotal(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetRoundsTotal(*v)
	}
	return _u
}

// AddRoundsTotal adds value to the "rounds_total" field.
func (_u *GameSessionUpdate) AddRoundsTotal(v int) *GameSessionUpdate {
	_u.mutation.AddRoundsTotal(v)
	return _u
}

// SetRoundsCompleted sets the "rounds_completed" field.
func (_u *GameSessionUpdate) SetRoundsCompleted(v int) *GameSessionUpdate {
	_u.mutation.ResetRoundsCompleted()
	_u.mutation.SetRoundsCompleted(v)
	return _u
}

// SetNillableRoundsCompleted sets the "rounds_completed" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableRoundsCompleted(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetRoundsCompleted(*v)
	}
	return _u
}

// AddRoundsCompleted adds value to the "rounds_completed" field.
func (_u *GameSessionUpdate) AddRoundsCompleted(v int) *GameSessionUpdate {
	_u.mutation.AddRoundsCompleted(v)
	return _u
}

// SetMainWordsFound sets the "main_words_found" field.
func (_u *GameSessionUpdate) SetMainWordsFound(v int) *GameSessionUpdate {
	_u.mutation.ResetMainWordsFound()
	_u.mutation.SetMainWordsFound(v)
	return _u
}

// SetNillableMainWordsFound sets the "main_words_found" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableMainWordsFound(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetMainWordsFound(*v)
	}
	return _u
}

// AddMainWordsFound adds value to the "main_words_found" field.
func (_u *GameSessionUpdate) AddMainWordsFound(v int) *GameSessionUpdate {
	_u.mutation.AddMainWordsFound(v)
	return _u
}

// SetBonusWordsFound sets the "bonus_words_found" field.
func (_u *GameSessionUpdate) SetBonusWordsFound(v int) *GameSessionUpdate {
	_u.mutation.ResetBonusWordsFound()
	_u.mutation.SetBonusWordsFound(v)
	return _u
}

// SetNillableBonusWordsFound sets the "bonus_words_found" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableBonusWordsFound(v *int) *GameSessionUpdate {
	if v != nil {
		_u.SetBonusWordsFound(*v)
	}
	return _u
}

// AddBonusWordsFound adds value to the "bonus_words_found" field.
func (_u *GameSessionUpdate) AddBonusWordsFound(v int) *GameSessionUpdate {
	_u.mutation.AddBonusWordsFound(v)
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *GameSessionUpdate) SetTerminationReason(v string) *GameSessionUpdate {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableTerminationReason(v *string) *GameSessionUpdate {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *GameSessionUpdate) ClearTerminationReason() *GameSessionUpdate {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *GameSessionUpdate) SetCompleted(v bool) *GameSessionUpdate {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableCompleted(v *bool) *GameSessionUpdate {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GameSessionUpdate) SetCompletedAt(v time.Time) *GameSessionUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GameSessionUpdate) SetNillableCompletedAt(v *time.Time) *GameSessionUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GameSessionUpdate) ClearCompletedAt() *GameSessionUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GameSessionMutation object of the builder.
func (_u *GameSessionUpdate) Mutation() *GameSessionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GameSessionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameSessionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GameSessionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameSessionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameSessionUpdate) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := gamesession.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameType(); ok {
		if err := gamesession.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "GameSession.game_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := gamesession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GameSession.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := gamesession.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "GameSession.score": %w`, err)}
		}
	}
	return nil
}

func (_u *GameSessionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamesession.Table, gamesession.Columns, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(gamesession.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameType(); ok {
		_spec.SetField(gamesession.FieldGameType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(gamesession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoundsTotal(); ok {
		_spec.SetField(gamesession.FieldRoundsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsTotal(); ok {
		_spec.AddField(gamesession.FieldRoundsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoundsCompleted(); ok {
		_spec.SetField(gamesession.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsCompleted(); ok {
		_spec.AddField(gamesession.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MainWordsFound(); ok {
		_spec.SetField(gamesession.FieldMainWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMainWordsFound(); ok {
		_spec.AddField(gamesession.FieldMainWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusWordsFound(); ok {
		_spec.SetField(gamesession.FieldBonusWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusWordsFound(); ok {
		_spec.AddField(gamesession.FieldBonusWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(gamesession.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(gamesession.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(gamesession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(gamesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(gamesession.FieldCompletedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GameSessionUpdateOne is the builder for updating a single GameSession entity.
type GameSessionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GameSessionMutation
}

// SetDocID sets the "doc_id" field.
func (_u *GameSessionUpdateOne) SetDocID(v string) *GameSessionUpdateOne {
	_u.mutation.SetDocID(v)
	return _u
}

// SetNillableDocID sets the "doc_id" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableDocID(v *string) *GameSessionUpdateOne {
	if v != nil {
		_u.SetDocID(*v)
	}
	return _u
}

// SetGameType sets the "game_type" field.
func (_u *GameSessionUpdateOne) SetGameType(v string) *GameSessionUpdateOne {
	_u.mutation.SetGameType(v)
	return _u
}

// SetNillableGameType sets the "game_type" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableGameType(v *string) *GameSessionUpdateOne {
	if v != nil {
		_u.SetGameType(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *GameSessionUpdateOne) SetDifficulty(v string) *GameSessionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableDifficulty(v *string) *GameSessionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetScore sets the "score" field.
func (_u *GameSessionUpdateOne) SetScore(v int) *GameSessionUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableScore(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *GameSessionUpdateOne) AddScore(v int) *GameSessionUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetRoundsTotal sets the "rounds_total" field.
func (_u *GameSessionUpdateOne) SetRoundsTotal(v int) *GameSessionUpdateOne {
	_u.mutation.ResetRoundsTotal()
	_u.mutation.SetRoundsTotal(v)
	return _u
}

// SetNillableRoundsTotal sets the "rounds_total" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableRoundsTotal(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetRoundsTotal(*v)
	}
	return _u
}

// AddRoundsTotal adds value to the "rounds_total" field.
func (_u *GameSessionUpdateOne) AddRoundsTotal(v int) *GameSessionUpdateOne {
	_u.mutation.AddRoundsTotal(v)
	return _u
}

// SetRoundsCompleted sets the "rounds_completed" field.
func (_u *GameSessionUpdateOne) SetRoundsCompleted(v int) *GameSessionUpdateOne {
	_u.mutation.ResetRoundsCompleted()
	_u.mutation.SetRoundsCompleted(v)
	return _u
}

// SetNillableRoundsCompleted sets the "rounds_completed" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableRoundsCompleted(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetRoundsCompleted(*v)
	}
	return _u
}

// AddRoundsCompleted adds value to the "rounds_completed" field.
func (_u *GameSessionUpdateOne) AddRoundsCompleted(v int) *GameSessionUpdateOne {
	_u.mutation.AddRoundsCompleted(v)
	return _u
}

// SetMainWordsFound sets the "main_words_found" field.
func (_u *GameSessionUpdateOne) SetMainWordsFound(v int) *GameSessionUpdateOne {
	_u.mutation.ResetMainWordsFound()
	_u.mutation.SetMainWordsFound(v)
	return _u
}

// SetNillableMainWordsFound sets the "main_words_found" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableMainWordsFound(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetMainWordsFound(*v)
	}
	return _u
}

// AddMainWordsFound adds value to the "main_words_found" field.
func (_u *GameSessionUpdateOne) AddMainWordsFound(v int) *GameSessionUpdateOne {
	_u.mutation.AddMainWordsFound(v)
	return _u
}

// SetBonusWordsFound sets the "bonus_words_found" field.
func (_u *GameSessionUpdateOne) SetBonusWordsFound(v int) *GameSessionUpdateOne {
	_u.mutation.ResetBonusWordsFound()
	_u.mutation.SetBonusWordsFound(v)
	return _u
}

// SetNillableBonusWordsFound sets the "bonus_words_found" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableBonusWordsFound(v *int) *GameSessionUpdateOne {
	if v != nil {
		_u.SetBonusWordsFound(*v)
	}
	return _u
}

// AddBonusWordsFound adds value to the "bonus_words_found" field.
func (_u *GameSessionUpdateOne) AddBonusWordsFound(v int) *GameSessionUpdateOne {
	_u.mutation.AddBonusWordsFound(v)
	return _u
}

// SetTerminationReason sets the "termination_reason" field.
func (_u *GameSessionUpdateOne) SetTerminationReason(v string) *GameSessionUpdateOne {
	_u.mutation.SetTerminationReason(v)
	return _u
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableTerminationReason(v *string) *GameSessionUpdateOne {
	if v != nil {
		_u.SetTerminationReason(*v)
	}
	return _u
}

// ClearTerminationReason clears the value of the "termination_reason" field.
func (_u *GameSessionUpdateOne) ClearTerminationReason() *GameSessionUpdateOne {
	_u.mutation.ClearTerminationReason()
	return _u
}

// SetCompleted sets the "completed" field.
func (_u *GameSessionUpdateOne) SetCompleted(v bool) *GameSessionUpdateOne {
	_u.mutation.SetCompleted(v)
	return _u
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableCompleted(v *bool) *GameSessionUpdateOne {
	if v != nil {
		_u.SetCompleted(*v)
	}
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *GameSessionUpdateOne) SetCompletedAt(v time.Time) *GameSessionUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *GameSessionUpdateOne) SetNillableCompletedAt(v *time.Time) *GameSessionUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *GameSessionUpdateOne) ClearCompletedAt() *GameSessionUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// Mutation returns the GameSessionMutation object of the builder.
func (_u *GameSessionUpdateOne) Mutation() *GameSessionMutation {
	return _u.mutation
}

// Where appends a list predicates to the GameSessionUpdate builder.
func (_u *GameSessionUpdateOne) Where(ps ...predicate.GameSession) *GameSessionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GameSessionUpdateOne) Select(field string, fields ...string) *GameSessionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GameSession entity.
func (_u *GameSessionUpdateOne) Save(ctx context.Context) (*GameSession, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GameSessionUpdateOne) SaveX(ctx context.Context) *GameSession {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GameSessionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GameSessionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GameSessionUpdateOne) check() error {
	if v, ok := _u.mutation.DocID(); ok {
		if err := gamesession.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.doc_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.GameType(); ok {
		if err := gamesession.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "GameSession.game_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Difficulty(); ok {
		if err := gamesession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GameSession.difficulty": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Score(); ok {
		if err := gamesession.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "GameSession.score": %w`, err)}
		}
	}
	return nil
}

func (_u *GameSessionUpdateOne) sqlSave(ctx context.Context) (_node *GameSession, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(gamesession.Table, gamesession.Columns, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GameSession.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, gamesession.FieldID)
		for _, f := range fields {
			if !gamesession.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != gamesession.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.DocID(); ok {
		_spec.SetField(gamesession.FieldDocID, field.TypeString, value)
	}
	if value, ok := _u.mutation.GameType(); ok {
		_spec.SetField(gamesession.FieldGameType, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(gamesession.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(gamesession.FieldScore, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoundsTotal(); ok {
		_spec.SetField(gamesession.FieldRoundsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsTotal(); ok {
		_spec.AddField(gamesession.FieldRoundsTotal, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RoundsCompleted(); ok {
		_spec.SetField(gamesession.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedRoundsCompleted(); ok {
		_spec.AddField(gamesession.FieldRoundsCompleted, field.TypeInt, value)
	}
	if value, ok := _u.mutation.MainWordsFound(); ok {
		_spec.SetField(gamesession.FieldMainWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMainWordsFound(); ok {
		_spec.AddField(gamesession.FieldMainWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.BonusWordsFound(); ok {
		_spec.SetField(gamesession.FieldBonusWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBonusWordsFound(); ok {
		_spec.AddField(gamesession.FieldBonusWordsFound, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TerminationReason(); ok {
		_spec.SetField(gamesession.FieldTerminationReason, field.TypeString, value)
	}
	if _u.mutation.TerminationReasonCleared() {
		_spec.ClearField(gamesession.FieldTerminationReason, field.TypeString)
	}
	if value, ok := _u.mutation.Completed(); ok {
		_spec.SetField(gamesession.FieldCompleted, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(gamesession.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(gamesession.FieldCompletedAt, field.TypeTime)
	}
	_node = &GameSession{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{gamesession.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
