// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/adwitiya/lexio/ent/gamesession"
)

// GameSessionCreate is the builder for creating a GameSession entity.
type GameSessionCreate struct {
	config
	mutation *GameSessionMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *GameSessionCreate) SetSessionID(v string) *GameSessionCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetDocID sets the "doc_id" field.
func (_c *GameSessionCreate) SetDocID(v string) *GameSessionCreate {
	_c.mutation.SetDocID(v)
	return _c
}

// SetGameType sets the "game_type" field.
func (_c *GameSessionCreate) SetGameType(v string) *GameSessionCreate {
	_c.mutation.SetGameType(v)
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *GameSessionCreate) SetDifficulty(v string) *GameSessionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *GameSessionCreate) SetScore(v int) *GameSessionCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableScore(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetScore(*v)
	}
	return _c
}

// SetRoundsTotal sets the "rounds_total" field.
func (_c *GameSessionCreate) SetRoundsTotal(v int) *GameSessionCreate {
	_c.mutation.SetRoundsTotal(v)
	return _c
}

// SetNillableRoundsTotal sets the "rounds_total" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableRoundsTotal(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetRoundsTotal(*v)
	}
	return _c
}

// SetRoundsCompleted sets the "rounds_completed" field.
func (_c *GameSessionCreate) SetRoundsCompleted(v int) *GameSessionCreate {
	_c.mutation.SetRoundsCompleted(v)
	return _c
}

// SetNillableRoundsCompleted sets the "rounds_completed" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableRoundsCompleted(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetRoundsCompleted(*v)
	}
	return _c
}

// SetMainWordsFound sets the "main_words_found" field.
func (_c *GameSessionCreate) SetMainWordsFound(v int) *GameSessionCreate {
	_c.mutation.SetMainWordsFound(v)
	return _c
}

// SetNillableMainWordsFound sets the "main_words_found" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableMainWordsFound(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetMainWordsFound(*v)
	}
	return _c
}

// SetBonusWordsFound sets the "bonus_words_found" field.
func (_c *GameSessionCreate) SetBonusWordsFound(v int) *GameSessionCreate {
	_c.mutation.SetBonusWordsFound(v)
	return _c
}

// SetNillableBonusWordsFound sets the "bonus_words_found" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableBonusWordsFound(v *int) *GameSessionCreate {
	if v != nil {
		_c.SetBonusWordsFound(*v)
	}
	return _c
}

// SetTerminationReason sets the "termination_reason" field.
func (_c *GameSessionCreate) SetTerminationReason(v string) *GameSessionCreate {
	_c.mutation.SetTerminationReason(v)
	return _c
}

// SetNillableTerminationReason sets the "termination_reason" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableTerminationReason(v *string) *GameSessionCreate {
	if v != nil {
		_c.SetTerminationReason(*v)
	}
	return _c
}

// SetCompleted sets the "completed" field.
func (_c *GameSessionCreate) SetCompleted(v bool) *GameSessionCreate {
	_c.mutation.SetCompleted(v)
	return _c
}

// SetNillableCompleted sets the "completed" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableCompleted(v *bool) *GameSessionCreate {
	if v != nil {
		_c.SetCompleted(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *GameSessionCreate) SetStartedAt(v time.Time) *GameSessionCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableStartedAt(v *time.Time) *GameSessionCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *GameSessionCreate) SetCompletedAt(v time.Time) *GameSessionCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *GameSessionCreate) SetNillableCompletedAt(v *time.Time) *GameSessionCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// Mutation returns the GameSessionMutation object of the builder.
func (_c *GameSessionCreate) Mutation() *GameSessionMutation {
	return _c.mutation
}

// Save creates the GameSession in the database.
func (_c *GameSessionCreate) Save(ctx context.Context) (*GameSession, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GameSessionCreate) SaveX(ctx context.Context) *GameSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameSessionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameSessionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GameSessionCreate) defaults() {
	if _, ok := _c.mutation.Score(); !ok {
		v := gamesession.DefaultScore
		_c.mutation.SetScore(v)
	}
	if _, ok := _c.mutation.RoundsTotal(); !ok {
		v := gamesession.DefaultRoundsTotal
		_c.mutation.SetRoundsTotal(v)
	}
	if _, ok := _c.mutation.RoundsCompleted(); !ok {
		v := gamesession.DefaultRoundsCompleted
		_c.mutation.SetRoundsCompleted(v)
	}
	if _, ok := _c.mutation.MainWordsFound(); !ok {
		v := gamesession.DefaultMainWordsFound
		_c.mutation.SetMainWordsFound(v)
	}
	if _, ok := _c.mutation.BonusWordsFound(); !ok {
		v := gamesession.DefaultBonusWordsFound
		_c.mutation.SetBonusWordsFound(v)
	}
	if _, ok := _c.mutation.TerminationReason(); !ok {
		v := gamesession.DefaultTerminationReason
		_c.mutation.SetTerminationReason(v)
	}
	if _, ok := _c.mutation.Completed(); !ok {
		v := gamesession.DefaultCompleted
		_c.mutation.SetCompleted(v)
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		v := gamesession.DefaultStartedAt()
		_c.mutation.SetStartedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GameSessionCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "GameSession.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := gamesession.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DocID(); !ok {
		return &ValidationError{Name: "doc_id", err: errors.New(`ent: missing required field "GameSession.doc_id"`)}
	}
	if v, ok := _c.mutation.DocID(); ok {
		if err := gamesession.DocIDValidator(v); err != nil {
			return &ValidationError{Name: "doc_id", err: fmt.Errorf(`ent: validator failed for field "GameSession.doc_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.GameType(); !ok {
		return &ValidationError{Name: "game_type", err: errors.New(`ent: missing required field "GameSession.game_type"`)}
	}
	if v, ok := _c.mutation.GameType(); ok {
		if err := gamesession.GameTypeValidator(v); err != nil {
			return &ValidationError{Name: "game_type", err: fmt.Errorf(`ent: validator failed for field "GameSession.game_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "GameSession.difficulty"`)}
	}
	if v, ok := _c.mutation.Difficulty(); ok {
		if err := gamesession.DifficultyValidator(v); err != nil {
			return &ValidationError{Name: "difficulty", err: fmt.Errorf(`ent: validator failed for field "GameSession.difficulty": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "GameSession.score"`)}
	}
	if v, ok := _c.mutation.Score(); ok {
		if err := gamesession.ScoreValidator(v); err != nil {
			return &ValidationError{Name: "score", err: fmt.Errorf(`ent: validator failed for field "GameSession.score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RoundsTotal(); !ok {
		return &ValidationError{Name: "rounds_total", err: errors.New(`ent: missing required field "GameSession.rounds_total"`)}
	}
	if _, ok := _c.mutation.RoundsCompleted(); !ok {
		return &ValidationError{Name: "rounds_completed", err: errors.New(`ent: missing required field "GameSession.rounds_completed"`)}
	}
	if _, ok := _c.mutation.MainWordsFound(); !ok {
		return &ValidationError{Name: "main_words_found", err: errors.New(`ent: missing required field "GameSession.main_words_found"`)}
	}
	if _, ok := _c.mutation.BonusWordsFound(); !ok {
		return &ValidationError{Name: "bonus_words_found", err: errors.New(`ent: missing required field "GameSession.bonus_words_found"`)}
	}
	if _, ok := _c.mutation.Completed(); !ok {
		return &ValidationError{Name: "completed", err: errors.New(`ent: missing required field "GameSession.completed"`)}
	}
	if _, ok := _c.mutation.StartedAt(); !ok {
		return &ValidationError{Name: "started_at", err: errors.New(`ent: missing required field "GameSession.started_at"`)}
	}
	return nil
}

func (_c *GameSessionCreate) sqlSave(ctx context.Context) (*GameSession, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *GameSessionCreate) createSpec() (*GameSession, *sqlgraph.CreateSpec) {
	var (
		_node = &GameSession{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(gamesession.Table, sqlgraph.NewFieldSpec(gamesession.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(gamesession.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.DocID(); ok {
		_spec.SetField(gamesession.FieldDocID, field.TypeString, value)
		_node.DocID = value
	}
	if value, ok := _c.mutation.GameType(); ok {
		_spec.SetField(gamesession.FieldGameType, field.TypeString, value)
		_node.GameType = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(gamesession.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(gamesession.FieldScore, field.TypeInt, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.RoundsTotal(); ok {
		_spec.SetField(gamesession.FieldRoundsTotal, field.TypeInt, value)
		_node.RoundsTotal = value
	}
	if value, ok := _c.mutation.RoundsCompleted(); ok {
		_spec.SetField(gamesession.FieldRoundsCompleted, field.TypeInt, value)
		_node.RoundsCompleted = value
	}
	if value, ok := _c.mutation.MainWordsFound(); ok {
		_spec.SetField(gamesession.FieldMainWordsFound, field.TypeInt, value)
		_node.MainWordsFound = value
	}
	if value, ok := _c.mutation.BonusWordsFound(); ok {
		_spec.SetField(gamesession.FieldBonusWordsFound, field.TypeInt, value)
		_node.BonusWordsFound = value
	}
	if value, ok := _c.mutation.TerminationReason(); ok {
		_spec.SetField(gamesession.FieldTerminationReason, field.TypeString, value)
		_node.TerminationReason = value
	}
	if value, ok := _c.mutation.Completed(); ok {
		_spec.SetField(gamesession.FieldCompleted, field.TypeBool, value)
		_node.Completed = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(gamesession.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(gamesession.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	return _node, _spec
}

// GameSessionCreateBulk is the builder for creating many GameSession entities in bulk.
type GameSessionCreateBulk struct {
	config
	err      error
	builders []*GameSessionCreate
}

// Save creates the GameSession entities in the database.
func (_c *GameSessionCreateBulk) Save(ctx context.Context) ([]*GameSession, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GameSession, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GameSessionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *GameSessionCreateBulk) SaveX(ctx context.Context) []*GameSession {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GameSessionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GameSessionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
