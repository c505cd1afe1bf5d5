// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/skillscore"
)

// SkillScoreCreate is the builder for creating a SkillScore entity.
type SkillScoreCreate struct {
	config
	mutation *SkillScoreMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *SkillScoreCreate) SetSessionID(v string) *SkillScoreCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *SkillScoreCreate) SetSkill(v string) *SkillScoreCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetEmaScore sets the "ema_score" field.
func (_c *SkillScoreCreate) SetEmaScore(v float64) *SkillScoreCreate {
	_c.mutation.SetEmaScore(v)
	return _c
}

// SetNillableEmaScore sets the "ema_score" field if the given value is not nil.
func (_c *SkillScoreCreate) SetNillableEmaScore(v *float64) *SkillScoreCreate {
	if v != nil {
		_c.SetEmaScore(*v)
	}
	return _c
}

// SetEmaAlpha sets the "ema_alpha" field.
func (_c *SkillScoreCreate) SetEmaAlpha(v float64) *SkillScoreCreate {
	_c.mutation.SetEmaAlpha(v)
	return _c
}

// SetNillableEmaAlpha sets the "ema_alpha" field if the given value is not nil.
func (_c *SkillScoreCreate) SetNillableEmaAlpha(v *float64) *SkillScoreCreate {
	if v != nil {
		_c.SetEmaAlpha(*v)
	}
	return _c
}

// SetIrtTheta sets the "irt_theta" field.
func (_c *SkillScoreCreate) SetIrtTheta(v float64) *SkillScoreCreate {
	_c.mutation.SetIrtTheta(v)
	return _c
}

// SetNillableIrtTheta sets the "irt_theta" field if the given value is not nil.
func (_c *SkillScoreCreate) SetNillableIrtTheta(v *float64) *SkillScoreCreate {
	if v != nil {
		_c.SetIrtTheta(*v)
	}
	return _c
}

// SetLastUpdate sets the "last_update" field.
func (_c *SkillScoreCreate) SetLastUpdate(v time.Time) *SkillScoreCreate {
	_c.mutation.SetLastUpdate(v)
	return _c
}

// SetNillableLastUpdate sets the "last_update" field if the given value is not nil.
func (_c *SkillScoreCreate) SetNillableLastUpdate(v *time.Time) *SkillScoreCreate {
	if v != nil {
		_c.SetLastUpdate(*v)
	}
	return _c
}

// Mutation returns the SkillScoreMutation object of the builder.
func (_c *SkillScoreCreate) Mutation() *SkillScoreMutation {
	return _c.mutation
}

// Save creates the SkillScore in the database.
func (_c *SkillScoreCreate) Save(ctx context.Context) (*SkillScore, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SkillScoreCreate) SaveX(ctx context.Context) *SkillScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillScoreCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillScoreCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *SkillScoreCreate) defaults() {
	if _, ok := _c.mutation.EmaScore(); !ok {
		v := skillscore.DefaultEmaScore
		_c.mutation.SetEmaScore(v)
	}
	if _, ok := _c.mutation.EmaAlpha(); !ok {
		v := skillscore.DefaultEmaAlpha
		_c.mutation.SetEmaAlpha(v)
	}
	if _, ok := _c.mutation.IrtTheta(); !ok {
		v := skillscore.DefaultIrtTheta
		_c.mutation.SetIrtTheta(v)
	}
	if _, ok := _c.mutation.LastUpdate(); !ok {
		v := skillscore.DefaultLastUpdate()
		_c.mutation.SetLastUpdate(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SkillScoreCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "SkillScore.session_id"`)}
	}
	if v, ok := _c.mutation.SessionID(); ok {
		if err := skillscore.SessionIDValidator(v); err != nil {
			return &ValidationError{Name: "session_id", err: fmt.Errorf(`ent: validator failed for field "SkillScore.session_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "SkillScore.skill"`)}
	}
	if v, ok := _c.mutation.Skill(); ok {
		if err := skillscore.SkillValidator(v); err != nil {
			return &ValidationError{Name: "skill", err: fmt.Errorf(`ent: validator failed for field "SkillScore.skill": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EmaScore(); !ok {
		return &ValidationError{Name: "ema_score", err: errors.New(`ent: missing required field "SkillScore.ema_score"`)}
	}
	if _, ok := _c.mutation.EmaAlpha(); !ok {
		return &ValidationError{Name: "ema_alpha", err: errors.New(`ent: missing required field "SkillScore.ema_alpha"`)}
	}
	if _, ok := _c.mutation.IrtTheta(); !ok {
		return &ValidationError{Name: "irt_theta", err: errors.New(`ent: missing required field "SkillScore.irt_theta"`)}
	}
	if _, ok := _c.mutation.LastUpdate(); !ok {
		return &ValidationError{Name: "last_update", err: errors.New(`ent: missing required field "SkillScore.last_update"`)}
	}
	return nil
}

func (_c *SkillScoreCreate) sqlSave(ctx context.Context) (*SkillScore, error) {
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

func (_c *SkillScoreCreate) createSpec() (*SkillScore, *sqlgraph.CreateSpec) {
	var (
		_node = &SkillScore{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(skillscore.Table, sqlgraph.NewFieldSpec(skillscore.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(skillscore.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(skillscore.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.EmaScore(); ok {
		_spec.SetField(skillscore.FieldEmaScore, field.TypeFloat64, value)
		_node.EmaScore = value
	}
	if value, ok := _c.mutation.EmaAlpha(); ok {
		_spec.SetField(skillscore.FieldEmaAlpha, field.TypeFloat64, value)
		_node.EmaAlpha = value
	}
	if value, ok := _c.mutation.IrtTheta(); ok {
		_spec.SetField(skillscore.FieldIrtTheta, field.TypeFloat64, value)
		_node.IrtTheta = value
	}
	if value, ok := _c.mutation.LastUpdate(); ok {
		_spec.SetField(skillscore.FieldLastUpdate, field.TypeTime, value)
		_node.LastUpdate = value
	}
	return _node, _spec
}

// SkillScoreCreateBulk is the builder for creating many SkillScore entities in bulk.
type SkillScoreCreateBulk struct {
	config
	err      error
	builders []*SkillScoreCreate
}

// Save creates the SkillScore entities in the database.
func (_c *SkillScoreCreateBulk) Save(ctx context.Context) ([]*SkillScore, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*SkillScore, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SkillScoreMutation)
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
func (_c *SkillScoreCreateBulk) SaveX(ctx context.Context) []*SkillScore {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SkillScoreCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SkillScoreCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
