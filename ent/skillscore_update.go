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
	"github.com/tutorloop/tutorloop/ent/predicate"
	"github.com/tutorloop/tutorloop/ent/skillscore"
)

// SkillScoreUpdate is the builder for updating SkillScore entities.
type SkillScoreUpdate struct {
	config
	hooks    []Hook
	mutation *SkillScoreMutation
}

// Where appends a list predicates to the SkillScoreUpdate builder.
func (_u *SkillScoreUpdate) Where(ps ...predicate.SkillScore) *SkillScoreUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetEmaScore sets the "ema_score" field.
func (_u *SkillScoreUpdate) SetEmaScore(v float64) *SkillScoreUpdate {
	_u.mutation.ResetEmaScore()
	_u.mutation.SetEmaScore(v)
	return _u
}

// SetNillableEmaScore sets the "ema_score" field if the given value is not nil.
func (_u *SkillScoreUpdate) SetNillableEmaScore(v *float64) *SkillScoreUpdate {
	if v != nil {
		_u.SetEmaScore(*v)
	}
	return _u
}

// AddEmaScore adds value to the "ema_score" field.
func (_u *SkillScoreUpdate) AddEmaScore(v float64) *SkillScoreUpdate {
	_u.mutation.AddEmaScore(v)
	return _u
}

// SetEmaAlpha sets the "ema_alpha" field.
func (_u *SkillScoreUpdate) SetEmaAlpha(v float64) *SkillScoreUpdate {
	_u.mutation.ResetEmaAlpha()
	_u.mutation.SetEmaAlpha(v)
	return _u
}

// SetNillableEmaAlpha sets the "ema_alpha" field if the given value is not nil.
func (_u *SkillScoreUpdate) SetNillableEmaAlpha(v *float64) *SkillScoreUpdate {
	if v != nil {
		_u.SetEmaAlpha(*v)
	}
	return _u
}

// AddEmaAlpha adds value to the "ema_alpha" field.
func (_u *SkillScoreUpdate) AddEmaAlpha(v float64) *SkillScoreUpdate {
	_u.mutation.AddEmaAlpha(v)
	return _u
}

// SetIrtTheta sets the "irt_theta" field.
func (_u *SkillScoreUpdate) SetIrtTheta(v float64) *SkillScoreUpdate {
	_u.mutation.ResetIrtTheta()
	_u.mutation.SetIrtTheta(v)
	return _u
}

// SetNillableIrtTheta sets the "irt_theta" field if the given value is not nil.
func (_u *SkillScoreUpdate) SetNillableIrtTheta(v *float64) *SkillScoreUpdate {
	if v != nil {
		_u.SetIrtTheta(*v)
	}
	return _u
}

// AddIrtTheta adds value to the "irt_theta" field.
func (_u *SkillScoreUpdate) AddIrtTheta(v float64) *SkillScoreUpdate {
	_u.mutation.AddIrtTheta(v)
	return _u
}

// SetLastUpdate sets the "last_update" field.
func (_u *SkillScoreUpdate) SetLastUpdate(v time.Time) *SkillScoreUpdate {
	_u.mutation.SetLastUpdate(v)
	return _u
}

// Mutation returns the SkillScoreMutation object of the builder.
func (_u *SkillScoreUpdate) Mutation() *SkillScoreMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SkillScoreUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillScoreUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SkillScoreUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillScoreUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillScoreUpdate) defaults() {
	if _, ok := _u.mutation.LastUpdate(); !ok {
		v := skillscore.UpdateDefaultLastUpdate()
		_u.mutation.SetLastUpdate(v)
	}
}

func (_u *SkillScoreUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillscore.Table, skillscore.Columns, sqlgraph.NewFieldSpec(skillscore.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.EmaScore(); ok {
		_spec.SetField(skillscore.FieldEmaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaScore(); ok {
		_spec.AddField(skillscore.FieldEmaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmaAlpha(); ok {
		_spec.SetField(skillscore.FieldEmaAlpha, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaAlpha(); ok {
		_spec.AddField(skillscore.FieldEmaAlpha, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtTheta(); ok {
		_spec.SetField(skillscore.FieldIrtTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtTheta(); ok {
		_spec.AddField(skillscore.FieldIrtTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdate(); ok {
		_spec.SetField(skillscore.FieldLastUpdate, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SkillScoreUpdateOne is the builder for updating a single SkillScore entity.
type SkillScoreUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SkillScoreMutation
}

// SetEmaScore sets the "ema_score" field.
func (_u *SkillScoreUpdateOne) SetEmaScore(v float64) *SkillScoreUpdateOne {
	_u.mutation.ResetEmaScore()
	_u.mutation.SetEmaScore(v)
	return _u
}

// SetNillableEmaScore sets the "ema_score" field if the given value is not nil.
func (_u *SkillScoreUpdateOne) SetNillableEmaScore(v *float64) *SkillScoreUpdateOne {
	if v != nil {
		_u.SetEmaScore(*v)
	}
	return _u
}

// AddEmaScore adds value to the "ema_score" field.
func (_u *SkillScoreUpdateOne) AddEmaScore(v float64) *SkillScoreUpdateOne {
	_u.mutation.AddEmaScore(v)
	return _u
}

// SetEmaAlpha sets the "ema_alpha" field.
func (_u *SkillScoreUpdateOne) SetEmaAlpha(v float64) *SkillScoreUpdateOne {
	_u.mutation.ResetEmaAlpha()
	_u.mutation.SetEmaAlpha(v)
	return _u
}

// SetNillableEmaAlpha sets the "ema_alpha" field if the given value is not nil.
func (_u *SkillScoreUpdateOne) SetNillableEmaAlpha(v *float64) *SkillScoreUpdateOne {
	if v != nil {
		_u.SetEmaAlpha(*v)
	}
	return _u
}

// AddEmaAlpha adds value to the "ema_alpha" field.
func (_u *SkillScoreUpdateOne) AddEmaAlpha(v float64) *SkillScoreUpdateOne {
	_u.mutation.AddEmaAlpha(v)
	return _u
}

// SetIrtTheta sets the "irt_theta" field.
func (_u *SkillScoreUpdateOne) SetIrtTheta(v float64) *SkillScoreUpdateOne {
	_u.mutation.ResetIrtTheta()
	_u.mutation.SetIrtTheta(v)
	return _u
}

// SetNillableIrtTheta sets the "irt_theta" field if the given value is not nil.
func (_u *SkillScoreUpdateOne) SetNillableIrtTheta(v *float64) *SkillScoreUpdateOne {
	if v != nil {
		_u.SetIrtTheta(*v)
	}
	return _u
}

// AddIrtTheta adds value to the "irt_theta" field.
func (_u *SkillScoreUpdateOne) AddIrtTheta(v float64) *SkillScoreUpdateOne {
	_u.mutation.AddIrtTheta(v)
	return _u
}

// SetLastUpdate sets the "last_update" field.
func (_u *SkillScoreUpdateOne) SetLastUpdate(v time.Time) *SkillScoreUpdateOne {
	_u.mutation.SetLastUpdate(v)
	return _u
}

// Mutation returns the SkillScoreMutation object of the builder.
func (_u *SkillScoreUpdateOne) Mutation() *SkillScoreMutation {
	return _u.mutation
}

// Where appends a list predicates to the SkillScoreUpdate builder.
func (_u *SkillScoreUpdateOne) Where(ps ...predicate.SkillScore) *SkillScoreUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SkillScoreUpdateOne) Select(field string, fields ...string) *SkillScoreUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated SkillScore entity.
func (_u *SkillScoreUpdateOne) Save(ctx context.Context) (*SkillScore, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SkillScoreUpdateOne) SaveX(ctx context.Context) *SkillScore {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SkillScoreUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SkillScoreUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *SkillScoreUpdateOne) defaults() {
	if _, ok := _u.mutation.LastUpdate(); !ok {
		v := skillscore.UpdateDefaultLastUpdate()
		_u.mutation.SetLastUpdate(v)
	}
}

func (_u *SkillScoreUpdateOne) sqlSave(ctx context.Context) (_node *SkillScore, err error) {
	_spec := sqlgraph.NewUpdateSpec(skillscore.Table, skillscore.Columns, sqlgraph.NewFieldSpec(skillscore.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "SkillScore.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, skillscore.FieldID)
		for _, f := range fields {
			if !skillscore.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != skillscore.FieldID {
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
	if value, ok := _u.mutation.EmaScore(); ok {
		_spec.SetField(skillscore.FieldEmaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaScore(); ok {
		_spec.AddField(skillscore.FieldEmaScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.EmaAlpha(); ok {
		_spec.SetField(skillscore.FieldEmaAlpha, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEmaAlpha(); ok {
		_spec.AddField(skillscore.FieldEmaAlpha, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.IrtTheta(); ok {
		_spec.SetField(skillscore.FieldIrtTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedIrtTheta(); ok {
		_spec.AddField(skillscore.FieldIrtTheta, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.LastUpdate(); ok {
		_spec.SetField(skillscore.FieldLastUpdate, field.TypeTime, value)
	}
	_node = &SkillScore{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{skillscore.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
