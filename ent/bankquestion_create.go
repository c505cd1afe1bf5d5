// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/bankquestion"
)

// BankQuestionCreate is the builder for creating a BankQuestion entity.
type BankQuestionCreate struct {
	config
	mutation *BankQuestionMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *BankQuestionCreate) SetTopic(v string) *BankQuestionCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetPosition sets the "position" field.
func (_c *BankQuestionCreate) SetPosition(v int) *BankQuestionCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetText sets the "text" field.
func (_c *BankQuestionCreate) SetText(v string) *BankQuestionCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetIdealAnswer sets the "ideal_answer" field.
func (_c *BankQuestionCreate) SetIdealAnswer(v string) *BankQuestionCreate {
	_c.mutation.SetIdealAnswer(v)
	return _c
}

// SetNillableIdealAnswer sets the "ideal_answer" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableIdealAnswer(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetIdealAnswer(*v)
	}
	return _c
}

// SetBloomHint sets the "bloom_hint" field.
func (_c *BankQuestionCreate) SetBloomHint(v string) *BankQuestionCreate {
	_c.mutation.SetBloomHint(v)
	return _c
}

// SetNillableBloomHint sets the "bloom_hint" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableBloomHint(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetBloomHint(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *BankQuestionCreate) SetDifficulty(v string) *BankQuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableDifficulty(v *string) *BankQuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BankQuestionCreate) SetCreatedAt(v time.Time) *BankQuestionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BankQuestionCreate) SetNillableCreatedAt(v *time.Time) *BankQuestionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the BankQuestionMutation object of the builder.
func (_c *BankQuestionCreate) Mutation() *BankQuestionMutation {
	return _c.mutation
}

// Save creates the BankQuestion in the database.
func (_c *BankQuestionCreate) Save(ctx context.Context) (*BankQuestion, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BankQuestionCreate) SaveX(ctx context.Context) *BankQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankQuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankQuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BankQuestionCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := bankquestion.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BankQuestionCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "BankQuestion.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := bankquestion.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BankQuestion.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "BankQuestion.position"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "BankQuestion.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := bankquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "BankQuestion.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BankQuestion.created_at"`)}
	}
	return nil
}

func (_c *BankQuestionCreate) sqlSave(ctx context.Context) (*BankQuestion, error) {
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

func (_c *BankQuestionCreate) createSpec() (*BankQuestion, *sqlgraph.CreateSpec) {
	var (
		_node = &BankQuestion{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(bankquestion.Table, sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(bankquestion.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(bankquestion.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(bankquestion.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.IdealAnswer(); ok {
		_spec.SetField(bankquestion.FieldIdealAnswer, field.TypeString, value)
		_node.IdealAnswer = value
	}
	if value, ok := _c.mutation.BloomHint(); ok {
		_spec.SetField(bankquestion.FieldBloomHint, field.TypeString, value)
		_node.BloomHint = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(bankquestion.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(bankquestion.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// BankQuestionCreateBulk is the builder for creating many BankQuestion entities in bulk.
type BankQuestionCreateBulk struct {
	config
	err      error
	builders []*BankQuestionCreate
}

// Save creates the BankQuestion entities in the database.
func (_c *BankQuestionCreateBulk) Save(ctx context.Context) ([]*BankQuestion, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BankQuestion, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BankQuestionMutation)
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
func (_c *BankQuestionCreateBulk) SaveX(ctx context.Context) []*BankQuestion {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BankQuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BankQuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
