// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/contentdoc"
)

// ContentDocCreate is the builder for creating a ContentDoc entity.
type ContentDocCreate struct {
	config
	mutation *ContentDocMutation
	hooks    []Hook
}

// SetTopic sets the "topic" field.
func (_c *ContentDocCreate) SetTopic(v string) *ContentDocCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetSkill sets the "skill" field.
func (_c *ContentDocCreate) SetSkill(v string) *ContentDocCreate {
	_c.mutation.SetSkill(v)
	return _c
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_c *ContentDocCreate) SetNillableSkill(v *string) *ContentDocCreate {
	if v != nil {
		_c.SetSkill(*v)
	}
	return _c
}

// SetLevel sets the "level" field.
func (_c *ContentDocCreate) SetLevel(v string) *ContentDocCreate {
	_c.mutation.SetLevel(v)
	return _c
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_c *ContentDocCreate) SetNillableLevel(v *string) *ContentDocCreate {
	if v != nil {
		_c.SetLevel(*v)
	}
	return _c
}

// SetText sets the "text" field.
func (_c *ContentDocCreate) SetText(v string) *ContentDocCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetEmbedding sets the "embedding" field.
func (_c *ContentDocCreate) SetEmbedding(v []float32) *ContentDocCreate {
	_c.mutation.SetEmbedding(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ContentDocCreate) SetCreatedAt(v time.Time) *ContentDocCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ContentDocCreate) SetNillableCreatedAt(v *time.Time) *ContentDocCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ContentDocMutation object of the builder.
func (_c *ContentDocCreate) Mutation() *ContentDocMutation {
	return _c.mutation
}

// Save creates the ContentDoc in the database.
func (_c *ContentDocCreate) Save(ctx context.Context) (*ContentDoc, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ContentDocCreate) SaveX(ctx context.Context) *ContentDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentDocCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentDocCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ContentDocCreate) defaults() {
	if _, ok := _c.mutation.Skill(); !ok {
		v := contentdoc.DefaultSkill
		_c.mutation.SetSkill(v)
	}
	if _, ok := _c.mutation.Level(); !ok {
		v := contentdoc.DefaultLevel
		_c.mutation.SetLevel(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := contentdoc.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ContentDocCreate) check() error {
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "ContentDoc.topic"`)}
	}
	if v, ok := _c.mutation.Topic(); ok {
		if err := contentdoc.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ContentDoc.topic": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Skill(); !ok {
		return &ValidationError{Name: "skill", err: errors.New(`ent: missing required field "ContentDoc.skill"`)}
	}
	if _, ok := _c.mutation.Level(); !ok {
		return &ValidationError{Name: "level", err: errors.New(`ent: missing required field "ContentDoc.level"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "ContentDoc.text"`)}
	}
	if v, ok := _c.mutation.Text(); ok {
		if err := contentdoc.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ContentDoc.text": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ContentDoc.created_at"`)}
	}
	return nil
}

func (_c *ContentDocCreate) sqlSave(ctx context.Context) (*ContentDoc, error) {
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

func (_c *ContentDocCreate) createSpec() (*ContentDoc, *sqlgraph.CreateSpec) {
	var (
		_node = &ContentDoc{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(contentdoc.Table, sqlgraph.NewFieldSpec(contentdoc.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(contentdoc.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.Skill(); ok {
		_spec.SetField(contentdoc.FieldSkill, field.TypeString, value)
		_node.Skill = value
	}
	if value, ok := _c.mutation.Level(); ok {
		_spec.SetField(contentdoc.FieldLevel, field.TypeString, value)
		_node.Level = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(contentdoc.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.Embedding(); ok {
		_spec.SetField(contentdoc.FieldEmbedding, field.TypeJSON, value)
		_node.Embedding = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(contentdoc.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ContentDocCreateBulk is the builder for creating many ContentDoc entities in bulk.
type ContentDocCreateBulk struct {
	config
	err      error
	builders []*ContentDocCreate
}

// Save creates the ContentDoc entities in the database.
func (_c *ContentDocCreateBulk) Save(ctx context.Context) ([]*ContentDoc, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ContentDoc, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ContentDocMutation)
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
func (_c *ContentDocCreateBulk) SaveX(ctx context.Context) []*ContentDoc {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ContentDocCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ContentDocCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
