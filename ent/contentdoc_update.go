// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/contentdoc"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// ContentDocUpdate is the builder for updating ContentDoc entities.
type ContentDocUpdate struct {
	config
	hooks    []Hook
	mutation *ContentDocMutation
}

// Where appends a list predicates to the ContentDocUpdate builder.
func (_u *ContentDocUpdate) Where(ps ...predicate.ContentDoc) *ContentDocUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *ContentDocUpdate) SetTopic(v string) *ContentDocUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ContentDocUpdate) SetNillableTopic(v *string) *ContentDocUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ContentDocUpdate) SetSkill(v string) *ContentDocUpdate {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ContentDocUpdate) SetNillableSkill(v *string) *ContentDocUpdate {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ContentDocUpdate) SetLevel(v string) *ContentDocUpdate {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ContentDocUpdate) SetNillableLevel(v *string) *ContentDocUpdate {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ContentDocUpdate) SetText(v string) *ContentDocUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ContentDocUpdate) SetNillableText(v *string) *ContentDocUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ContentDocUpdate) SetEmbedding(v []float32) *ContentDocUpdate {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ContentDocUpdate) AppendEmbedding(v []float32) *ContentDocUpdate {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ContentDocUpdate) ClearEmbedding() *ContentDocUpdate {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the ContentDocMutation object of the builder.
func (_u *ContentDocUpdate) Mutation() *ContentDocMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ContentDocUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentDocUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ContentDocUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentDocUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentDocUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := contentdoc.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ContentDoc.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := contentdoc.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ContentDoc.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentDocUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentdoc.Table, contentdoc.Columns, sqlgraph.NewFieldSpec(contentdoc.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(contentdoc.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(contentdoc.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(contentdoc.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(contentdoc.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(contentdoc.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentdoc.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contentdoc.FieldEmbedding, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ContentDocUpdateOne is the builder for updating a single ContentDoc entity.
type ContentDocUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ContentDocMutation
}

// SetTopic sets the "topic" field.
func (_u *ContentDocUpdateOne) SetTopic(v string) *ContentDocUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *ContentDocUpdateOne) SetNillableTopic(v *string) *ContentDocUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetSkill sets the "skill" field.
func (_u *ContentDocUpdateOne) SetSkill(v string) *ContentDocUpdateOne {
	_u.mutation.SetSkill(v)
	return _u
}

// SetNillableSkill sets the "skill" field if the given value is not nil.
func (_u *ContentDocUpdateOne) SetNillableSkill(v *string) *ContentDocUpdateOne {
	if v != nil {
		_u.SetSkill(*v)
	}
	return _u
}

// SetLevel sets the "level" field.
func (_u *ContentDocUpdateOne) SetLevel(v string) *ContentDocUpdateOne {
	_u.mutation.SetLevel(v)
	return _u
}

// SetNillableLevel sets the "level" field if the given value is not nil.
func (_u *ContentDocUpdateOne) SetNillableLevel(v *string) *ContentDocUpdateOne {
	if v != nil {
		_u.SetLevel(*v)
	}
	return _u
}

// SetText sets the "text" field.
func (_u *ContentDocUpdateOne) SetText(v string) *ContentDocUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *ContentDocUpdateOne) SetNillableText(v *string) *ContentDocUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetEmbedding sets the "embedding" field.
func (_u *ContentDocUpdateOne) SetEmbedding(v []float32) *ContentDocUpdateOne {
	_u.mutation.SetEmbedding(v)
	return _u
}

// AppendEmbedding appends value to the "embedding" field.
func (_u *ContentDocUpdateOne) AppendEmbedding(v []float32) *ContentDocUpdateOne {
	_u.mutation.AppendEmbedding(v)
	return _u
}

// ClearEmbedding clears the value of the "embedding" field.
func (_u *ContentDocUpdateOne) ClearEmbedding() *ContentDocUpdateOne {
	_u.mutation.ClearEmbedding()
	return _u
}

// Mutation returns the ContentDocMutation object of the builder.
func (_u *ContentDocUpdateOne) Mutation() *ContentDocMutation {
	return _u.mutation
}

// Where appends a list predicates to the ContentDocUpdate builder.
func (_u *ContentDocUpdateOne) Where(ps ...predicate.ContentDoc) *ContentDocUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ContentDocUpdateOne) Select(field string, fields ...string) *ContentDocUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ContentDoc entity.
func (_u *ContentDocUpdateOne) Save(ctx context.Context) (*ContentDoc, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ContentDocUpdateOne) SaveX(ctx context.Context) *ContentDoc {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ContentDocUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ContentDocUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ContentDocUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := contentdoc.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "ContentDoc.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := contentdoc.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "ContentDoc.text": %w`, err)}
		}
	}
	return nil
}

func (_u *ContentDocUpdateOne) sqlSave(ctx context.Context) (_node *ContentDoc, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(contentdoc.Table, contentdoc.Columns, sqlgraph.NewFieldSpec(contentdoc.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ContentDoc.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, contentdoc.FieldID)
		for _, f := range fields {
			if !contentdoc.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != contentdoc.FieldID {
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
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(contentdoc.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Skill(); ok {
		_spec.SetField(contentdoc.FieldSkill, field.TypeString, value)
	}
	if value, ok := _u.mutation.Level(); ok {
		_spec.SetField(contentdoc.FieldLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(contentdoc.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.Embedding(); ok {
		_spec.SetField(contentdoc.FieldEmbedding, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedEmbedding(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, contentdoc.FieldEmbedding, value)
		})
	}
	if _u.mutation.EmbeddingCleared() {
		_spec.ClearField(contentdoc.FieldEmbedding, field.TypeJSON)
	}
	_node = &ContentDoc{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{contentdoc.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
