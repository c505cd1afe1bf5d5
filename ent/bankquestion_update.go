// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/bankquestion"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// BankQuestionUpdate is the builder for updating BankQuestion entities.
type BankQuestionUpdate struct {
	config
	hooks    []Hook
	mutation *BankQuestionMutation
}

// Where appends a list predicates to the BankQuestionUpdate builder.
func (_u *BankQuestionUpdate) Where(ps ...predicate.BankQuestion) *BankQuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTopic sets the "topic" field.
func (_u *BankQuestionUpdate) SetTopic(v string) *BankQuestionUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BankQuestionUpdate) SetNillableTopic(v *string) *BankQuestionUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *BankQuestionUpdate) SetPosition(v int) *BankQuestionUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *BankQuestionUpdate) SetNillablePosition(v *int) *BankQuestionUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *BankQuestionUpdate) AddPosition(v int) *BankQuestionUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetText sets the "text" field.
func (_u *BankQuestionUpdate) SetText(v string) *BankQuestionUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *BankQuestionUpdate) SetNillableText(v *string) *BankQuestionUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetIdealAnswer sets the "ideal_answer" field.
func (_u *BankQuestionUpdate) SetIdealAnswer(v string) *BankQuestionUpdate {
	_u.mutation.SetIdealAnswer(v)
	return _u
}

// SetNillableIdealAnswer sets the "ideal_answer" field if the given value is not nil.
func (_u *BankQuestionUpdate) SetNillableIdealAnswer(v *string) *BankQuestionUpdate {
	if v != nil {
		_u.SetIdealAnswer(*v)
	}
	return _u
}

// ClearIdealAnswer clears the value of the "ideal_answer" field.
func (_u *BankQuestionUpdate) ClearIdealAnswer() *BankQuestionUpdate {
	_u.mutation.ClearIdealAnswer()
	return _u
}

// SetBloomHint sets the "bloom_hint" field.
func (_u *BankQuestionUpdate) SetBloomHint(v string) *BankQuestionUpdate {
	_u.mutation.SetBloomHint(v)
	return _u
}

// SetNillableBloomHint sets the "bloom_hint" field if the given value is not nil.
func (_u *BankQuestionUpdate) SetNillableBloomHint(v *string) *BankQuestionUpdate {
	if v != nil {
		_u.SetBloomHint(*v)
	}
	return _u
}

// ClearBloomHint clears the value of the "bloom_hint" field.
func (_u *BankQuestionUpdate) ClearBloomHint() *BankQuestionUpdate {
	_u.mutation.ClearBloomHint()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *BankQuestionUpdate) SetDifficulty(v string) *BankQuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *BankQuestionUpdate) SetNillableDifficulty(v *string) *BankQuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *BankQuestionUpdate) ClearDifficulty() *BankQuestionUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// Mutation returns the BankQuestionMutation object of the builder.
func (_u *BankQuestionUpdate) Mutation() *BankQuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BankQuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankQuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BankQuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankQuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankQuestionUpdate) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := bankquestion.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BankQuestion.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := bankquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "BankQuestion.text": %w`, err)}
		}
	}
	return nil
}

func (_u *BankQuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bankquestion.Table, bankquestion.Columns, sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(bankquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(bankquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(bankquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(bankquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdealAnswer(); ok {
		_spec.SetField(bankquestion.FieldIdealAnswer, field.TypeString, value)
	}
	if _u.mutation.IdealAnswerCleared() {
		_spec.ClearField(bankquestion.FieldIdealAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.BloomHint(); ok {
		_spec.SetField(bankquestion.FieldBloomHint, field.TypeString, value)
	}
	if _u.mutation.BloomHintCleared() {
		_spec.ClearField(bankquestion.FieldBloomHint, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(bankquestion.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(bankquestion.FieldDifficulty, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BankQuestionUpdateOne is the builder for updating a single BankQuestion entity.
type BankQuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BankQuestionMutation
}

// SetTopic sets the "topic" field.
func (_u *BankQuestionUpdateOne) SetTopic(v string) *BankQuestionUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *BankQuestionUpdateOne) SetNillableTopic(v *string) *BankQuestionUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetPosition sets the "position" field.
func (_u *BankQuestionUpdateOne) SetPosition(v int) *BankQuestionUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *BankQuestionUpdateOne) SetNillablePosition(v *int) *BankQuestionUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *BankQuestionUpdateOne) AddPosition(v int) *BankQuestionUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetText sets the "text" field.
func (_u *BankQuestionUpdateOne) SetText(v string) *BankQuestionUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *BankQuestionUpdateOne) SetNillableText(v *string) *BankQuestionUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetIdealAnswer sets the "ideal_answer" field.
func (_u *BankQuestionUpdateOne) SetIdealAnswer(v string) *BankQuestionUpdateOne {
	_u.mutation.SetIdealAnswer(v)
	return _u
}

// SetNillableIdealAnswer sets the "ideal_answer" field if the given value is not nil.
func (_u *BankQuestionUpdateOne) SetNillableIdealAnswer(v *string) *BankQuestionUpdateOne {
	if v != nil {
		_u.SetIdealAnswer(*v)
	}
	return _u
}

// ClearIdealAnswer clears the value of the "ideal_answer" field.
func (_u *BankQuestionUpdateOne) ClearIdealAnswer() *BankQuestionUpdateOne {
	_u.mutation.ClearIdealAnswer()
	return _u
}

// SetBloomHint sets the "bloom_hint" field.
func (_u *BankQuestionUpdateOne) SetBloomHint(v string) *BankQuestionUpdateOne {
	_u.mutation.SetBloomHint(v)
	return _u
}

// SetNillableBloomHint sets the "bloom_hint" field if the given value is not nil.
func (_u *BankQuestionUpdateOne) SetNillableBloomHint(v *string) *BankQuestionUpdateOne {
	if v != nil {
		_u.SetBloomHint(*v)
	}
	return _u
}

// ClearBloomHint clears the value of the "bloom_hint" field.
func (_u *BankQuestionUpdateOne) ClearBloomHint() *BankQuestionUpdateOne {
	_u.mutation.ClearBloomHint()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *BankQuestionUpdateOne) SetDifficulty(v string) *BankQuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *BankQuestionUpdateOne) SetNillableDifficulty(v *string) *BankQuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *BankQuestionUpdateOne) ClearDifficulty() *BankQuestionUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// Mutation returns the BankQuestionMutation object of the builder.
func (_u *BankQuestionUpdateOne) Mutation() *BankQuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the BankQuestionUpdate builder.
func (_u *BankQuestionUpdateOne) Where(ps ...predicate.BankQuestion) *BankQuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BankQuestionUpdateOne) Select(field string, fields ...string) *BankQuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BankQuestion entity.
func (_u *BankQuestionUpdateOne) Save(ctx context.Context) (*BankQuestion, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BankQuestionUpdateOne) SaveX(ctx context.Context) *BankQuestion {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BankQuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BankQuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BankQuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Topic(); ok {
		if err := bankquestion.TopicValidator(v); err != nil {
			return &ValidationError{Name: "topic", err: fmt.Errorf(`ent: validator failed for field "BankQuestion.topic": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Text(); ok {
		if err := bankquestion.TextValidator(v); err != nil {
			return &ValidationError{Name: "text", err: fmt.Errorf(`ent: validator failed for field "BankQuestion.text": %w`, err)}
		}
	}
	return nil
}

func (_u *BankQuestionUpdateOne) sqlSave(ctx context.Context) (_node *BankQuestion, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(bankquestion.Table, bankquestion.Columns, sqlgraph.NewFieldSpec(bankquestion.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BankQuestion.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, bankquestion.FieldID)
		for _, f := range fields {
			if !bankquestion.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != bankquestion.FieldID {
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
		_spec.SetField(bankquestion.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(bankquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(bankquestion.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(bankquestion.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.IdealAnswer(); ok {
		_spec.SetField(bankquestion.FieldIdealAnswer, field.TypeString, value)
	}
	if _u.mutation.IdealAnswerCleared() {
		_spec.ClearField(bankquestion.FieldIdealAnswer, field.TypeString)
	}
	if value, ok := _u.mutation.BloomHint(); ok {
		_spec.SetField(bankquestion.FieldBloomHint, field.TypeString, value)
	}
	if _u.mutation.BloomHintCleared() {
		_spec.ClearField(bankquestion.FieldBloomHint, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(bankquestion.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(bankquestion.FieldDifficulty, field.TypeString)
	}
	_node = &BankQuestion{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{bankquestion.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
