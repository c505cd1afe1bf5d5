// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tutorloop/tutorloop/ent/message"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// MessageUpdate is the builder for updating Message entities.
type MessageUpdate struct {
	config
	hooks    []Hook
	mutation *MessageMutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdate) Where(ps ...predicate.Message) *MessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *MessageUpdate) SetBloomLevel(v string) *MessageUpdate {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableBloomLevel(v *string) *MessageUpdate {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// ClearBloomLevel clears the value of the "bloom_level" field.
func (_u *MessageUpdate) ClearBloomLevel() *MessageUpdate {
	_u.mutation.ClearBloomLevel()
	return _u
}

// SetSoloLevel sets the "solo_level" field.
func (_u *MessageUpdate) SetSoloLevel(v string) *MessageUpdate {
	_u.mutation.SetSoloLevel(v)
	return _u
}

// SetNillableSoloLevel sets the "solo_level" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableSoloLevel(v *string) *MessageUpdate {
	if v != nil {
		_u.SetSoloLevel(*v)
	}
	return _u
}

// ClearSoloLevel clears the value of the "solo_level" field.
func (_u *MessageUpdate) ClearSoloLevel() *MessageUpdate {
	_u.mutation.ClearSoloLevel()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MessageUpdate) SetDifficulty(v string) *MessageUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableDifficulty(v *string) *MessageUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *MessageUpdate) ClearDifficulty() *MessageUpdate {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetScore sets the "score" field.
func (_u *MessageUpdate) SetScore(v float64) *MessageUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableScore(v *float64) *MessageUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MessageUpdate) AddScore(v float64) *MessageUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *MessageUpdate) ClearScore() *MessageUpdate {
	_u.mutation.ClearScore()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MessageUpdate) SetConfidence(v float64) *MessageUpdate {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MessageUpdate) SetNillableConfidence(v *float64) *MessageUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MessageUpdate) AddConfidence(v float64) *MessageUpdate {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *MessageUpdate) ClearConfidence() *MessageUpdate {
	_u.mutation.ClearConfidence()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *MessageUpdate) SetPayload(v map[string]interface{}) *MessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *MessageUpdate) ClearPayload() *MessageUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdate) Mutation() *MessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(message.FieldBloomLevel, field.TypeString, value)
	}
	if _u.mutation.BloomLevelCleared() {
		_spec.ClearField(message.FieldBloomLevel, field.TypeString)
	}
	if value, ok := _u.mutation.SoloLevel(); ok {
		_spec.SetField(message.FieldSoloLevel, field.TypeString, value)
	}
	if _u.mutation.SoloLevelCleared() {
		_spec.ClearField(message.FieldSoloLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(message.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(message.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(message.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(message.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(message.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(message.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(message.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(message.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(message.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(message.FieldPayload, field.TypeJSON)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MessageUpdateOne is the builder for updating a single Message entity.
type MessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MessageMutation
}

// SetBloomLevel sets the "bloom_level" field.
func (_u *MessageUpdateOne) SetBloomLevel(v string) *MessageUpdateOne {
	_u.mutation.SetBloomLevel(v)
	return _u
}

// SetNillableBloomLevel sets the "bloom_level" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableBloomLevel(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetBloomLevel(*v)
	}
	return _u
}

// ClearBloomLevel clears the value of the "bloom_level" field.
func (_u *MessageUpdateOne) ClearBloomLevel() *MessageUpdateOne {
	_u.mutation.ClearBloomLevel()
	return _u
}

// SetSoloLevel sets the "solo_level" field.
func (_u *MessageUpdateOne) SetSoloLevel(v string) *MessageUpdateOne {
	_u.mutation.SetSoloLevel(v)
	return _u
}

// SetNillableSoloLevel sets the "solo_level" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableSoloLevel(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetSoloLevel(*v)
	}
	return _u
}

// ClearSoloLevel clears the value of the "solo_level" field.
func (_u *MessageUpdateOne) ClearSoloLevel() *MessageUpdateOne {
	_u.mutation.ClearSoloLevel()
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *MessageUpdateOne) SetDifficulty(v string) *MessageUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableDifficulty(v *string) *MessageUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// ClearDifficulty clears the value of the "difficulty" field.
func (_u *MessageUpdateOne) ClearDifficulty() *MessageUpdateOne {
	_u.mutation.ClearDifficulty()
	return _u
}

// SetScore sets the "score" field.
func (_u *MessageUpdateOne) SetScore(v float64) *MessageUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableScore(v *float64) *MessageUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *MessageUpdateOne) AddScore(v float64) *MessageUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// ClearScore clears the value of the "score" field.
func (_u *MessageUpdateOne) ClearScore() *MessageUpdateOne {
	_u.mutation.ClearScore()
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *MessageUpdateOne) SetConfidence(v float64) *MessageUpdateOne {
	_u.mutation.ResetConfidence()
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *MessageUpdateOne) SetNillableConfidence(v *float64) *MessageUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// AddConfidence adds value to the "confidence" field.
func (_u *MessageUpdateOne) AddConfidence(v float64) *MessageUpdateOne {
	_u.mutation.AddConfidence(v)
	return _u
}

// ClearConfidence clears the value of the "confidence" field.
func (_u *MessageUpdateOne) ClearConfidence() *MessageUpdateOne {
	_u.mutation.ClearConfidence()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *MessageUpdateOne) SetPayload(v map[string]interface{}) *MessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *MessageUpdateOne) ClearPayload() *MessageUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// Mutation returns the MessageMutation object of the builder.
func (_u *MessageUpdateOne) Mutation() *MessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the MessageUpdate builder.
func (_u *MessageUpdateOne) Where(ps ...predicate.Message) *MessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MessageUpdateOne) Select(field string, fields ...string) *MessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Message entity.
func (_u *MessageUpdateOne) Save(ctx context.Context) (*Message, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MessageUpdateOne) SaveX(ctx context.Context) *Message {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *MessageUpdateOne) sqlSave(ctx context.Context) (_node *Message, err error) {
	_spec := sqlgraph.NewUpdateSpec(message.Table, message.Columns, sqlgraph.NewFieldSpec(message.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Message.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, message.FieldID)
		for _, f := range fields {
			if !message.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != message.FieldID {
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
	if value, ok := _u.mutation.BloomLevel(); ok {
		_spec.SetField(message.FieldBloomLevel, field.TypeString, value)
	}
	if _u.mutation.BloomLevelCleared() {
		_spec.ClearField(message.FieldBloomLevel, field.TypeString)
	}
	if value, ok := _u.mutation.SoloLevel(); ok {
		_spec.SetField(message.FieldSoloLevel, field.TypeString, value)
	}
	if _u.mutation.SoloLevelCleared() {
		_spec.ClearField(message.FieldSoloLevel, field.TypeString)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(message.FieldDifficulty, field.TypeString, value)
	}
	if _u.mutation.DifficultyCleared() {
		_spec.ClearField(message.FieldDifficulty, field.TypeString)
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(message.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(message.FieldScore, field.TypeFloat64, value)
	}
	if _u.mutation.ScoreCleared() {
		_spec.ClearField(message.FieldScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(message.FieldConfidence, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidence(); ok {
		_spec.AddField(message.FieldConfidence, field.TypeFloat64, value)
	}
	if _u.mutation.ConfidenceCleared() {
		_spec.ClearField(message.FieldConfidence, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(message.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(message.FieldPayload, field.TypeJSON)
	}
	_node = &Message{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{message.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
