// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/bankquestion"
)

// BankQuestion is the model entity for the BankQuestion schema.
type BankQuestion struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Topic name the question belongs to
	Topic string `json:"topic,omitempty"`
	// 0-based index within the topic's ordered bank
	Position int `json:"position,omitempty"`
	// Text holds the value of the "text" field.
	Text string `json:"text,omitempty"`
	// IdealAnswer holds the value of the "ideal_answer" field.
	IdealAnswer string `json:"ideal_answer,omitempty"`
	// BloomHint holds the value of the "bloom_hint" field.
	BloomHint string `json:"bloom_hint,omitempty"`
	// Difficulty holds the value of the "difficulty" field.
	Difficulty string `json:"difficulty,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BankQuestion) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case bankquestion.FieldID, bankquestion.FieldPosition:
			values[i] = new(sql.NullInt64)
		case bankquestion.FieldTopic, bankquestion.FieldText, bankquestion.FieldIdealAnswer, bankquestion.FieldBloomHint, bankquestion.FieldDifficulty:
			values[i] = new(sql.NullString)
		case bankquestion.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BankQuestion fields.
func (_m *BankQuestion) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case bankquestion.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case bankquestion.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case bankquestion.FieldPosition:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field position", values[i])
			} else if value.Valid {
				_m.Position = int(value.Int64)
			}
		case bankquestion.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case bankquestion.FieldIdealAnswer:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ideal_answer", values[i])
			} else if value.Valid {
				_m.IdealAnswer = value.String
			}
		case bankquestion.FieldBloomHint:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field bloom_hint", values[i])
			} else if value.Valid {
				_m.BloomHint = value.String
			}
		case bankquestion.FieldDifficulty:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field difficulty", values[i])
			} else if value.Valid {
				_m.Difficulty = value.String
			}
		case bankquestion.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the BankQuestion.
// This includes values selected through modifiers, order, etc.
func (_m *BankQuestion) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BankQuestion.
// Note that you need to call BankQuestion.Unwrap() before calling this method if this BankQuestion
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BankQuestion) Update() *BankQuestionUpdateOne {
	return NewBankQuestionClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BankQuestion entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BankQuestion) Unwrap() *BankQuestion {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BankQuestion is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BankQuestion) String() string {
	var builder strings.Builder
	builder.WriteString("BankQuestion(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("position=")
	builder.WriteString(fmt.Sprintf("%v", _m.Position))
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("ideal_answer=")
	builder.WriteString(_m.IdealAnswer)
	builder.WriteString(", ")
	builder.WriteString("bloom_hint=")
	builder.WriteString(_m.BloomHint)
	builder.WriteString(", ")
	builder.WriteString("difficulty=")
	builder.WriteString(_m.Difficulty)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BankQuestions is a parsable slice of BankQuestion.
type BankQuestions []*BankQuestion
