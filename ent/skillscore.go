// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/skillscore"
)

// SkillScore is the model entity for the SkillScore schema.
type SkillScore struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// SessionID holds the value of the "session_id" field.
	SessionID string `json:"session_id,omitempty"`
	// Skill holds the value of the "skill" field.
	Skill string `json:"skill,omitempty"`
	// Exponential moving average of observed scores, [0,1]
	EmaScore float64 `json:"ema_score,omitempty"`
	// Smoothing factor used on the most recent update
	EmaAlpha float64 `json:"ema_alpha,omitempty"`
	// 2PL IRT ability estimate, unbounded
	IrtTheta float64 `json:"irt_theta,omitempty"`
	// LastUpdate holds the value of the "last_update" field.
	LastUpdate   time.Time `json:"last_update,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*SkillScore) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case skillscore.FieldEmaScore, skillscore.FieldEmaAlpha, skillscore.FieldIrtTheta:
			values[i] = new(sql.NullFloat64)
		case skillscore.FieldID:
			values[i] = new(sql.NullInt64)
		case skillscore.FieldSessionID, skillscore.FieldSkill:
			values[i] = new(sql.NullString)
		case skillscore.FieldLastUpdate:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the SkillScore fields.
func (_m *SkillScore) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case skillscore.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case skillscore.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case skillscore.FieldSkill:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field skill", values[i])
			} else if value.Valid {
				_m.Skill = value.String
			}
		case skillscore.FieldEmaScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ema_score", values[i])
			} else if value.Valid {
				_m.EmaScore = value.Float64
			}
		case skillscore.FieldEmaAlpha:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field ema_alpha", values[i])
			} else if value.Valid {
				_m.EmaAlpha = value.Float64
			}
		case skillscore.FieldIrtTheta:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field irt_theta", values[i])
			} else if value.Valid {
				_m.IrtTheta = value.Float64
			}
		case skillscore.FieldLastUpdate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_update", values[i])
			} else if value.Valid {
				_m.LastUpdate = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the SkillScore.
// This includes values selected through modifiers, order, etc.
func (_m *SkillScore) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this SkillScore.
// Note that you need to call SkillScore.Unwrap() before calling this method if this SkillScore
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *SkillScore) Update() *SkillScoreUpdateOne {
	return NewSkillScoreClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the SkillScore entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *SkillScore) Unwrap() *SkillScore {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: SkillScore is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *SkillScore) String() string {
	var builder strings.Builder
	builder.WriteString("SkillScore(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("skill=")
	builder.WriteString(_m.Skill)
	builder.WriteString(", ")
	builder.WriteString("ema_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmaScore))
	builder.WriteString(", ")
	builder.WriteString("ema_alpha=")
	builder.WriteString(fmt.Sprintf("%v", _m.EmaAlpha))
	builder.WriteString(", ")
	builder.WriteString("irt_theta=")
	builder.WriteString(fmt.Sprintf("%v", _m.IrtTheta))
	builder.WriteString(", ")
	builder.WriteString("last_update=")
	builder.WriteString(_m.LastUpdate.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// SkillScores is a parsable slice of SkillScore.
type SkillScores []*SkillScore
