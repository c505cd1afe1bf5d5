// Code generated by ent, DO NOT EDIT.

package skillscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the skillscore type in the database.
	Label = "skill_score"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldSkill holds the string denoting the skill field in the database.
	FieldSkill = "skill"
	// FieldEmaScore holds the string denoting the ema_score field in the database.
	FieldEmaScore = "ema_score"
	// FieldEmaAlpha holds the string denoting the ema_alpha field in the database.
	FieldEmaAlpha = "ema_alpha"
	// FieldIrtTheta holds the string denoting the irt_theta field in the database.
	FieldIrtTheta = "irt_theta"
	// FieldLastUpdate holds the string denoting the last_update field in the database.
	FieldLastUpdate = "last_update"
	// Table holds the table name of the skillscore in the database.
	Table = "skill_scores"
)

// Columns holds all SQL columns for skillscore fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldSkill,
	FieldEmaScore,
	FieldEmaAlpha,
	FieldIrtTheta,
	FieldLastUpdate,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	SkillValidator func(string) error
	// DefaultEmaScore holds the default value on creation for the "ema_score" field.
	DefaultEmaScore float64
	// DefaultEmaAlpha holds the default value on creation for the "ema_alpha" field.
	DefaultEmaAlpha float64
	// DefaultIrtTheta holds the default value on creation for the "irt_theta" field.
	DefaultIrtTheta float64
	// DefaultLastUpdate holds the default value on creation for the "last_update" field.
	DefaultLastUpdate func() time.Time
	// UpdateDefaultLastUpdate holds the default value on update for the "last_update" field.
	UpdateDefaultLastUpdate func() time.Time
)

// OrderOption defines the ordering options for the SkillScore queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// BySkill orders the results by the skill field.
func BySkill(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkill, opts...).ToFunc()
}

// ByEmaScore orders the results by the ema_score field.
func ByEmaScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmaScore, opts...).ToFunc()
}

// ByEmaAlpha orders the results by the ema_alpha field.
func ByEmaAlpha(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmaAlpha, opts...).ToFunc()
}

// ByIrtTheta orders the results by the irt_theta field.
func ByIrtTheta(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIrtTheta, opts...).ToFunc()
}

// ByLastUpdate orders the results by the last_update field.
func ByLastUpdate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdate, opts...).ToFunc()
}
