// Code generated by ent, DO NOT EDIT.

package bankquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the bankquestion type in the database.
	Label = "bank_question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldIdealAnswer holds the string denoting the ideal_answer field in the database.
	FieldIdealAnswer = "ideal_answer"
	// FieldBloomHint holds the string denoting the bloom_hint field in the database.
	FieldBloomHint = "bloom_hint"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the bankquestion in the database.
	Table = "bank_questions"
)

// Columns holds all SQL columns for bankquestion fields.
var Columns = []string{
	FieldID,
	FieldTopic,
	FieldPosition,
	FieldText,
	FieldIdealAnswer,
	FieldBloomHint,
	FieldDifficulty,
	FieldCreatedAt,
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
	// TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	TopicValidator func(string) error
	// TextValidator is a validator for the "text" field. It is called by the builders before save.
	TextValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the BankQuestion queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// ByIdealAnswer orders the results by the ideal_answer field.
func ByIdealAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIdealAnswer, opts...).ToFunc()
}

// ByBloomHint orders the results by the bloom_hint field.
func ByBloomHint(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBloomHint, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
