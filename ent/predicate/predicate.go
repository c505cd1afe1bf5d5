// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// BankQuestion is the predicate function for bankquestion builders.
type BankQuestion func(*sql.Selector)

// ContentDoc is the predicate function for contentdoc builders.
type ContentDoc func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Session is the predicate function for session builders.
type Session func(*sql.Selector)

// SkillScore is the predicate function for skillscore builders.
type SkillScore func(*sql.Selector)

// Topic is the predicate function for topic builders.
type Topic func(*sql.Selector)
