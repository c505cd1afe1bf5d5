package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Topic names a curated subject area in the question bank.
type Topic struct {
	ent.Schema
}

func (Topic) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty().
			Unique(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// BankQuestion is one curated question within a topic. Position defines the
// fixed exam-mode ordering; the bank is read-only at selection time.
type BankQuestion struct {
	ent.Schema
}

func (BankQuestion) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty().
			Comment("Topic name the question belongs to"),
		field.Int("position").
			Comment("0-based index within the topic's ordered bank"),
		field.Text("text").
			NotEmpty(),
		field.Text("ideal_answer").
			Optional(),
		field.String("bloom_hint").
			Optional(),
		field.String("difficulty").
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (BankQuestion) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic", "position").
			Unique(),
	}
}
