package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Session is one assessment run: a topic, a mode and an ordered dialogue.
type Session struct {
	ent.Schema
}

func (Session) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			Immutable().
			NotEmpty().
			Unique().
			Comment("UUID assigned at session start"),
		field.String("mode").
			Immutable().
			NotEmpty().
			Comment("exam or diagnostic"),
		field.String("topic").
			Immutable().
			NotEmpty(),
		field.String("status").
			Default("active").
			Comment("active or completed; transitions exactly once"),
		field.Int("max_questions").
			Optional().
			Nillable().
			Comment("Question cap; set for exam mode, absent for diagnostic"),
		field.Time("started_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Session) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("mode"),
		index.Fields("status"),
		index.Fields("started_at"),
	}
}
