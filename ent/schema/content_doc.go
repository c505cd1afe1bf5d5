package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ContentDoc is a retrieval document used as supporting context for
// question generation. The embedding is computed once at seed time.
type ContentDoc struct {
	ent.Schema
}

func (ContentDoc) Fields() []ent.Field {
	return []ent.Field{
		field.String("topic").
			NotEmpty(),
		field.String("skill").
			Default("general"),
		field.String("level").
			Default("remember").
			Comment("Bloom level the document targets"),
		field.Text("text").
			NotEmpty(),
		field.JSON("embedding", []float32{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ContentDoc) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("topic"),
	}
}
