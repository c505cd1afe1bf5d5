package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Message is one turn record in a session's dialogue. The ordered message
// sequence is the single source of truth for asked-count and last-question;
// neither is stored anywhere else.
type Message struct {
	ent.Schema
}

func (Message) Fields() []ent.Field {
	return []ent.Field{
		field.Int64("seq").
			Unique().
			Immutable().
			Comment("Global monotonic sequence number, strict append order"),
		field.String("session_id").
			Immutable().
			NotEmpty(),
		field.String("role").
			Immutable().
			NotEmpty().
			Comment("user or assistant"),
		field.Text("content").
			Immutable(),
		field.String("bloom_level").
			Optional().
			Comment("Assistant: target level of the posed question. User: inferred level of the answer. Empty on completion summaries."),
		field.String("solo_level").
			Optional().
			Comment("SOLO level inferred from a user answer"),
		field.String("difficulty").
			Optional().
			Comment("Assistant questions: target difficulty tier"),
		field.Float("score").
			Optional().
			Nillable().
			Comment("Scorer result in [0,1]; user answers only"),
		field.Float("confidence").
			Optional().
			Nillable(),
		field.JSON("payload", map[string]any{}).
			Optional().
			Comment("Full structured scorer result"),
		field.Time("ts").
			Default(time.Now).
			Immutable(),
	}
}

func (Message) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "seq"),
		index.Fields("session_id", "role"),
		index.Fields("ts"),
	}
}
