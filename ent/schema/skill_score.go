package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SkillScore is the proficiency record for one (session, skill) pair.
// Created lazily on first reference, never deleted within a session.
type SkillScore struct {
	ent.Schema
}

func (SkillScore) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Immutable().
			NotEmpty(),
		field.String("skill").
			Immutable().
			NotEmpty(),
		field.Float("ema_score").
			Default(0.5).
			Comment("Exponential moving average of observed scores, [0,1]"),
		field.Float("ema_alpha").
			Default(0.3).
			Comment("Smoothing factor used on the most recent update"),
		field.Float("irt_theta").
			Default(0.0).
			Comment("2PL IRT ability estimate, unbounded"),
		field.Time("last_update").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (SkillScore) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id", "skill").
			Unique(),
	}
}
