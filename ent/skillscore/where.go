// Code generated by ent, DO NOT EDIT.

package skillscore

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSessionID, v))
}

// Skill applies equality check predicate on the "skill" field. It's identical to SkillEQ.
func Skill(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSkill, v))
}

// EmaScore applies equality check predicate on the "ema_score" field. It's identical to EmaScoreEQ.
func EmaScore(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldEmaScore, v))
}

// EmaAlpha applies equality check predicate on the "ema_alpha" field. It's identical to EmaAlphaEQ.
func EmaAlpha(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldEmaAlpha, v))
}

// IrtTheta applies equality check predicate on the "irt_theta" field. It's identical to IrtThetaEQ.
func IrtTheta(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldIrtTheta, v))
}

// LastUpdate applies equality check predicate on the "last_update" field. It's identical to LastUpdateEQ.
func LastUpdate(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldLastUpdate, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContainsFold(FieldSessionID, v))
}

// SkillEQ applies the EQ predicate on the "skill" field.
func SkillEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldSkill, v))
}

// SkillNEQ applies the NEQ predicate on the "skill" field.
func SkillNEQ(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldSkill, v))
}

// SkillIn applies the In predicate on the "skill" field.
func SkillIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldSkill, vs...))
}

// SkillNotIn applies the NotIn predicate on the "skill" field.
func SkillNotIn(vs ...string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldSkill, vs...))
}

// SkillGT applies the GT predicate on the "skill" field.
func SkillGT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldSkill, v))
}

// SkillGTE applies the GTE predicate on the "skill" field.
func SkillGTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldSkill, v))
}

// SkillLT applies the LT predicate on the "skill" field.
func SkillLT(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldSkill, v))
}

// SkillLTE applies the LTE predicate on the "skill" field.
func SkillLTE(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldSkill, v))
}

// SkillContains applies the Contains predicate on the "skill" field.
func SkillContains(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContains(FieldSkill, v))
}

// SkillHasPrefix applies the HasPrefix predicate on the "skill" field.
func SkillHasPrefix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasPrefix(FieldSkill, v))
}

// SkillHasSuffix applies the HasSuffix predicate on the "skill" field.
func SkillHasSuffix(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldHasSuffix(FieldSkill, v))
}

// SkillEqualFold applies the EqualFold predicate on the "skill" field.
func SkillEqualFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEqualFold(FieldSkill, v))
}

// SkillContainsFold applies the ContainsFold predicate on the "skill" field.
func SkillContainsFold(v string) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldContainsFold(FieldSkill, v))
}

// EmaScoreEQ applies the EQ predicate on the "ema_score" field.
func EmaScoreEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldEmaScore, v))
}

// EmaScoreNEQ applies the NEQ predicate on the "ema_score" field.
func EmaScoreNEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldEmaScore, v))
}

// EmaScoreIn applies the In predicate on the "ema_score" field.
func EmaScoreIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldEmaScore, vs...))
}

// EmaScoreNotIn applies the NotIn predicate on the "ema_score" field.
func EmaScoreNotIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldEmaScore, vs...))
}

// EmaScoreGT applies the GT predicate on the "ema_score" field.
func EmaScoreGT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldEmaScore, v))
}

// EmaScoreGTE applies the GTE predicate on the "ema_score" field.
func EmaScoreGTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldEmaScore, v))
}

// EmaScoreLT applies the LT predicate on the "ema_score" field.
func EmaScoreLT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldEmaScore, v))
}

// EmaScoreLTE applies the LTE predicate on the "ema_score" field.
func EmaScoreLTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldEmaScore, v))
}

// EmaAlphaEQ applies the EQ predicate on the "ema_alpha" field.
func EmaAlphaEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldEmaAlpha, v))
}

// EmaAlphaNEQ applies the NEQ predicate on the "ema_alpha" field.
func EmaAlphaNEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldEmaAlpha, v))
}

// EmaAlphaIn applies the In predicate on the "ema_alpha" field.
func EmaAlphaIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldEmaAlpha, vs...))
}

// EmaAlphaNotIn applies the NotIn predicate on the "ema_alpha" field.
func EmaAlphaNotIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldEmaAlpha, vs...))
}

// EmaAlphaGT applies the GT predicate on the "ema_alpha" field.
func EmaAlphaGT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldEmaAlpha, v))
}

// EmaAlphaGTE applies the GTE predicate on the "ema_alpha" field.
func EmaAlphaGTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldEmaAlpha, v))
}

// EmaAlphaLT applies the LT predicate on the "ema_alpha" field.
func EmaAlphaLT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldEmaAlpha, v))
}

// EmaAlphaLTE applies the LTE predicate on the "ema_alpha" field.
func EmaAlphaLTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldEmaAlpha, v))
}

// IrtThetaEQ applies the EQ predicate on the "irt_theta" field.
func IrtThetaEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldIrtTheta, v))
}

// IrtThetaNEQ applies the NEQ predicate on the "irt_theta" field.
func IrtThetaNEQ(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldIrtTheta, v))
}

// IrtThetaIn applies the In predicate on the "irt_theta" field.
func IrtThetaIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldIrtTheta, vs...))
}

// IrtThetaNotIn applies the NotIn predicate on the "irt_theta" field.
func IrtThetaNotIn(vs ...float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldIrtTheta, vs...))
}

// IrtThetaGT applies the GT predicate on the "irt_theta" field.
func IrtThetaGT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldIrtTheta, v))
}

// IrtThetaGTE applies the GTE predicate on the "irt_theta" field.
func IrtThetaGTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldIrtTheta, v))
}

// IrtThetaLT applies the LT predicate on the "irt_theta" field.
func IrtThetaLT(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldIrtTheta, v))
}

// IrtThetaLTE applies the LTE predicate on the "irt_theta" field.
func IrtThetaLTE(v float64) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldIrtTheta, v))
}

// LastUpdateEQ applies the EQ predicate on the "last_update" field.
func LastUpdateEQ(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldEQ(FieldLastUpdate, v))
}

// LastUpdateNEQ applies the NEQ predicate on the "last_update" field.
func LastUpdateNEQ(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNEQ(FieldLastUpdate, v))
}

// LastUpdateIn applies the In predicate on the "last_update" field.
func LastUpdateIn(vs ...time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldIn(FieldLastUpdate, vs...))
}

// LastUpdateNotIn applies the NotIn predicate on the "last_update" field.
func LastUpdateNotIn(vs ...time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldNotIn(FieldLastUpdate, vs...))
}

// LastUpdateGT applies the GT predicate on the "last_update" field.
func LastUpdateGT(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGT(FieldLastUpdate, v))
}

// LastUpdateGTE applies the GTE predicate on the "last_update" field.
func LastUpdateGTE(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldGTE(FieldLastUpdate, v))
}

// LastUpdateLT applies the LT predicate on the "last_update" field.
func LastUpdateLT(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLT(FieldLastUpdate, v))
}

// LastUpdateLTE applies the LTE predicate on the "last_update" field.
func LastUpdateLTE(v time.Time) predicate.SkillScore {
	return predicate.SkillScore(sql.FieldLTE(FieldLastUpdate, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.SkillScore) predicate.SkillScore {
	return predicate.SkillScore(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.SkillScore) predicate.SkillScore {
	return predicate.SkillScore(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.SkillScore) predicate.SkillScore {
	return predicate.SkillScore(sql.NotPredicates(p))
}
