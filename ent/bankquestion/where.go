// Code generated by ent, DO NOT EDIT.

package bankquestion

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldID, id))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldTopic, v))
}

// Position applies equality check predicate on the "position" field. It's identical to PositionEQ.
func Position(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldPosition, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldText, v))
}

// IdealAnswer applies equality check predicate on the "ideal_answer" field. It's identical to IdealAnswerEQ.
func IdealAnswer(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldIdealAnswer, v))
}

// BloomHint applies equality check predicate on the "bloom_hint" field. It's identical to BloomHintEQ.
func BloomHint(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldBloomHint, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldTopic, v))
}

// PositionEQ applies the EQ predicate on the "position" field.
func PositionEQ(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldPosition, v))
}

// PositionNEQ applies the NEQ predicate on the "position" field.
func PositionNEQ(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldPosition, v))
}

// PositionIn applies the In predicate on the "position" field.
func PositionIn(vs ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldPosition, vs...))
}

// PositionNotIn applies the NotIn predicate on the "position" field.
func PositionNotIn(vs ...int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldPosition, vs...))
}

// PositionGT applies the GT predicate on the "position" field.
func PositionGT(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldPosition, v))
}

// PositionGTE applies the GTE predicate on the "position" field.
func PositionGTE(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldPosition, v))
}

// PositionLT applies the LT predicate on the "position" field.
func PositionLT(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldPosition, v))
}

// PositionLTE applies the LTE predicate on the "position" field.
func PositionLTE(v int) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldPosition, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldText, v))
}

// IdealAnswerEQ applies the EQ predicate on the "ideal_answer" field.
func IdealAnswerEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldIdealAnswer, v))
}

// IdealAnswerNEQ applies the NEQ predicate on the "ideal_answer" field.
func IdealAnswerNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldIdealAnswer, v))
}

// IdealAnswerIn applies the In predicate on the "ideal_answer" field.
func IdealAnswerIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldIdealAnswer, vs...))
}

// IdealAnswerNotIn applies the NotIn predicate on the "ideal_answer" field.
func IdealAnswerNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldIdealAnswer, vs...))
}

// IdealAnswerGT applies the GT predicate on the "ideal_answer" field.
func IdealAnswerGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldIdealAnswer, v))
}

// IdealAnswerGTE applies the GTE predicate on the "ideal_answer" field.
func IdealAnswerGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldIdealAnswer, v))
}

// IdealAnswerLT applies the LT predicate on the "ideal_answer" field.
func IdealAnswerLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldIdealAnswer, v))
}

// IdealAnswerLTE applies the LTE predicate on the "ideal_answer" field.
func IdealAnswerLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldIdealAnswer, v))
}

// IdealAnswerContains applies the Contains predicate on the "ideal_answer" field.
func IdealAnswerContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldIdealAnswer, v))
}

// IdealAnswerHasPrefix applies the HasPrefix predicate on the "ideal_answer" field.
func IdealAnswerHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldIdealAnswer, v))
}

// IdealAnswerHasSuffix applies the HasSuffix predicate on the "ideal_answer" field.
func IdealAnswerHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldIdealAnswer, v))
}

// IdealAnswerIsNil applies the IsNil predicate on the "ideal_answer" field.
func IdealAnswerIsNil() predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIsNull(FieldIdealAnswer))
}

// IdealAnswerNotNil applies the NotNil predicate on the "ideal_answer" field.
func IdealAnswerNotNil() predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotNull(FieldIdealAnswer))
}

// IdealAnswerEqualFold applies the EqualFold predicate on the "ideal_answer" field.
func IdealAnswerEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldIdealAnswer, v))
}

// IdealAnswerContainsFold applies the ContainsFold predicate on the "ideal_answer" field.
func IdealAnswerContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldIdealAnswer, v))
}

// BloomHintEQ applies the EQ predicate on the "bloom_hint" field.
func BloomHintEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldBloomHint, v))
}

// BloomHintNEQ applies the NEQ predicate on the "bloom_hint" field.
func BloomHintNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldBloomHint, v))
}

// BloomHintIn applies the In predicate on the "bloom_hint" field.
func BloomHintIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldBloomHint, vs...))
}

// BloomHintNotIn applies the NotIn predicate on the "bloom_hint" field.
func BloomHintNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldBloomHint, vs...))
}

// BloomHintGT applies the GT predicate on the "bloom_hint" field.
func BloomHintGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldBloomHint, v))
}

// BloomHintGTE applies the GTE predicate on the "bloom_hint" field.
func BloomHintGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldBloomHint, v))
}

// BloomHintLT applies the LT predicate on the "bloom_hint" field.
func BloomHintLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldBloomHint, v))
}

// BloomHintLTE applies the LTE predicate on the "bloom_hint" field.
func BloomHintLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldBloomHint, v))
}

// BloomHintContains applies the Contains predicate on the "bloom_hint" field.
func BloomHintContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldBloomHint, v))
}

// BloomHintHasPrefix applies the HasPrefix predicate on the "bloom_hint" field.
func BloomHintHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldBloomHint, v))
}

// BloomHintHasSuffix applies the HasSuffix predicate on the "bloom_hint" field.
func BloomHintHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldBloomHint, v))
}

// BloomHintIsNil applies the IsNil predicate on the "bloom_hint" field.
func BloomHintIsNil() predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIsNull(FieldBloomHint))
}

// BloomHintNotNil applies the NotNil predicate on the "bloom_hint" field.
func BloomHintNotNil() predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotNull(FieldBloomHint))
}

// BloomHintEqualFold applies the EqualFold predicate on the "bloom_hint" field.
func BloomHintEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldBloomHint, v))
}

// BloomHintContainsFold applies the ContainsFold predicate on the "bloom_hint" field.
func BloomHintContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldBloomHint, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotNull(FieldDifficulty))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldContainsFold(FieldDifficulty, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BankQuestion {
	return predicate.BankQuestion(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BankQuestion) predicate.BankQuestion {
	return predicate.BankQuestion(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BankQuestion) predicate.BankQuestion {
	return predicate.BankQuestion(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BankQuestion) predicate.BankQuestion {
	return predicate.BankQuestion(sql.NotPredicates(p))
}
