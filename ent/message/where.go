// Code generated by ent, DO NOT EDIT.

package message

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tutorloop/tutorloop/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldID, id))
}

// Seq applies equality check predicate on the "seq" field. It's identical to SeqEQ.
func Seq(v int64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSeq, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSessionID, v))
}

// Role applies equality check predicate on the "role" field. It's identical to RoleEQ.
func Role(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRole, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// BloomLevel applies equality check predicate on the "bloom_level" field. It's identical to BloomLevelEQ.
func BloomLevel(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBloomLevel, v))
}

// SoloLevel applies equality check predicate on the "solo_level" field. It's identical to SoloLevelEQ.
func SoloLevel(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSoloLevel, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDifficulty, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldScore, v))
}

// Confidence applies equality check predicate on the "confidence" field. It's identical to ConfidenceEQ.
func Confidence(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConfidence, v))
}

// Ts applies equality check predicate on the "ts" field. It's identical to TsEQ.
func Ts(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTs, v))
}

// SeqEQ applies the EQ predicate on the "seq" field.
func SeqEQ(v int64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSeq, v))
}

// SeqNEQ applies the NEQ predicate on the "seq" field.
func SeqNEQ(v int64) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSeq, v))
}

// SeqIn applies the In predicate on the "seq" field.
func SeqIn(vs ...int64) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSeq, vs...))
}

// SeqNotIn applies the NotIn predicate on the "seq" field.
func SeqNotIn(vs ...int64) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSeq, vs...))
}

// SeqGT applies the GT predicate on the "seq" field.
func SeqGT(v int64) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSeq, v))
}

// SeqGTE applies the GTE predicate on the "seq" field.
func SeqGTE(v int64) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSeq, v))
}

// SeqLT applies the LT predicate on the "seq" field.
func SeqLT(v int64) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSeq, v))
}

// SeqLTE applies the LTE predicate on the "seq" field.
func SeqLTE(v int64) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSeq, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSessionID, v))
}

// RoleEQ applies the EQ predicate on the "role" field.
func RoleEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldRole, v))
}

// RoleNEQ applies the NEQ predicate on the "role" field.
func RoleNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldRole, v))
}

// RoleIn applies the In predicate on the "role" field.
func RoleIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldRole, vs...))
}

// RoleNotIn applies the NotIn predicate on the "role" field.
func RoleNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldRole, vs...))
}

// RoleGT applies the GT predicate on the "role" field.
func RoleGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldRole, v))
}

// RoleGTE applies the GTE predicate on the "role" field.
func RoleGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldRole, v))
}

// RoleLT applies the LT predicate on the "role" field.
func RoleLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldRole, v))
}

// RoleLTE applies the LTE predicate on the "role" field.
func RoleLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldRole, v))
}

// RoleContains applies the Contains predicate on the "role" field.
func RoleContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldRole, v))
}

// RoleHasPrefix applies the HasPrefix predicate on the "role" field.
func RoleHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldRole, v))
}

// RoleHasSuffix applies the HasSuffix predicate on the "role" field.
func RoleHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldRole, v))
}

// RoleEqualFold applies the EqualFold predicate on the "role" field.
func RoleEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldRole, v))
}

// RoleContainsFold applies the ContainsFold predicate on the "role" field.
func RoleContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldRole, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldContent, v))
}

// BloomLevelEQ applies the EQ predicate on the "bloom_level" field.
func BloomLevelEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldBloomLevel, v))
}

// BloomLevelNEQ applies the NEQ predicate on the "bloom_level" field.
func BloomLevelNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldBloomLevel, v))
}

// BloomLevelIn applies the In predicate on the "bloom_level" field.
func BloomLevelIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldBloomLevel, vs...))
}

// BloomLevelNotIn applies the NotIn predicate on the "bloom_level" field.
func BloomLevelNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldBloomLevel, vs...))
}

// BloomLevelGT applies the GT predicate on the "bloom_level" field.
func BloomLevelGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldBloomLevel, v))
}

// BloomLevelGTE applies the GTE predicate on the "bloom_level" field.
func BloomLevelGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldBloomLevel, v))
}

// BloomLevelLT applies the LT predicate on the "bloom_level" field.
func BloomLevelLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldBloomLevel, v))
}

// BloomLevelLTE applies the LTE predicate on the "bloom_level" field.
func BloomLevelLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldBloomLevel, v))
}

// BloomLevelContains applies the Contains predicate on the "bloom_level" field.
func BloomLevelContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldBloomLevel, v))
}

// BloomLevelHasPrefix applies the HasPrefix predicate on the "bloom_level" field.
func BloomLevelHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldBloomLevel, v))
}

// BloomLevelHasSuffix applies the HasSuffix predicate on the "bloom_level" field.
func BloomLevelHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldBloomLevel, v))
}

// BloomLevelIsNil applies the IsNil predicate on the "bloom_level" field.
func BloomLevelIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldBloomLevel))
}

// BloomLevelNotNil applies the NotNil predicate on the "bloom_level" field.
func BloomLevelNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldBloomLevel))
}

// BloomLevelEqualFold applies the EqualFold predicate on the "bloom_level" field.
func BloomLevelEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldBloomLevel, v))
}

// BloomLevelContainsFold applies the ContainsFold predicate on the "bloom_level" field.
func BloomLevelContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldBloomLevel, v))
}

// SoloLevelEQ applies the EQ predicate on the "solo_level" field.
func SoloLevelEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldSoloLevel, v))
}

// SoloLevelNEQ applies the NEQ predicate on the "solo_level" field.
func SoloLevelNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldSoloLevel, v))
}

// SoloLevelIn applies the In predicate on the "solo_level" field.
func SoloLevelIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldSoloLevel, vs...))
}

// SoloLevelNotIn applies the NotIn predicate on the "solo_level" field.
func SoloLevelNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldSoloLevel, vs...))
}

// SoloLevelGT applies the GT predicate on the "solo_level" field.
func SoloLevelGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldSoloLevel, v))
}

// SoloLevelGTE applies the GTE predicate on the "solo_level" field.
func SoloLevelGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldSoloLevel, v))
}

// SoloLevelLT applies the LT predicate on the "solo_level" field.
func SoloLevelLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldSoloLevel, v))
}

// SoloLevelLTE applies the LTE predicate on the "solo_level" field.
func SoloLevelLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldSoloLevel, v))
}

// SoloLevelContains applies the Contains predicate on the "solo_level" field.
func SoloLevelContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldSoloLevel, v))
}

// SoloLevelHasPrefix applies the HasPrefix predicate on the "solo_level" field.
func SoloLevelHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldSoloLevel, v))
}

// SoloLevelHasSuffix applies the HasSuffix predicate on the "solo_level" field.
func SoloLevelHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldSoloLevel, v))
}

// SoloLevelIsNil applies the IsNil predicate on the "solo_level" field.
func SoloLevelIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldSoloLevel))
}

// SoloLevelNotNil applies the NotNil predicate on the "solo_level" field.
func SoloLevelNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldSoloLevel))
}

// SoloLevelEqualFold applies the EqualFold predicate on the "solo_level" field.
func SoloLevelEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldSoloLevel, v))
}

// SoloLevelContainsFold applies the ContainsFold predicate on the "solo_level" field.
func SoloLevelContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldSoloLevel, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Message {
	return predicate.Message(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Message {
	return predicate.Message(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyIsNil applies the IsNil predicate on the "difficulty" field.
func DifficultyIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldDifficulty))
}

// DifficultyNotNil applies the NotNil predicate on the "difficulty" field.
func DifficultyNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldDifficulty))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Message {
	return predicate.Message(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Message {
	return predicate.Message(sql.FieldContainsFold(FieldDifficulty, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldScore, v))
}

// ScoreIsNil applies the IsNil predicate on the "score" field.
func ScoreIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldScore))
}

// ScoreNotNil applies the NotNil predicate on the "score" field.
func ScoreNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldScore))
}

// ConfidenceEQ applies the EQ predicate on the "confidence" field.
func ConfidenceEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldConfidence, v))
}

// ConfidenceNEQ applies the NEQ predicate on the "confidence" field.
func ConfidenceNEQ(v float64) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldConfidence, v))
}

// ConfidenceIn applies the In predicate on the "confidence" field.
func ConfidenceIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldConfidence, vs...))
}

// ConfidenceNotIn applies the NotIn predicate on the "confidence" field.
func ConfidenceNotIn(vs ...float64) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldConfidence, vs...))
}

// ConfidenceGT applies the GT predicate on the "confidence" field.
func ConfidenceGT(v float64) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldConfidence, v))
}

// ConfidenceGTE applies the GTE predicate on the "confidence" field.
func ConfidenceGTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldConfidence, v))
}

// ConfidenceLT applies the LT predicate on the "confidence" field.
func ConfidenceLT(v float64) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldConfidence, v))
}

// ConfidenceLTE applies the LTE predicate on the "confidence" field.
func ConfidenceLTE(v float64) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldConfidence, v))
}

// ConfidenceIsNil applies the IsNil predicate on the "confidence" field.
func ConfidenceIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldConfidence))
}

// ConfidenceNotNil applies the NotNil predicate on the "confidence" field.
func ConfidenceNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldConfidence))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.Message {
	return predicate.Message(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.Message {
	return predicate.Message(sql.FieldNotNull(FieldPayload))
}

// TsEQ applies the EQ predicate on the "ts" field.
func TsEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldEQ(FieldTs, v))
}

// TsNEQ applies the NEQ predicate on the "ts" field.
func TsNEQ(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldNEQ(FieldTs, v))
}

// TsIn applies the In predicate on the "ts" field.
func TsIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldIn(FieldTs, vs...))
}

// TsNotIn applies the NotIn predicate on the "ts" field.
func TsNotIn(vs ...time.Time) predicate.Message {
	return predicate.Message(sql.FieldNotIn(FieldTs, vs...))
}

// TsGT applies the GT predicate on the "ts" field.
func TsGT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGT(FieldTs, v))
}

// TsGTE applies the GTE predicate on the "ts" field.
func TsGTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldGTE(FieldTs, v))
}

// TsLT applies the LT predicate on the "ts" field.
func TsLT(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLT(FieldTs, v))
}

// TsLTE applies the LTE predicate on the "ts" field.
func TsLTE(v time.Time) predicate.Message {
	return predicate.Message(sql.FieldLTE(FieldTs, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Message) predicate.Message {
	return predicate.Message(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Message) predicate.Message {
	return predicate.Message(sql.NotPredicates(p))
}
