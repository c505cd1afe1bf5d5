// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tutorloop/tutorloop/ent/bankquestion"
	"github.com/tutorloop/tutorloop/ent/contentdoc"
	"github.com/tutorloop/tutorloop/ent/llmrequestevent"
	"github.com/tutorloop/tutorloop/ent/message"
	"github.com/tutorloop/tutorloop/ent/schema"
	"github.com/tutorloop/tutorloop/ent/session"
	"github.com/tutorloop/tutorloop/ent/skillscore"
	"github.com/tutorloop/tutorloop/ent/topic"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	bankquestionFields := schema.BankQuestion{}.Fields()
	_ = bankquestionFields
	// bankquestionDescTopic is the schema descriptor for topic field.
	bankquestionDescTopic := bankquestionFields[0].Descriptor()
	// bankquestion.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	bankquestion.TopicValidator = bankquestionDescTopic.Validators[0].(func(string) error)
	// bankquestionDescText is the schema descriptor for text field.
	bankquestionDescText := bankquestionFields[2].Descriptor()
	// bankquestion.TextValidator is a validator for the "text" field. It is called by the builders before save.
	bankquestion.TextValidator = bankquestionDescText.Validators[0].(func(string) error)
	// bankquestionDescCreatedAt is the schema descriptor for created_at field.
	bankquestionDescCreatedAt := bankquestionFields[6].Descriptor()
	// bankquestion.DefaultCreatedAt holds the default value on creation for the created_at field.
	bankquestion.DefaultCreatedAt = bankquestionDescCreatedAt.Default.(func() time.Time)
	contentdocFields := schema.ContentDoc{}.Fields()
	_ = contentdocFields
	// contentdocDescTopic is the schema descriptor for topic field.
	contentdocDescTopic := contentdocFields[0].Descriptor()
	// contentdoc.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	contentdoc.TopicValidator = contentdocDescTopic.Validators[0].(func(string) error)
	// contentdocDescSkill is the schema descriptor for skill field.
	contentdocDescSkill := contentdocFields[1].Descriptor()
	// contentdoc.DefaultSkill holds the default value on creation for the skill field.
	contentdoc.DefaultSkill = contentdocDescSkill.Default.(string)
	// contentdocDescLevel is the schema descriptor for level field.
	contentdocDescLevel := contentdocFields[2].Descriptor()
	// contentdoc.DefaultLevel holds the default value on creation for the level field.
	contentdoc.DefaultLevel = contentdocDescLevel.Default.(string)
	// contentdocDescText is the schema descriptor for text field.
	contentdocDescText := contentdocFields[3].Descriptor()
	// contentdoc.TextValidator is a validator for the "text" field. It is called by the builders before save.
	contentdoc.TextValidator = contentdocDescText.Validators[0].(func(string) error)
	// contentdocDescCreatedAt is the schema descriptor for created_at field.
	contentdocDescCreatedAt := contentdocFields[5].Descriptor()
	// contentdoc.DefaultCreatedAt holds the default value on creation for the created_at field.
	contentdoc.DefaultCreatedAt = contentdocDescCreatedAt.Default.(func() time.Time)
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[10].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[11].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescSessionID is the schema descriptor for session_id field.
	messageDescSessionID := messageFields[1].Descriptor()
	// message.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	message.SessionIDValidator = messageDescSessionID.Validators[0].(func(string) error)
	// messageDescRole is the schema descriptor for role field.
	messageDescRole := messageFields[2].Descriptor()
	// message.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	message.RoleValidator = messageDescRole.Validators[0].(func(string) error)
	// messageDescTs is the schema descriptor for ts field.
	messageDescTs := messageFields[10].Descriptor()
	// message.DefaultTs holds the default value on creation for the ts field.
	message.DefaultTs = messageDescTs.Default.(func() time.Time)
	sessionFields := schema.Session{}.Fields()
	_ = sessionFields
	// sessionDescMode is the schema descriptor for mode field.
	sessionDescMode := sessionFields[1].Descriptor()
	// session.ModeValidator is a validator for the "mode" field. It is called by the builders before save.
	session.ModeValidator = sessionDescMode.Validators[0].(func(string) error)
	// sessionDescTopic is the schema descriptor for topic field.
	sessionDescTopic := sessionFields[2].Descriptor()
	// session.TopicValidator is a validator for the "topic" field. It is called by the builders before save.
	session.TopicValidator = sessionDescTopic.Validators[0].(func(string) error)
	// sessionDescStatus is the schema descriptor for status field.
	sessionDescStatus := sessionFields[3].Descriptor()
	// session.DefaultStatus holds the default value on creation for the status field.
	session.DefaultStatus = sessionDescStatus.Default.(string)
	// sessionDescStartedAt is the schema descriptor for started_at field.
	sessionDescStartedAt := sessionFields[5].Descriptor()
	// session.DefaultStartedAt holds the default value on creation for the started_at field.
	session.DefaultStartedAt = sessionDescStartedAt.Default.(func() time.Time)
	// sessionDescID is the schema descriptor for id field.
	sessionDescID := sessionFields[0].Descriptor()
	// session.IDValidator is a validator for the "id" field. It is called by the builders before save.
	session.IDValidator = sessionDescID.Validators[0].(func(string) error)
	skillscoreFields := schema.SkillScore{}.Fields()
	_ = skillscoreFields
	// skillscoreDescSessionID is the schema descriptor for session_id field.
	skillscoreDescSessionID := skillscoreFields[0].Descriptor()
	// skillscore.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	skillscore.SessionIDValidator = skillscoreDescSessionID.Validators[0].(func(string) error)
	// skillscoreDescSkill is the schema descriptor for skill field.
	skillscoreDescSkill := skillscoreFields[1].Descriptor()
	// skillscore.SkillValidator is a validator for the "skill" field. It is called by the builders before save.
	skillscore.SkillValidator = skillscoreDescSkill.Validators[0].(func(string) error)
	// skillscoreDescEmaScore is the schema descriptor for ema_score field.
	skillscoreDescEmaScore := skillscoreFields[2].Descriptor()
	// skillscore.DefaultEmaScore holds the default value on creation for the ema_score field.
	skillscore.DefaultEmaScore = skillscoreDescEmaScore.Default.(float64)
	// skillscoreDescEmaAlpha is the schema descriptor for ema_alpha field.
	skillscoreDescEmaAlpha := skillscoreFields[3].Descriptor()
	// skillscore.DefaultEmaAlpha holds the default value on creation for the ema_alpha field.
	skillscore.DefaultEmaAlpha = skillscoreDescEmaAlpha.Default.(float64)
	// skillscoreDescIrtTheta is the schema descriptor for irt_theta field.
	skillscoreDescIrtTheta := skillscoreFields[4].Descriptor()
	// skillscore.DefaultIrtTheta holds the default value on creation for the irt_theta field.
	skillscore.DefaultIrtTheta = skillscoreDescIrtTheta.Default.(float64)
	// skillscoreDescLastUpdate is the schema descriptor for last_update field.
	skillscoreDescLastUpdate := skillscoreFields[5].Descriptor()
	// skillscore.DefaultLastUpdate holds the default value on creation for the last_update field.
	skillscore.DefaultLastUpdate = skillscoreDescLastUpdate.Default.(func() time.Time)
	// skillscore.UpdateDefaultLastUpdate holds the default value on update for the last_update field.
	skillscore.UpdateDefaultLastUpdate = skillscoreDescLastUpdate.UpdateDefault.(func() time.Time)
	topicFields := schema.Topic{}.Fields()
	_ = topicFields
	// topicDescName is the schema descriptor for name field.
	topicDescName := topicFields[0].Descriptor()
	// topic.NameValidator is a validator for the "name" field. It is called by the builders before save.
	topic.NameValidator = topicDescName.Validators[0].(func(string) error)
	// topicDescCreatedAt is the schema descriptor for created_at field.
	topicDescCreatedAt := topicFields[1].Descriptor()
	// topic.DefaultCreatedAt holds the default value on creation for the created_at field.
	topic.DefaultCreatedAt = topicDescCreatedAt.Default.(func() time.Time)
}
