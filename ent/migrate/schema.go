// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BankQuestionsColumns holds the columns for the "bank_questions" table.
	BankQuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "position", Type: field.TypeInt},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "ideal_answer", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "bloom_hint", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BankQuestionsTable holds the schema information for the "bank_questions" table.
	BankQuestionsTable = &schema.Table{
		Name:       "bank_questions",
		Columns:    BankQuestionsColumns,
		PrimaryKey: []*schema.Column{BankQuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bankquestion_topic_position",
				Unique:  true,
				Columns: []*schema.Column{BankQuestionsColumns[1], BankQuestionsColumns[2]},
			},
		},
	}
	// ContentDocsColumns holds the columns for the "content_docs" table.
	ContentDocsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString, Default: "general"},
		{Name: "level", Type: field.TypeString, Default: "remember"},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "embedding", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ContentDocsTable holds the schema information for the "content_docs" table.
	ContentDocsTable = &schema.Table{
		Name:       "content_docs",
		Columns:    ContentDocsColumns,
		PrimaryKey: []*schema.Column{ContentDocsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contentdoc_topic",
				Unique:  false,
				Columns: []*schema.Column{ContentDocsColumns[1]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "seq", Type: field.TypeInt64, Unique: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "bloom_level", Type: field.TypeString, Nullable: true},
		{Name: "solo_level", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeString, Nullable: true},
		{Name: "score", Type: field.TypeFloat64, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "ts", Type: field.TypeTime},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "message_session_id_seq",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[1]},
			},
			{
				Name:    "message_session_id_role",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[2], MessagesColumns[3]},
			},
			{
				Name:    "message_ts",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[11]},
			},
		},
	}
	// SessionsColumns holds the columns for the "sessions" table.
	SessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "mode", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "status", Type: field.TypeString, Default: "active"},
		{Name: "max_questions", Type: field.TypeInt, Nullable: true},
		{Name: "started_at", Type: field.TypeTime},
	}
	// SessionsTable holds the schema information for the "sessions" table.
	SessionsTable = &schema.Table{
		Name:       "sessions",
		Columns:    SessionsColumns,
		PrimaryKey: []*schema.Column{SessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "session_mode",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[1]},
			},
			{
				Name:    "session_status",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[3]},
			},
			{
				Name:    "session_started_at",
				Unique:  false,
				Columns: []*schema.Column{SessionsColumns[5]},
			},
		},
	}
	// SkillScoresColumns holds the columns for the "skill_scores" table.
	SkillScoresColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString},
		{Name: "skill", Type: field.TypeString},
		{Name: "ema_score", Type: field.TypeFloat64, Default: 0.5},
		{Name: "ema_alpha", Type: field.TypeFloat64, Default: 0.3},
		{Name: "irt_theta", Type: field.TypeFloat64, Default: 0},
		{Name: "last_update", Type: field.TypeTime},
	}
	// SkillScoresTable holds the schema information for the "skill_scores" table.
	SkillScoresTable = &schema.Table{
		Name:       "skill_scores",
		Columns:    SkillScoresColumns,
		PrimaryKey: []*schema.Column{SkillScoresColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "skillscore_session_id_skill",
				Unique:  true,
				Columns: []*schema.Column{SkillScoresColumns[1], SkillScoresColumns[2]},
			},
		},
	}
	// TopicsColumns holds the columns for the "topics" table.
	TopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "name", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TopicsTable holds the schema information for the "topics" table.
	TopicsTable = &schema.Table{
		Name:       "topics",
		Columns:    TopicsColumns,
		PrimaryKey: []*schema.Column{TopicsColumns[0]},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BankQuestionsTable,
		ContentDocsTable,
		LlmRequestEventsTable,
		MessagesTable,
		SessionsTable,
		SkillScoresTable,
		TopicsTable,
	}
)

func init() {
}
