package store

import (
	"context"
	"errors"
	"time"
)

// Session statuses. A session moves active → completed exactly once.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Message roles.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ErrSessionCompleted is returned when completing a session that is not active.
var ErrSessionCompleted = errors.New("session already completed")

// Session is one assessment run.
type Session struct {
	ID           string
	Mode         string
	Topic        string
	Status       string
	MaxQuestions *int
	StartedAt    time.Time
}

// Message is one turn record. Seq and TS are assigned on append.
type Message struct {
	Seq        int64
	SessionID  string
	Role       string
	Content    string
	BloomLevel string
	SoloLevel  string
	Difficulty string
	Score      *float64
	Confidence *float64
	Payload    map[string]any
	TS         time.Time
}

// SkillScore is the proficiency record for one (session, skill) pair.
type SkillScore struct {
	SessionID string
	Skill     string
	EMAScore  float64
	EMAAlpha  float64
	Theta     float64
}

// BankEntry is one curated question in a topic's ordered bank.
type BankEntry struct {
	Topic       string
	Position    int
	Text        string
	IdealAnswer string
	BloomHint   string
	Difficulty  string
}

// ContentDocData is a retrieval document with its embedding.
type ContentDocData struct {
	Topic     string
	Skill     string
	Level     string
	Text      string
	Embedding []float32
}

// SessionRepo manages session lifecycle rows.
type SessionRepo interface {
	// Create inserts a new active session.
	Create(ctx context.Context, s *Session) error

	// Get returns the session or nil if not found.
	Get(ctx context.Context, id string) (*Session, error)

	// Complete flips status to completed. Returns ErrSessionCompleted if
	// the session is not active, so the transition can never repeat.
	Complete(ctx context.Context, id string) error

	// List returns all sessions, most recent first.
	List(ctx context.Context) ([]*Session, error)
}

// MessageRepo provides append-only ordered access to turn records.
type MessageRepo interface {
	// Append stores a message, assigning the next global sequence number.
	Append(ctx context.Context, m *Message) error

	// History returns the session's messages in append order. A non-zero
	// limit returns only the most recent limit messages (still ascending).
	History(ctx context.Context, sessionID string, limit int) ([]*Message, error)

	// AskedCount returns the number of assistant messages in the session.
	AskedCount(ctx context.Context, sessionID string) (int, error)

	// LastQuestion returns the most recent assistant message, or nil if
	// the session has none yet.
	LastQuestion(ctx context.Context, sessionID string) (*Message, error)

	// MeanScore averages all non-null user scores in the session.
	// Returns 0.0 when no scored answers exist.
	MeanScore(ctx context.Context, sessionID string) (float64, error)
}

// SkillRepo manages per-(session, skill) proficiency records.
type SkillRepo interface {
	// GetOrInit returns the record, creating it with defaults
	// (EMA 0.5, alpha 0.3, theta 0.0) if absent.
	GetOrInit(ctx context.Context, sessionID, skill string) (*SkillScore, error)

	// Save persists the record's current estimates.
	Save(ctx context.Context, rec *SkillScore) error

	// BySession returns all records for a session.
	BySession(ctx context.Context, sessionID string) ([]*SkillScore, error)
}

// BankRepo is the curated content bank: topic-scoped ordered questions.
type BankRepo interface {
	// EnsureTopic creates the topic if it does not exist.
	EnsureTopic(ctx context.Context, name string) error

	// AddQuestion appends a question at the end of the topic's bank.
	AddQuestion(ctx context.Context, e *BankEntry) error

	// QuestionAt returns the question at the 0-based index. The second
	// return is false when the topic is uncurated or the bank is
	// exhausted, which is a normal condition rather than an error.
	QuestionAt(ctx context.Context, topic string, idx int) (string, bool, error)

	// Topics lists curated topic names.
	Topics(ctx context.Context) ([]string, error)

	// Questions returns a topic's bank in order.
	Questions(ctx context.Context, topic string) ([]*BankEntry, error)
}

// ContentRepo stores retrieval documents for question generation context.
type ContentRepo interface {
	AddDocs(ctx context.Context, docs []ContentDocData) error
	DocsByTopic(ctx context.Context, topic string) ([]ContentDocData, error)
}

// LLMRequestEventData captures one collaborator call.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is the read-side view of a recorded collaborator call.
type LLMEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsage aggregates token usage per purpose label.
type LLMUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns the most recent events, newest first.
	QueryLLMEvents(ctx context.Context, limit int) ([]*LLMEvent, error)

	// GetLLMEvent returns one event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// UsageByPurpose aggregates token usage per purpose label.
	UsageByPurpose(ctx context.Context) ([]LLMUsage, error)
}
