// Package orchestrator drives the assessment dialogue. Each turn runs
// one synchronous pipeline: record the prior answer, check for exam
// completion, plan the next levels, select the next question, and
// gather telemetry.
package orchestrator

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tutorloop/tutorloop/internal/agents"
	"github.com/tutorloop/tutorloop/internal/assess"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

const (
	// recordAlpha is the EMA smoothing applied on every answer.
	recordAlpha = 0.35

	// examQuestionLimit caps exam sessions.
	examQuestionLimit = 10

	// initialScore seeds planning on the very first turn, before any
	// answer has been scored.
	initialScore = 0.6

	// generalSkill is credited when the scorer names no skills.
	generalSkill = "general"

	// sessionOpener is the synthetic first utterance of a session.
	sessionOpener = "I'm ready to begin."
)

// QuestionSource resolves the next question for a turn.
type QuestionSource interface {
	Next(ctx context.Context, mode plan.Mode, idx int, input agents.GenerateInput) (string, error)
}

// TurnResult is the outward-facing outcome of one turn.
type TurnResult struct {
	Completed bool

	// Question is the next question, or the completion message when
	// Completed is true.
	Question string

	TargetBloom      taxonomy.BloomLevel
	TargetDifficulty plan.Difficulty

	// Score and Confidence are nil on the initial turn, which has no
	// prior question to score against.
	Score      *float64
	Confidence *float64

	Errors          []string
	Profile         map[string]assess.SkillSummary
	Recommendations string
}

// Orchestrator coordinates one turn at a time per session.
type Orchestrator struct {
	sessions  store.SessionRepo
	messages  store.MessageRepo
	estimator *assess.Estimator

	scorer      agents.Scorer
	bloomTagger agents.BloomTagger
	soloTagger  agents.SoloTagger
	summarizer  agents.Summarizer
	selector    QuestionSource

	locks *sessionLocks
}

// Deps bundles the orchestrator's collaborators.
type Deps struct {
	Sessions    store.SessionRepo
	Messages    store.MessageRepo
	Estimator   *assess.Estimator
	Scorer      agents.Scorer
	BloomTagger agents.BloomTagger
	SoloTagger  agents.SoloTagger
	Summarizer  agents.Summarizer
	Selector    QuestionSource
}

// New creates an Orchestrator from its collaborators.
func New(deps Deps) *Orchestrator {
	return &Orchestrator{
		sessions:    deps.Sessions,
		messages:    deps.Messages,
		estimator:   deps.Estimator,
		scorer:      deps.Scorer,
		bloomTagger: deps.BloomTagger,
		soloTagger:  deps.SoloTagger,
		summarizer:  deps.Summarizer,
		selector:    deps.Selector,
		locks:       newSessionLocks(),
	}
}

// Start creates a session and runs its initial turn, producing the
// first question.
func (o *Orchestrator) Start(ctx context.Context, mode plan.Mode, topic string) (*store.Session, *TurnResult, error) {
	sess := &store.Session{
		ID:        uuid.NewString(),
		Mode:      string(mode),
		Topic:     topic,
		Status:    store.StatusActive,
		StartedAt: time.Now(),
	}
	if mode == plan.ModeExam {
		limit := examQuestionLimit
		sess.MaxQuestions = &limit
	}

	if err := o.sessions.Create(ctx, sess); err != nil {
		return nil, nil, fmt.Errorf("creating session: %w", err)
	}

	result, err := o.RunTurn(ctx, sess.ID, sessionOpener)
	if err != nil {
		return nil, nil, err
	}
	return sess, result, nil
}
