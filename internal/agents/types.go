// Package agents implements the LLM-backed collaborators of the
// assessment loop: answer scoring, Bloom and SOLO tagging, question
// generation, and session summarization. Each collaborator hides its
// prompt and schema; callers see typed results.
package agents

import (
	"context"

	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

// ScoreResult is the structured evaluation of one answer.
type ScoreResult struct {
	Score      float64             `json:"score"`
	Confidence float64             `json:"confidence"`
	BloomLevel taxonomy.BloomLevel `json:"bloom_level"`
	Errors     []string            `json:"errors"`
	Skills     []string            `json:"skills"`
}

// Scorer evaluates a student answer against the question it addresses.
// Implementations never return an error: an unusable model response
// degrades to a neutral result whose Errors field says what happened.
type Scorer interface {
	Score(ctx context.Context, question, answer string) ScoreResult
}

// BloomTagger infers the Bloom level demonstrated by a piece of text.
// Failures degrade to taxonomy.DefaultBloom.
type BloomTagger interface {
	TagBloom(ctx context.Context, text string) taxonomy.BloomLevel
}

// SoloTagger infers the SOLO level of an answer.
// Failures degrade to taxonomy.DefaultSOLO.
type SoloTagger interface {
	TagSOLO(ctx context.Context, text string) taxonomy.SOLOLevel
}

// GenerateInput parameterizes one question generation.
type GenerateInput struct {
	Topic       string
	TargetBloom taxonomy.BloomLevel
	Difficulty  plan.Difficulty
	LastAnswer  string
}

// QuestionGenerator produces the next question. Implementations never
// return an error: any failure substitutes a templated question for
// the target Bloom level and topic.
type QuestionGenerator interface {
	Generate(ctx context.Context, input GenerateInput) string
}

// Summarizer produces a free-text recommendation from recent history
// and the skill EMA map. Unlike the other collaborators it propagates
// failures; the caller decides whether they are fatal.
type Summarizer interface {
	Summarize(ctx context.Context, topic string, history []*store.Message, emas map[string]float64) (string, error)
}
