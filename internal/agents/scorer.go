package agents

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

const scorerSystemPrompt = `You are an assessment grader. You receive a question and a student's answer.

Rules:
- Score correctness and completeness on a 0 to 1 scale. A correct but shallow answer scores around 0.6; a correct, well-reasoned answer scores 0.8 or above.
- Report your own confidence in the evaluation, 0 to 1.
- Classify the Bloom level the answer demonstrates, not the level the question asked for.
- List concrete misconceptions or mistakes under errors. Leave errors empty for a sound answer.
- Name the skills the answer exercises as short lowercase identifiers, e.g. "recursion", "time-complexity". Name at least one when the answer engages the topic at all.`

// LLMScorer implements Scorer using the LLM provider.
type LLMScorer struct {
	provider llm.Provider
}

// NewScorer creates a Scorer backed by the given provider.
func NewScorer(provider llm.Provider) *LLMScorer {
	return &LLMScorer{provider: provider}
}

// Score evaluates the answer. It never returns an error: a failed or
// unparseable model call degrades to a neutral result with score 0,
// confidence 0, level understand, and an errors entry describing the
// failure, so the turn can still record something.
func (s *LLMScorer) Score(ctx context.Context, question, answer string) ScoreResult {
	ctx = llm.WithPurpose(ctx, "score")

	req := llm.Request{
		System: scorerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: fmt.Sprintf("Question:\n%s\n\nStudent answer:\n%s", question, answer)},
		},
		Schema:    ScoreSchema,
		MaxTokens: 1024,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return degradedScore(fmt.Sprintf("scorer call failed: %v", err))
	}

	var result ScoreResult
	if err := json.Unmarshal(resp.Content, &result); err != nil {
		return degradedScore(fmt.Sprintf("scorer response unparseable: %v", err))
	}

	result.Score = clamp01(result.Score)
	result.Confidence = clamp01(result.Confidence)
	if !taxonomy.ValidBloom(result.BloomLevel) {
		result.BloomLevel = taxonomy.ParseBloom(string(result.BloomLevel))
	}
	return result
}

func degradedScore(reason string) ScoreResult {
	return ScoreResult{
		Score:      0.0,
		Confidence: 0.0,
		BloomLevel: taxonomy.DefaultBloom,
		Errors:     []string{reason},
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
