package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/store"
)

// MaxHistoryTurns bounds how much dialogue the summarizer sees.
const MaxHistoryTurns = 12

const summarizerSystemPrompt = `You are an assessment coach. You receive the recent dialogue of a tutoring session and the student's per-skill proficiency estimates (0 to 1).

Write a recommendation of two or three sentences: name the strongest and weakest skills, and give one concrete next step for the weakest area. Address the student directly.`

// LLMSummarizer implements Summarizer using the LLM provider.
type LLMSummarizer struct {
	provider llm.Provider
}

// NewSummarizer creates a Summarizer backed by the given provider.
func NewSummarizer(provider llm.Provider) *LLMSummarizer {
	return &LLMSummarizer{provider: provider}
}

// Summarize produces a recommendation. Failures propagate so the
// caller can decide whether the path requires one.
func (s *LLMSummarizer) Summarize(ctx context.Context, topic string, history []*store.Message, emas map[string]float64) (string, error) {
	ctx = llm.WithPurpose(ctx, "summarize")

	if len(history) > MaxHistoryTurns {
		history = history[len(history)-MaxHistoryTurns:]
	}

	req := llm.Request{
		System: summarizerSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildSummaryMessage(topic, history, emas)},
		},
		Schema:    SummarySchema,
		MaxTokens: 512,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return "", fmt.Errorf("summarizer call failed: %w", err)
	}

	var out struct {
		Recommendation string `json:"recommendation"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return "", fmt.Errorf("summarizer response unparseable: %w", err)
	}
	if strings.TrimSpace(out.Recommendation) == "" {
		return "", fmt.Errorf("summarizer returned empty recommendation")
	}
	return strings.TrimSpace(out.Recommendation), nil
}

func buildSummaryMessage(topic string, history []*store.Message, emas map[string]float64) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", topic)

	b.WriteString("\nSkill estimates:\n")
	if len(emas) == 0 {
		b.WriteString("none yet\n")
	} else {
		// Stable order so prompts are reproducible.
		skills := make([]string, 0, len(emas))
		for skill := range emas {
			skills = append(skills, skill)
		}
		sort.Strings(skills)
		for _, skill := range skills {
			fmt.Fprintf(&b, "- %s: %.2f\n", skill, emas[skill])
		}
	}

	b.WriteString("\nRecent dialogue:\n")
	for _, m := range history {
		fmt.Fprintf(&b, "[%s] %s\n", m.Role, m.Content)
	}

	return b.String()
}
