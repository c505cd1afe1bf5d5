package agents

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

const generatorSystemPrompt = `You are an assessment tutor writing the next question for a student.

Rules:
- Write exactly one open-ended question the student answers in prose.
- Target the given Bloom level: the verb of the question should demand that level of thinking (e.g. "explain" for understand, "compare" for analyze, "design" for create).
- Match the given difficulty tier.
- Build on the student's last answer when one is given: probe a gap or push a step further.
- When reference material is provided, ground the question in it without quoting it verbatim.
- The question must be self-contained. No preamble, no numbering.`

// fallbackStems produce a deterministic question per Bloom level when
// generation fails. Every level has a stem so a turn always yields a
// question.
var fallbackStems = map[taxonomy.BloomLevel]string{
	taxonomy.BloomRemember:   "List the key facts and terms you know about %s.",
	taxonomy.BloomUnderstand: "Explain %s in your own words.",
	taxonomy.BloomApply:      "Describe how you would use %s to solve a concrete problem.",
	taxonomy.BloomAnalyze:    "Break %s down into its parts and explain how they relate.",
	taxonomy.BloomEvaluate:   "What are the strengths and weaknesses of %s? Justify your judgment.",
	taxonomy.BloomCreate:     "Design something new that builds on %s and describe how it works.",
}

// Retriever supplies supporting context documents for a query.
// A nil Retriever or a failing search simply yields no context.
type Retriever interface {
	Search(ctx context.Context, topic, query string, k int) ([]string, error)
}

// LLMGenerator implements QuestionGenerator using the LLM provider,
// optionally grounding questions in retrieved content.
type LLMGenerator struct {
	provider  llm.Provider
	retriever Retriever
	contextK  int
}

// NewGenerator creates a QuestionGenerator. retriever may be nil.
func NewGenerator(provider llm.Provider, retriever Retriever) *LLMGenerator {
	return &LLMGenerator{provider: provider, retriever: retriever, contextK: 3}
}

// Generate produces the next question. It never fails outward: any
// error in retrieval or generation degrades to the templated fallback
// for the target Bloom level.
func (g *LLMGenerator) Generate(ctx context.Context, input GenerateInput) string {
	ctx = llm.WithPurpose(ctx, "generate")

	req := llm.Request{
		System: generatorSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: g.buildUserMessage(ctx, input)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   512,
		Temperature: 0.7,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return FallbackQuestion(input.TargetBloom, input.Topic)
	}

	var out struct {
		Question string `json:"question"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || strings.TrimSpace(out.Question) == "" {
		return FallbackQuestion(input.TargetBloom, input.Topic)
	}
	return strings.TrimSpace(out.Question)
}

func (g *LLMGenerator) buildUserMessage(ctx context.Context, input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Target Bloom level: %s\n", input.TargetBloom)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	if input.LastAnswer != "" {
		b.WriteString("\nStudent's last answer:\n")
		b.WriteString(input.LastAnswer)
		b.WriteString("\n")
	}

	for _, doc := range g.contextDocs(ctx, input) {
		b.WriteString("\nReference material:\n")
		b.WriteString(doc)
		b.WriteString("\n")
	}

	return b.String()
}

// contextDocs retrieves supporting documents keyed on the last answer.
// All retrieval failures yield no context.
func (g *LLMGenerator) contextDocs(ctx context.Context, input GenerateInput) []string {
	if g.retriever == nil {
		return nil
	}
	query := input.LastAnswer
	if query == "" {
		query = input.Topic
	}
	docs, err := g.retriever.Search(ctx, input.Topic, query, g.contextK)
	if err != nil {
		return nil
	}
	return docs
}

// FallbackQuestion returns the templated question for a Bloom level
// and topic. Unrecognized levels use the understand stem.
func FallbackQuestion(level taxonomy.BloomLevel, topic string) string {
	stem, ok := fallbackStems[level]
	if !ok {
		stem = fallbackStems[taxonomy.DefaultBloom]
	}
	return fmt.Sprintf(stem, topic)
}
