package agents

import (
	"context"
	"encoding/json"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

const bloomTagPrompt = `Classify the Bloom cognitive level demonstrated by the text.
The levels, in ascending order: remember, understand, apply, analyze, evaluate, create.
Pick the single highest level the text clearly demonstrates.`

const soloTagPrompt = `Classify the SOLO structural level of the student answer.
The levels, in ascending order: prestructural (misses the point), unistructural (one relevant aspect), multistructural (several aspects, unconnected), relational (aspects integrated into a whole), extended-abstract (generalizes beyond the given context).
Pick the single level that best fits.`

// LLMBloomTagger implements BloomTagger using the LLM provider.
type LLMBloomTagger struct {
	provider llm.Provider
}

// NewBloomTagger creates a BloomTagger backed by the given provider.
func NewBloomTagger(provider llm.Provider) *LLMBloomTagger {
	return &LLMBloomTagger{provider: provider}
}

// TagBloom classifies text, degrading to the default level on any failure.
func (t *LLMBloomTagger) TagBloom(ctx context.Context, text string) taxonomy.BloomLevel {
	ctx = llm.WithPurpose(ctx, "tag-bloom")

	raw, ok := tagLevel(ctx, t.provider, bloomTagPrompt, BloomTagSchema, text)
	if !ok {
		return taxonomy.DefaultBloom
	}
	return taxonomy.ParseBloom(raw)
}

// LLMSoloTagger implements SoloTagger using the LLM provider.
type LLMSoloTagger struct {
	provider llm.Provider
}

// NewSoloTagger creates a SoloTagger backed by the given provider.
func NewSoloTagger(provider llm.Provider) *LLMSoloTagger {
	return &LLMSoloTagger{provider: provider}
}

// TagSOLO classifies an answer, degrading to the default level on any failure.
func (t *LLMSoloTagger) TagSOLO(ctx context.Context, text string) taxonomy.SOLOLevel {
	ctx = llm.WithPurpose(ctx, "tag-solo")

	raw, ok := tagLevel(ctx, t.provider, soloTagPrompt, SoloTagSchema, text)
	if !ok {
		return taxonomy.DefaultSOLO
	}
	return taxonomy.ParseSOLO(raw)
}

// tagLevel runs one classification call and extracts the level string.
func tagLevel(ctx context.Context, provider llm.Provider, system string, schema *llm.Schema, text string) (string, bool) {
	req := llm.Request{
		System: system,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: text},
		},
		Schema:    schema,
		MaxTokens: 128,
	}

	resp, err := provider.Generate(ctx, req)
	if err != nil {
		return "", false
	}

	var out struct {
		Level string `json:"level"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil || out.Level == "" {
		return "", false
	}
	return out.Level, true
}
