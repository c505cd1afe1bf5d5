package agents

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

func TestScorer_ParsesStructuredResult(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":0.85,"confidence":0.9,"bloom_level":"analyze","errors":[],"skills":["recursion","base-cases"]}`),
	})
	s := NewScorer(mock)

	result := s.Score(context.Background(), "Explain recursion.", "Recursion is when a function calls itself with a base case.")
	if result.Score != 0.85 {
		t.Errorf("Score = %v, want 0.85", result.Score)
	}
	if result.BloomLevel != taxonomy.BloomAnalyze {
		t.Errorf("BloomLevel = %q, want analyze", result.BloomLevel)
	}
	if len(result.Skills) != 2 {
		t.Errorf("Skills = %v, want 2 entries", result.Skills)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want empty", result.Errors)
	}
}

func TestScorer_DegradesOnProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewScorer(mock)

	result := s.Score(context.Background(), "q", "a")
	if result.Score != 0.0 || result.Confidence != 0.0 {
		t.Errorf("degraded result = %+v, want zero score and confidence", result)
	}
	if result.BloomLevel != taxonomy.BloomUnderstand {
		t.Errorf("BloomLevel = %q, want understand", result.BloomLevel)
	}
	if len(result.Errors) == 0 {
		t.Error("degraded result must carry a non-empty Errors list")
	}
	if len(result.Skills) != 0 {
		t.Errorf("degraded result should list no skills, got %v", result.Skills)
	}
}

func TestScorer_DegradesOnUnparseableContent(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`this is not json`),
	})
	s := NewScorer(mock)

	result := s.Score(context.Background(), "q", "a")
	if result.Score != 0.0 || len(result.Errors) == 0 {
		t.Errorf("degraded result = %+v", result)
	}
}

func TestScorer_ClampsOutOfRangeScore(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"score":1.4,"confidence":-0.2,"bloom_level":"apply","errors":[],"skills":["x"]}`),
	})
	s := NewScorer(mock)

	result := s.Score(context.Background(), "q", "a")
	if result.Score != 1.0 {
		t.Errorf("Score = %v, want clamped 1.0", result.Score)
	}
	if result.Confidence != 0.0 {
		t.Errorf("Confidence = %v, want clamped 0.0", result.Confidence)
	}
}

func TestBloomTagger_ParsesLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level":"evaluate"}`),
	})
	tagger := NewBloomTagger(mock)

	if got := tagger.TagBloom(context.Background(), "some answer"); got != taxonomy.BloomEvaluate {
		t.Errorf("TagBloom = %q, want evaluate", got)
	}
}

func TestBloomTagger_DegradesToUnderstand(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	tagger := NewBloomTagger(mock)

	if got := tagger.TagBloom(context.Background(), "some answer"); got != taxonomy.BloomUnderstand {
		t.Errorf("TagBloom = %q, want understand", got)
	}
}

func TestSoloTagger_ParsesLevel(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"level":"relational"}`),
	})
	tagger := NewSoloTagger(mock)

	if got := tagger.TagSOLO(context.Background(), "some answer"); got != taxonomy.SOLORelational {
		t.Errorf("TagSOLO = %q, want relational", got)
	}
}

func TestSoloTagger_DegradesToUnistructural(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`not json`),
	})
	tagger := NewSoloTagger(mock)

	if got := tagger.TagSOLO(context.Background(), "some answer"); got != taxonomy.SOLOUnistructural {
		t.Errorf("TagSOLO = %q, want unistructural", got)
	}
}

func TestGenerator_ReturnsModelQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"How would you apply memoization to a recursive Fibonacci?"}`),
	})
	g := NewGenerator(mock, nil)

	q := g.Generate(context.Background(), GenerateInput{
		Topic:       "recursion",
		TargetBloom: taxonomy.BloomApply,
		Difficulty:  plan.DifficultyMedium,
	})
	if !strings.Contains(q, "memoization") {
		t.Errorf("unexpected question: %q", q)
	}
}

func TestGenerator_FallsBackOnError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	g := NewGenerator(mock, nil)

	q := g.Generate(context.Background(), GenerateInput{
		Topic:       "recursion",
		TargetBloom: taxonomy.BloomCreate,
		Difficulty:  plan.DifficultyHard,
	})
	want := FallbackQuestion(taxonomy.BloomCreate, "recursion")
	if q != want {
		t.Errorf("q = %q, want fallback %q", q, want)
	}
	if !strings.Contains(q, "recursion") {
		t.Errorf("fallback should mention the topic: %q", q)
	}
}

func TestGenerator_FallsBackOnEmptyQuestion(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"  "}`),
	})
	g := NewGenerator(mock, nil)

	q := g.Generate(context.Background(), GenerateInput{
		Topic:       "sorting",
		TargetBloom: taxonomy.BloomRemember,
	})
	if q != FallbackQuestion(taxonomy.BloomRemember, "sorting") {
		t.Errorf("unexpected question: %q", q)
	}
}

type failingRetriever struct{}

func (failingRetriever) Search(context.Context, string, string, int) ([]string, error) {
	return nil, errors.New("index unavailable")
}

func TestGenerator_RetrieverFailureStillGenerates(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"question":"Explain quicksort's pivot choice."}`),
	})
	g := NewGenerator(mock, failingRetriever{})

	q := g.Generate(context.Background(), GenerateInput{
		Topic:       "sorting",
		TargetBloom: taxonomy.BloomUnderstand,
		LastAnswer:  "Quicksort partitions around a pivot.",
	})
	if !strings.Contains(q, "pivot") {
		t.Errorf("unexpected question: %q", q)
	}
}

func TestFallbackQuestion_AllLevelsCovered(t *testing.T) {
	for _, lvl := range taxonomy.BloomLadder {
		q := FallbackQuestion(lvl, "graphs")
		if !strings.Contains(q, "graphs") {
			t.Errorf("fallback for %q missing topic: %q", lvl, q)
		}
	}
	// An unrecognized level still yields a question.
	if q := FallbackQuestion("guess", "graphs"); !strings.Contains(q, "graphs") {
		t.Errorf("fallback for unrecognized level: %q", q)
	}
}

func TestSummarizer_ReturnsRecommendation(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"recommendation":"Strongest in recursion; practice graph traversal next."}`),
	})
	s := NewSummarizer(mock)

	history := []*store.Message{
		{Role: store.RoleAssistant, Content: "Explain recursion."},
		{Role: store.RoleUser, Content: "A function calling itself."},
	}
	rec, err := s.Summarize(context.Background(), "algorithms", history, map[string]float64{"recursion": 0.8})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(rec, "recursion") {
		t.Errorf("unexpected recommendation: %q", rec)
	}
}

func TestSummarizer_PropagatesFailure(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Err: &llm.ErrProviderUnavailable{Err: errors.New("down")},
	})
	s := NewSummarizer(mock)

	_, err := s.Summarize(context.Background(), "algorithms", nil, nil)
	if err == nil {
		t.Fatal("expected error to propagate")
	}
}

func TestSummarizer_TruncatesHistory(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"recommendation":"Keep going."}`),
	})
	s := NewSummarizer(mock)

	history := make([]*store.Message, 20)
	for i := range history {
		history[i] = &store.Message{Role: store.RoleUser, Content: "answer"}
	}
	if _, err := s.Summarize(context.Background(), "t", history, nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The prompt should carry at most 12 dialogue lines.
	prompt := mock.Calls[0].Messages[0].Content
	if got := strings.Count(prompt, "[user]"); got != 12 {
		t.Errorf("prompt carries %d turns, want 12", got)
	}
}
