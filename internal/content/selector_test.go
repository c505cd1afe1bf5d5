package content

import (
	"context"
	"errors"
	"testing"

	"github.com/tutorloop/tutorloop/internal/agents"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

// fakeBank serves a fixed per-topic ordered question list.
type fakeBank struct {
	questions map[string][]string
	err       error
	lookups   int
}

func (f *fakeBank) EnsureTopic(context.Context, string) error          { return nil }
func (f *fakeBank) AddQuestion(context.Context, *store.BankEntry) error { return nil }
func (f *fakeBank) Topics(context.Context) ([]string, error)           { return nil, nil }
func (f *fakeBank) Questions(context.Context, string) ([]*store.BankEntry, error) {
	return nil, nil
}

func (f *fakeBank) QuestionAt(_ context.Context, topic string, idx int) (string, bool, error) {
	f.lookups++
	if f.err != nil {
		return "", false, f.err
	}
	qs := f.questions[topic]
	if idx < 0 || idx >= len(qs) {
		return "", false, nil
	}
	return qs[idx], true, nil
}

// fakeGenerator returns a fixed question and records inputs.
type fakeGenerator struct {
	question string
	calls    []agents.GenerateInput
}

func (f *fakeGenerator) Generate(_ context.Context, input agents.GenerateInput) string {
	f.calls = append(f.calls, input)
	return f.question
}

func threeEntryBank() *fakeBank {
	return &fakeBank{questions: map[string][]string{
		"recursion": {"bank q0", "bank q1", "bank q2"},
	}}
}

func TestNext_ExamCuratedPrecedence(t *testing.T) {
	bank := threeEntryBank()
	gen := &fakeGenerator{question: "generated"}
	s := NewSelector(bank, gen)
	input := agents.GenerateInput{Topic: "recursion", TargetBloom: taxonomy.BloomUnderstand}

	for idx := 0; idx < 3; idx++ {
		q, err := s.Next(context.Background(), plan.ModeExam, idx, input)
		if err != nil {
			t.Fatalf("idx %d: unexpected error: %v", idx, err)
		}
		want := bank.questions["recursion"][idx]
		if q != want {
			t.Errorf("idx %d: q = %q, want %q", idx, q, want)
		}
	}
	if len(gen.calls) != 0 {
		t.Errorf("generator called %d times while bank had entries", len(gen.calls))
	}

	// Index 3 exhausts the bank and falls through to generation.
	q, err := s.Next(context.Background(), plan.ModeExam, 3, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "generated" {
		t.Errorf("q = %q, want generated fallthrough", q)
	}
}

func TestNext_ExamUncuratedTopicGenerates(t *testing.T) {
	s := NewSelector(threeEntryBank(), &fakeGenerator{question: "generated"})

	q, err := s.Next(context.Background(), plan.ModeExam, 0, agents.GenerateInput{Topic: "unknown-topic"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "generated" {
		t.Errorf("q = %q, want generated", q)
	}
}

func TestNext_DiagnosticNeverConsultsBank(t *testing.T) {
	bank := threeEntryBank()
	gen := &fakeGenerator{question: "generated"}
	s := NewSelector(bank, gen)

	q, err := s.Next(context.Background(), plan.ModeDiagnostic, 0, agents.GenerateInput{Topic: "recursion"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q != "generated" {
		t.Errorf("q = %q, want generated", q)
	}
	if bank.lookups != 0 {
		t.Errorf("bank consulted %d times in diagnostic mode", bank.lookups)
	}
}

func TestNext_BankStorageFailurePropagates(t *testing.T) {
	bank := &fakeBank{err: errors.New("db down")}
	s := NewSelector(bank, &fakeGenerator{question: "generated"})

	_, err := s.Next(context.Background(), plan.ModeExam, 0, agents.GenerateInput{Topic: "recursion"})
	if err == nil {
		t.Fatal("expected storage error to propagate")
	}
}
