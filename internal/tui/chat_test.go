package tui

import (
	"errors"
	"testing"

	"github.com/tutorloop/tutorloop/internal/orchestrator"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

func testSession() *store.Session {
	return &store.Session{ID: "sess-1", Mode: "exam", Topic: "recursion", Status: store.StatusActive}
}

func firstResult() *orchestrator.TurnResult {
	return &orchestrator.TurnResult{
		Question:         "Explain recursion in your own words.",
		TargetBloom:      taxonomy.BloomUnderstand,
		TargetDifficulty: plan.DifficultyMedium,
	}
}

func TestNew_SeedsTranscriptWithFirstQuestion(t *testing.T) {
	m := New(nil, testSession(), firstResult())

	if len(m.transcript) != 1 {
		t.Fatalf("transcript length = %d, want 1", len(m.transcript))
	}
	line := m.transcript[0]
	if line.role != store.RoleAssistant {
		t.Errorf("role = %q, want assistant", line.role)
	}
	if line.text != "Explain recursion in your own words." {
		t.Errorf("text = %q", line.text)
	}
	if line.meta == "" {
		t.Error("question line should carry level metadata")
	}
}

func TestUpdate_TurnResultAppendsQuestion(t *testing.T) {
	m := New(nil, testSession(), firstResult())
	m.waiting = true

	score := 0.7
	next, _ := m.Update(turnDoneMsg{result: &orchestrator.TurnResult{
		Question:         "Now apply it to tree traversal.",
		TargetBloom:      taxonomy.BloomApply,
		TargetDifficulty: plan.DifficultyMedium,
		Score:            &score,
	}})
	got := next.(Model)

	if got.waiting {
		t.Error("waiting should clear after a turn result")
	}
	if len(got.transcript) != 2 {
		t.Fatalf("transcript length = %d, want 2", len(got.transcript))
	}
	if got.transcript[1].meta == "" {
		t.Error("scored question should carry score metadata")
	}
}

func TestUpdate_CompletionStopsInput(t *testing.T) {
	m := New(nil, testSession(), firstResult())
	m.waiting = true

	next, _ := m.Update(turnDoneMsg{result: &orchestrator.TurnResult{
		Completed:       true,
		Question:        "That completes the session. Your mean score was 0.70. Keep practicing.",
		Recommendations: "Keep practicing.",
	}})
	got := next.(Model)

	if !got.completed {
		t.Error("model should be completed")
	}
	if got.final == nil || got.final.Question == "" {
		t.Error("final result should be retained for the summary view")
	}
	// Completion message is rendered by the summary, not the transcript.
	if len(got.transcript) != 1 {
		t.Errorf("transcript length = %d, want 1", len(got.transcript))
	}
}

func TestUpdate_TurnErrorSurfaces(t *testing.T) {
	m := New(nil, testSession(), firstResult())
	m.waiting = true

	next, _ := m.Update(turnDoneMsg{err: errors.New("db down")})
	got := next.(Model)

	if got.errMsg == "" {
		t.Error("turn error should surface in the model")
	}
	if got.waiting {
		t.Error("waiting should clear on error")
	}
}

func TestVisibleTranscript_KeepsTail(t *testing.T) {
	m := New(nil, testSession(), firstResult())
	for i := 0; i < 10; i++ {
		m.transcript = append(m.transcript, transcriptLine{role: store.RoleUser, text: "answer"})
	}

	visible := m.visibleTranscript()
	if len(visible) != 6 {
		t.Fatalf("visible = %d lines, want 6", len(visible))
	}
	if visible[len(visible)-1].text != "answer" {
		t.Error("tail should end with the newest line")
	}
}
