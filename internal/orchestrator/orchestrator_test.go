package orchestrator

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/tutorloop/tutorloop/internal/agents"
	"github.com/tutorloop/tutorloop/internal/assess"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

// In-memory fakes for the persistence ports.

type fakeSessionRepo struct {
	sessions map[string]*store.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*store.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, s *store.Session) error {
	cp := *s
	f.sessions[s.ID] = &cp
	return nil
}

func (f *fakeSessionRepo) Get(_ context.Context, id string) (*store.Session, error) {
	s, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

func (f *fakeSessionRepo) Complete(_ context.Context, id string) error {
	s, ok := f.sessions[id]
	if !ok || s.Status != store.StatusActive {
		return store.ErrSessionCompleted
	}
	s.Status = store.StatusCompleted
	return nil
}

func (f *fakeSessionRepo) List(context.Context) ([]*store.Session, error) { return nil, nil }

type fakeMessageRepo struct {
	msgs []*store.Message
	seq  int64
}

func (f *fakeMessageRepo) Append(_ context.Context, m *store.Message) error {
	f.seq++
	cp := *m
	cp.Seq = f.seq
	f.msgs = append(f.msgs, &cp)
	return nil
}

func (f *fakeMessageRepo) History(_ context.Context, sessionID string, limit int) ([]*store.Message, error) {
	var out []*store.Message
	for _, m := range f.msgs {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	if limit > 0 && len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

func (f *fakeMessageRepo) AskedCount(_ context.Context, sessionID string) (int, error) {
	n := 0
	for _, m := range f.msgs {
		if m.SessionID == sessionID && m.Role == store.RoleAssistant {
			n++
		}
	}
	return n, nil
}

func (f *fakeMessageRepo) LastQuestion(_ context.Context, sessionID string) (*store.Message, error) {
	for i := len(f.msgs) - 1; i >= 0; i-- {
		if f.msgs[i].SessionID == sessionID && f.msgs[i].Role == store.RoleAssistant {
			cp := *f.msgs[i]
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeMessageRepo) MeanScore(_ context.Context, sessionID string) (float64, error) {
	var sum float64
	n := 0
	for _, m := range f.msgs {
		if m.SessionID == sessionID && m.Role == store.RoleUser && m.Score != nil {
			sum += *m.Score
			n++
		}
	}
	if n == 0 {
		return 0.0, nil
	}
	return sum / float64(n), nil
}

type fakeSkillRepo struct {
	recs map[string]*store.SkillScore
}

func newFakeSkillRepo() *fakeSkillRepo {
	return &fakeSkillRepo{recs: make(map[string]*store.SkillScore)}
}

func (f *fakeSkillRepo) GetOrInit(_ context.Context, sessionID, skill string) (*store.SkillScore, error) {
	key := sessionID + "/" + skill
	if rec, ok := f.recs[key]; ok {
		cp := *rec
		return &cp, nil
	}
	rec := &store.SkillScore{SessionID: sessionID, Skill: skill, EMAScore: 0.5, EMAAlpha: 0.3}
	f.recs[key] = rec
	cp := *rec
	return &cp, nil
}

func (f *fakeSkillRepo) Save(_ context.Context, rec *store.SkillScore) error {
	cp := *rec
	f.recs[rec.SessionID+"/"+rec.Skill] = &cp
	return nil
}

func (f *fakeSkillRepo) BySession(_ context.Context, sessionID string) ([]*store.SkillScore, error) {
	var out []*store.SkillScore
	for _, rec := range f.recs {
		if rec.SessionID == sessionID {
			cp := *rec
			out = append(out, &cp)
		}
	}
	return out, nil
}

// Collaborator fakes.

type fakeScorer struct {
	result agents.ScoreResult
}

func (f *fakeScorer) Score(context.Context, string, string) agents.ScoreResult {
	return f.result
}

type fakeBloomTagger struct{ level taxonomy.BloomLevel }

func (f *fakeBloomTagger) TagBloom(context.Context, string) taxonomy.BloomLevel {
	if f.level == "" {
		return taxonomy.DefaultBloom
	}
	return f.level
}

type fakeSoloTagger struct{ level taxonomy.SOLOLevel }

func (f *fakeSoloTagger) TagSOLO(context.Context, string) taxonomy.SOLOLevel {
	if f.level == "" {
		return taxonomy.DefaultSOLO
	}
	return f.level
}

type fakeSummarizer struct {
	recommendation string
	err            error
	// errOnCall limits the failure to the nth call (1-based); 0 fails always.
	errOnCall int
	calls     int
}

func (f *fakeSummarizer) Summarize(context.Context, string, []*store.Message, map[string]float64) (string, error) {
	f.calls++
	if f.err != nil && (f.errOnCall == 0 || f.calls == f.errOnCall) {
		return "", f.err
	}
	return f.recommendation, nil
}

type fakeSelector struct {
	questions []string // indexed by idx when present
	fallback  string
	calls     []int
	err       error
}

func (f *fakeSelector) Next(_ context.Context, _ plan.Mode, idx int, _ agents.GenerateInput) (string, error) {
	f.calls = append(f.calls, idx)
	if f.err != nil {
		return "", f.err
	}
	if idx < len(f.questions) {
		return f.questions[idx], nil
	}
	if f.fallback != "" {
		return f.fallback, nil
	}
	return fmt.Sprintf("generated question %d", idx), nil
}

type harness struct {
	orch       *Orchestrator
	sessions   *fakeSessionRepo
	messages   *fakeMessageRepo
	skills     *fakeSkillRepo
	scorer     *fakeScorer
	summarizer *fakeSummarizer
	selector   *fakeSelector
}

func newHarness() *harness {
	h := &harness{
		sessions:   newFakeSessionRepo(),
		messages:   &fakeMessageRepo{},
		skills:     newFakeSkillRepo(),
		scorer:     &fakeScorer{result: agents.ScoreResult{Score: 0.6, Confidence: 0.9, BloomLevel: taxonomy.BloomUnderstand, Skills: []string{"recursion"}}},
		summarizer: &fakeSummarizer{recommendation: "Review base cases next."},
		selector:   &fakeSelector{},
	}
	h.orch = New(Deps{
		Sessions:    h.sessions,
		Messages:    h.messages,
		Estimator:   assess.NewEstimator(h.skills),
		Scorer:      h.scorer,
		BloomTagger: &fakeBloomTagger{},
		SoloTagger:  &fakeSoloTagger{},
		Summarizer:  h.summarizer,
		Selector:    h.selector,
	})
	return h
}

func TestStart_InitialTurnDefaults(t *testing.T) {
	h := newHarness()
	h.selector.questions = []string{"bank q0"}

	sess, result, err := h.orch.Start(context.Background(), plan.ModeExam, "recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Completed {
		t.Fatal("initial turn must not complete")
	}
	if result.Question != "bank q0" {
		t.Errorf("Question = %q, want index-0 bank question", result.Question)
	}
	if len(h.selector.calls) != 1 || h.selector.calls[0] != 0 {
		t.Errorf("selector called with %v, want [0]", h.selector.calls)
	}
	// Default score 0.6 holds both ladders at their defaults.
	if result.TargetBloom != taxonomy.BloomUnderstand {
		t.Errorf("TargetBloom = %q, want understand", result.TargetBloom)
	}
	if result.TargetDifficulty != plan.DifficultyMedium {
		t.Errorf("TargetDifficulty = %q, want medium", result.TargetDifficulty)
	}
	if result.Score != nil || result.Confidence != nil {
		t.Error("initial turn must carry no score or confidence")
	}

	// One bare user record and one assistant record.
	if len(h.messages.msgs) != 2 {
		t.Fatalf("recorded %d messages, want 2", len(h.messages.msgs))
	}
	opener := h.messages.msgs[0]
	if opener.Role != store.RoleUser || opener.Score != nil {
		t.Errorf("opener record = %+v, want unscored user record", opener)
	}
	if sess.Status != store.StatusActive {
		t.Errorf("session status = %q, want active", sess.Status)
	}
}

func TestRunTurn_ExamRunsToCompletion(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	sess, _, err := h.orch.Start(ctx, plan.ModeExam, "recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var last *TurnResult
	for i := 0; i < 10; i++ {
		last, err = h.orch.RunTurn(ctx, sess.ID, fmt.Sprintf("answer %d", i+1))
		if err != nil {
			t.Fatalf("turn %d: unexpected error: %v", i+1, err)
		}
		if i < 9 && last.Completed {
			t.Fatalf("turn %d completed early", i+1)
		}
	}

	if !last.Completed {
		t.Fatal("answering question 10 must complete the session")
	}
	if !strings.Contains(last.Question, "0.60") {
		t.Errorf("completion message missing mean score: %q", last.Question)
	}
	if !strings.Contains(last.Question, "Review base cases next.") {
		t.Errorf("completion message missing recommendation: %q", last.Question)
	}

	stored, _ := h.sessions.Get(ctx, sess.ID)
	if stored.Status != store.StatusCompleted {
		t.Errorf("session status = %q, want completed", stored.Status)
	}

	// Exactly 10 questions were asked; the final record is a summary
	// with no Bloom level.
	asked, _ := h.messages.AskedCount(ctx, sess.ID)
	if asked != 11 { // 10 questions + 1 completion record
		t.Errorf("assistant records = %d, want 11", asked)
	}
	final := h.messages.msgs[len(h.messages.msgs)-1]
	if final.Role != store.RoleAssistant || final.BloomLevel != "" {
		t.Errorf("final record = %+v, want assistant summary without bloom level", final)
	}

	// The completed session rejects further turns.
	if _, err := h.orch.RunTurn(ctx, sess.ID, "one more"); !errors.Is(err, store.ErrSessionCompleted) {
		t.Errorf("turn after completion: err = %v, want ErrSessionCompleted", err)
	}
}

func TestRunTurn_DiagnosticNeverCompletes(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	sess, _, err := h.orch.Start(ctx, plan.ModeDiagnostic, "recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := 0; i < 12; i++ {
		result, err := h.orch.RunTurn(ctx, sess.ID, "answer")
		if err != nil {
			t.Fatalf("turn %d: unexpected error: %v", i+1, err)
		}
		if result.Completed {
			t.Fatalf("diagnostic session completed at turn %d", i+1)
		}
	}
}

func TestRunTurn_DegradedScorerStillRecords(t *testing.T) {
	h := newHarness()
	h.scorer.result = agents.ScoreResult{
		Score:      0.0,
		Confidence: 0.0,
		BloomLevel: taxonomy.BloomUnderstand,
		Errors:     []string{"scorer call failed: provider down"},
	}
	ctx := context.Background()

	sess, _, err := h.orch.Start(ctx, plan.ModeDiagnostic, "recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := len(h.messages.msgs)

	result, err := h.orch.RunTurn(ctx, sess.ID, "garbled answer")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Error("degraded turn must surface the scorer failure")
	}
	if result.Score == nil || *result.Score != 0.0 {
		t.Errorf("Score = %v, want 0.0", result.Score)
	}

	// Exactly one user and one assistant record were appended.
	added := h.messages.msgs[before:]
	if len(added) != 2 || added[0].Role != store.RoleUser || added[1].Role != store.RoleAssistant {
		t.Fatalf("appended %d records, want user+assistant pair", len(added))
	}

	// The synthetic general skill was still credited.
	if _, ok := h.skills.recs[sess.ID+"/general"]; !ok {
		t.Error("expected a general skill record for a skill-less result")
	}
}

func TestRunTurn_LowScoreRetreatsLadders(t *testing.T) {
	h := newHarness()
	h.scorer.result = agents.ScoreResult{Score: 0.1, Confidence: 0.8, BloomLevel: taxonomy.BloomRemember, Skills: []string{"loops"}}
	ctx := context.Background()

	sess, first, err := h.orch.Start(ctx, plan.ModeExam, "loops")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.TargetBloom != taxonomy.BloomUnderstand {
		t.Fatalf("setup: first target = %q", first.TargetBloom)
	}

	result, err := h.orch.RunTurn(ctx, sess.ID, "I don't know")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.TargetBloom != taxonomy.BloomRemember {
		t.Errorf("TargetBloom = %q, want remember after 0.1", result.TargetBloom)
	}
	if result.TargetDifficulty != plan.DifficultyEasy {
		t.Errorf("TargetDifficulty = %q, want easy after 0.1", result.TargetDifficulty)
	}
}

func TestRunTurn_SummarizerFailureDegradesTelemetry(t *testing.T) {
	h := newHarness()
	h.summarizer.err = errors.New("summarizer down")
	ctx := context.Background()

	sess, result, err := h.orch.Start(ctx, plan.ModeDiagnostic, "recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Errors) == 0 {
		t.Error("expected a telemetry errors entry")
	}
	if result.Recommendations != "" {
		t.Errorf("Recommendations = %q, want empty", result.Recommendations)
	}

	// The turn itself still produced a question and the session stays usable.
	if result.Question == "" {
		t.Error("turn must still produce a question")
	}
	if _, err := h.orch.RunTurn(ctx, sess.ID, "next answer"); err != nil {
		t.Errorf("follow-up turn failed: %v", err)
	}
}

func TestRunTurn_SummarizerFailureOnCompletionIsFatal(t *testing.T) {
	h := newHarness()
	ctx := context.Background()

	sess, _, err := h.orch.Start(ctx, plan.ModeExam, "recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 9; i++ {
		if _, err := h.orch.RunTurn(ctx, sess.ID, "answer"); err != nil {
			t.Fatalf("turn %d: unexpected error: %v", i+1, err)
		}
	}

	h.summarizer.err = errors.New("summarizer down")
	if _, err := h.orch.RunTurn(ctx, sess.ID, "final answer"); err == nil {
		t.Fatal("completion without a recommendation must fail")
	}

	// Session was not flipped to completed.
	stored, _ := h.sessions.Get(ctx, sess.ID)
	if stored.Status != store.StatusActive {
		t.Errorf("session status = %q, want still active", stored.Status)
	}
}

func TestRunTurn_UnknownSession(t *testing.T) {
	h := newHarness()
	if _, err := h.orch.RunTurn(context.Background(), "no-such-session", "hi"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestRunTurn_SelectorFailureIsFatal(t *testing.T) {
	h := newHarness()
	h.selector.err = errors.New("db down")

	_, _, err := h.orch.Start(context.Background(), plan.ModeExam, "recursion")
	if err == nil {
		t.Fatal("expected selection failure to abort the turn")
	}
}

func TestRunTurn_SkillUpdatesUseScore(t *testing.T) {
	h := newHarness()
	h.scorer.result = agents.ScoreResult{Score: 1.0, Confidence: 1.0, BloomLevel: taxonomy.BloomApply, Skills: []string{"recursion"}}
	ctx := context.Background()

	sess, _, err := h.orch.Start(ctx, plan.ModeExam, "recursion")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := h.orch.RunTurn(ctx, sess.ID, "a perfect answer"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := h.skills.recs[sess.ID+"/recursion"]
	if rec == nil {
		t.Fatal("recursion skill record missing")
	}
	// 0.35*1.0 + 0.65*0.5 = 0.825
	if rec.EMAScore < 0.82 || rec.EMAScore > 0.83 {
		t.Errorf("EMAScore = %v, want 0.825", rec.EMAScore)
	}
	if rec.Theta <= 0 {
		t.Errorf("Theta = %v, want positive after a perfect answer", rec.Theta)
	}
}
