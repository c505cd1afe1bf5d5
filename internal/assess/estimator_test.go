package assess

import (
	"context"
	"math"
	"testing"

	"github.com/tutorloop/tutorloop/internal/store"
)

// fakeSkillRepo is an in-memory SkillRepo keyed by (session, skill).
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
	rec := &store.SkillScore{
		SessionID: sessionID,
		Skill:     skill,
		EMAScore:  0.5,
		EMAAlpha:  0.3,
		Theta:     0.0,
	}
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

func TestUpdate_LazyInitDefaults(t *testing.T) {
	e := NewEstimator(newFakeSkillRepo())

	rec, err := e.Update(context.Background(), "s1", "recursion", 1.0, 0.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// 0.3*1.0 + 0.7*0.5 = 0.65 from the 0.5 default.
	if math.Abs(rec.EMAScore-0.65) > 1e-9 {
		t.Errorf("EMAScore = %v, want 0.65", rec.EMAScore)
	}
	if rec.EMAAlpha != 0.3 {
		t.Errorf("EMAAlpha = %v, want 0.3", rec.EMAAlpha)
	}
}

func TestUpdate_AlphaZeroIsIdempotent(t *testing.T) {
	repo := newFakeSkillRepo()
	e := NewEstimator(repo)
	ctx := context.Background()

	first, err := e.Update(ctx, "s1", "loops", 0.9, 0.3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	second, err := e.Update(ctx, "s1", "loops", 0.0, 0.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if second.EMAScore != first.EMAScore {
		t.Errorf("alpha=0 changed EMAScore from %v to %v", first.EMAScore, second.EMAScore)
	}
	if second.EMAAlpha != 0.0 {
		t.Errorf("EMAAlpha = %v, want last-used 0.0", second.EMAAlpha)
	}
}

func TestUpdate_ConvergesTowardOne(t *testing.T) {
	e := NewEstimator(newFakeSkillRepo())
	ctx := context.Background()

	prev := 0.5
	for i := 0; i < 50; i++ {
		rec, err := e.Update(ctx, "s1", "sorting", 1.0, 0.3)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.EMAScore <= prev {
			t.Fatalf("iteration %d: EMAScore %v did not increase from %v", i, rec.EMAScore, prev)
		}
		if rec.EMAScore > 1.0 {
			t.Fatalf("iteration %d: EMAScore %v exceeded 1.0", i, rec.EMAScore)
		}
		prev = rec.EMAScore
	}
	if prev < 0.999 {
		t.Errorf("after 50 updates EMAScore = %v, expected near 1.0", prev)
	}
}

func TestUpdateAbility_DefaultParams(t *testing.T) {
	e := NewEstimator(newFakeSkillRepo())

	rec, err := e.UpdateAbility(context.Background(), "s1", "recursion", 1.0, DefaultIRTParams())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// theta=0, a=1, b=0 → p=0.5; step = 0.1*1*(1.0-0.5) = 0.05.
	if math.Abs(rec.Theta-0.05) > 1e-9 {
		t.Errorf("Theta = %v, want 0.05", rec.Theta)
	}
}

func TestUpdateAbility_PerfectScoreRaisesTheta(t *testing.T) {
	e := NewEstimator(newFakeSkillRepo())
	ctx := context.Background()

	prev := 0.0
	for i := 0; i < 20; i++ {
		rec, err := e.UpdateAbility(ctx, "s1", "graphs", 1.0, DefaultIRTParams())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.Theta <= prev {
			t.Fatalf("iteration %d: Theta %v did not increase from %v", i, rec.Theta, prev)
		}
		prev = rec.Theta
	}
}

func TestProfile_SessionIsolation(t *testing.T) {
	repo := newFakeSkillRepo()
	e := NewEstimator(repo)
	ctx := context.Background()

	if _, err := e.Update(ctx, "session-a", "recursion", 0.9, 0.35); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := e.Update(ctx, "session-b", "loops", 0.2, 0.35); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	profileA, err := e.Profile(ctx, "session-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(profileA) != 1 {
		t.Fatalf("expected 1 skill in session-a, got %d", len(profileA))
	}
	if _, ok := profileA["loops"]; ok {
		t.Error("session-b skill leaked into session-a profile")
	}
}

func TestEmaMap(t *testing.T) {
	e := NewEstimator(newFakeSkillRepo())
	ctx := context.Background()

	if _, err := e.Update(ctx, "s1", "recursion", 1.0, 0.35); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	emas, err := e.EmaMap(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := 0.35*1.0 + 0.65*0.5
	if math.Abs(emas["recursion"]-want) > 1e-9 {
		t.Errorf("emas[recursion] = %v, want %v", emas["recursion"], want)
	}
}
