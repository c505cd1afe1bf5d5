package store

import (
	"context"
	"errors"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is only meaningful with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := openTestStore(t)
	repo := s.SessionRepo()
	ctx := context.Background()

	sess := &Session{
		ID:        "sess-1",
		Mode:      "exam",
		Topic:     "recursion",
		Status:    StatusActive,
		StartedAt: time.Now(),
	}
	if err := repo.Create(ctx, sess); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.Topic != "recursion" || got.Status != StatusActive {
		t.Fatalf("got %+v", got)
	}

	if err := repo.Complete(ctx, "sess-1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// Completing again is rejected: the transition happens once.
	if err := repo.Complete(ctx, "sess-1"); !errors.Is(err, ErrSessionCompleted) {
		t.Fatalf("second complete: err = %v, want ErrSessionCompleted", err)
	}

	got, _ = repo.Get(ctx, "sess-1")
	if got.Status != StatusCompleted {
		t.Errorf("status = %q, want completed", got.Status)
	}

	// An unknown session reads as nil, not an error.
	missing, err := repo.Get(ctx, "no-such")
	if err != nil || missing != nil {
		t.Errorf("Get(missing) = %+v, %v", missing, err)
	}
}

func TestMessageOrderingAndDerivedState(t *testing.T) {
	s := openTestStore(t)
	repo := s.MessageRepo()
	ctx := context.Background()

	score1, score2 := 0.4, 0.8
	msgs := []*Message{
		{SessionID: "sess-1", Role: RoleUser, Content: "opener", TS: time.Now()},
		{SessionID: "sess-1", Role: RoleAssistant, Content: "q1", BloomLevel: "understand", Difficulty: "medium", TS: time.Now()},
		{SessionID: "sess-1", Role: RoleUser, Content: "a1", Score: &score1, TS: time.Now()},
		{SessionID: "sess-1", Role: RoleAssistant, Content: "q2", BloomLevel: "understand", Difficulty: "medium", TS: time.Now()},
		{SessionID: "sess-1", Role: RoleUser, Content: "a2", Score: &score2, TS: time.Now()},
	}
	for _, m := range msgs {
		if err := repo.Append(ctx, m); err != nil {
			t.Fatalf("append %q: %v", m.Content, err)
		}
	}

	history, err := repo.History(ctx, "sess-1", 0)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 5 {
		t.Fatalf("history length = %d, want 5", len(history))
	}
	for i := 1; i < len(history); i++ {
		if history[i].Seq <= history[i-1].Seq {
			t.Fatal("history not in ascending sequence order")
		}
	}
	if history[0].Content != "opener" || history[4].Content != "a2" {
		t.Errorf("unexpected ordering: first %q last %q", history[0].Content, history[4].Content)
	}

	// Limited history keeps the most recent entries, still ascending.
	tail, err := repo.History(ctx, "sess-1", 2)
	if err != nil {
		t.Fatalf("history limit: %v", err)
	}
	if len(tail) != 2 || tail[0].Content != "q2" || tail[1].Content != "a2" {
		t.Errorf("tail = %v", tail)
	}

	asked, err := repo.AskedCount(ctx, "sess-1")
	if err != nil {
		t.Fatalf("asked count: %v", err)
	}
	if asked != 2 {
		t.Errorf("asked = %d, want 2", asked)
	}

	last, err := repo.LastQuestion(ctx, "sess-1")
	if err != nil {
		t.Fatalf("last question: %v", err)
	}
	if last == nil || last.Content != "q2" {
		t.Errorf("last question = %+v, want q2", last)
	}

	mean, err := repo.MeanScore(ctx, "sess-1")
	if err != nil {
		t.Fatalf("mean score: %v", err)
	}
	if mean < 0.599 || mean > 0.601 {
		t.Errorf("mean = %v, want 0.6", mean)
	}

	// A fresh session has no last question and mean 0.
	if last, _ := repo.LastQuestion(ctx, "other"); last != nil {
		t.Errorf("fresh session last question = %+v", last)
	}
	if mean, _ := repo.MeanScore(ctx, "other"); mean != 0.0 {
		t.Errorf("fresh session mean = %v", mean)
	}
}

func TestSkillGetOrInitDefaults(t *testing.T) {
	s := openTestStore(t)
	repo := s.SkillRepo()
	ctx := context.Background()

	rec, err := repo.GetOrInit(ctx, "sess-1", "recursion")
	if err != nil {
		t.Fatalf("get or init: %v", err)
	}
	if rec.EMAScore != 0.5 || rec.EMAAlpha != 0.3 || rec.Theta != 0.0 {
		t.Errorf("defaults = %+v", rec)
	}

	rec.EMAScore = 0.75
	rec.EMAAlpha = 0.35
	rec.Theta = 0.12
	if err := repo.Save(ctx, rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	again, err := repo.GetOrInit(ctx, "sess-1", "recursion")
	if err != nil {
		t.Fatalf("get or init again: %v", err)
	}
	if again.EMAScore != 0.75 || again.Theta != 0.12 {
		t.Errorf("reloaded = %+v", again)
	}

	// Another session's records stay separate.
	other, _ := repo.GetOrInit(ctx, "sess-2", "recursion")
	if other.EMAScore != 0.5 {
		t.Errorf("session isolation broken: %+v", other)
	}

	bySession, err := repo.BySession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("by session: %v", err)
	}
	if len(bySession) != 1 {
		t.Errorf("sess-1 has %d records, want 1", len(bySession))
	}
}

func TestBankQuestionAt(t *testing.T) {
	s := openTestStore(t)
	repo := s.BankRepo()
	ctx := context.Background()

	if err := repo.EnsureTopic(ctx, "recursion"); err != nil {
		t.Fatalf("ensure topic: %v", err)
	}
	// Ensuring twice is a no-op.
	if err := repo.EnsureTopic(ctx, "recursion"); err != nil {
		t.Fatalf("ensure topic again: %v", err)
	}

	for _, text := range []string{"q0", "q1", "q2"} {
		if err := repo.AddQuestion(ctx, &BankEntry{Topic: "recursion", Text: text}); err != nil {
			t.Fatalf("add %q: %v", text, err)
		}
	}

	for i, want := range []string{"q0", "q1", "q2"} {
		got, ok, err := repo.QuestionAt(ctx, "recursion", i)
		if err != nil {
			t.Fatalf("question at %d: %v", i, err)
		}
		if !ok || got != want {
			t.Errorf("QuestionAt(%d) = %q, %v", i, got, ok)
		}
	}

	// Exhaustion and unknown topics are normal fall-through signals.
	if _, ok, err := repo.QuestionAt(ctx, "recursion", 3); err != nil || ok {
		t.Errorf("exhausted bank: ok=%v err=%v", ok, err)
	}
	if _, ok, err := repo.QuestionAt(ctx, "unknown", 0); err != nil || ok {
		t.Errorf("unknown topic: ok=%v err=%v", ok, err)
	}
}

func TestLLMEventAppendAndUsage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "score", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "score", InputTokens: 120, OutputTokens: 60, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "generate", InputTokens: 80, OutputTokens: 90, LatencyMs: 300, Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	recent, err := repo.QueryLLMEvents(ctx, 10)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(recent) != 3 {
		t.Fatalf("got %d events, want 3", len(recent))
	}
	// Newest first.
	if recent[0].Purpose != "generate" {
		t.Errorf("first event purpose = %q, want generate", recent[0].Purpose)
	}

	one, err := repo.GetLLMEvent(ctx, recent[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if one == nil || one.ErrorMessage != "rate limited" {
		t.Errorf("event = %+v", one)
	}

	usage, err := repo.UsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	byPurpose := make(map[string]LLMUsage)
	for _, u := range usage {
		byPurpose[u.Purpose] = u
	}
	score := byPurpose["score"]
	if score.Calls != 2 || score.InputTokens != 220 || score.OutputTokens != 110 {
		t.Errorf("score usage = %+v", score)
	}
	if score.AvgLatencyMs != 300 {
		t.Errorf("score avg latency = %d, want 300", score.AvgLatencyMs)
	}
}

func TestContentDocs(t *testing.T) {
	s := openTestStore(t)
	repo := s.ContentRepo()
	ctx := context.Background()

	err := repo.AddDocs(ctx, []ContentDocData{
		{Topic: "recursion", Skill: "general", Level: "remember", Text: "doc one", Embedding: []float32{0.1, 0.2}},
		{Topic: "recursion", Skill: "base-cases", Level: "apply", Text: "doc two", Embedding: []float32{0.3, 0.4}},
		{Topic: "sorting", Skill: "general", Level: "remember", Text: "other topic"},
	})
	if err != nil {
		t.Fatalf("add docs: %v", err)
	}

	docs, err := repo.DocsByTopic(ctx, "recursion")
	if err != nil {
		t.Fatalf("docs by topic: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if len(docs[0].Embedding) != 2 {
		t.Errorf("embedding not round-tripped: %+v", docs[0])
	}
}
