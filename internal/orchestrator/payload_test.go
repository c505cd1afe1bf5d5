package orchestrator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorloop/tutorloop/internal/agents"
	"github.com/tutorloop/tutorloop/internal/plan"
	"github.com/tutorloop/tutorloop/internal/store"
	"github.com/tutorloop/tutorloop/internal/taxonomy"
)

// Deep assertions on the persisted turn records and the result payload.

func TestTurnRecordPayload(t *testing.T) {
	h := newHarness()
	h.scorer.result = agents.ScoreResult{
		Score:      0.9,
		Confidence: 0.8,
		BloomLevel: taxonomy.BloomAnalyze,
		Errors:     []string{"minor: missed the edge case"},
		Skills:     []string{"recursion", "base-cases"},
	}
	ctx := context.Background()

	sess, _, err := h.orch.Start(ctx, plan.ModeExam, "recursion")
	require.NoError(t, err)

	result, err := h.orch.RunTurn(ctx, sess.ID, "a detailed answer")
	require.NoError(t, err)

	// The user record carries scoring fields and the structured payload.
	var userRec *store.Message
	for _, m := range h.messages.msgs {
		if m.Role == store.RoleUser && m.Score != nil {
			userRec = m
		}
	}
	require.NotNil(t, userRec, "scored user record missing")
	assert.Equal(t, "a detailed answer", userRec.Content)
	assert.Equal(t, 0.9, *userRec.Score)
	assert.Equal(t, 0.8, *userRec.Confidence)
	assert.Equal(t, string(taxonomy.DefaultBloom), userRec.BloomLevel, "tagger default expected")
	assert.Equal(t, string(taxonomy.DefaultSOLO), userRec.SoloLevel)

	require.NotNil(t, userRec.Payload)
	assert.Equal(t, 0.9, userRec.Payload["score"])
	assert.Equal(t, "analyze", userRec.Payload["bloom_level"])
	assert.Equal(t, []string{"recursion", "base-cases"}, userRec.Payload["skills"])

	// The assistant record carries the planned targets.
	last := h.messages.msgs[len(h.messages.msgs)-1]
	require.Equal(t, store.RoleAssistant, last.Role)
	assert.Equal(t, string(taxonomy.BloomApply), last.BloomLevel, "0.9 advances from understand")
	assert.Equal(t, string(plan.DifficultyHard), last.Difficulty, "0.9 advances from medium")

	// The outward payload mirrors it.
	require.NotNil(t, result.Score)
	assert.Equal(t, 0.9, *result.Score)
	assert.Equal(t, taxonomy.BloomApply, result.TargetBloom)
	assert.Equal(t, plan.DifficultyHard, result.TargetDifficulty)
	assert.Equal(t, []string{"minor: missed the edge case"}, result.Errors)
	assert.Equal(t, "Review base cases next.", result.Recommendations)

	// Both named skills got proficiency records.
	require.Contains(t, h.skills.recs, sess.ID+"/recursion")
	require.Contains(t, h.skills.recs, sess.ID+"/base-cases")
	assert.NotContains(t, h.skills.recs, sess.ID+"/general")

	profile := result.Profile
	require.Len(t, profile, 2)
	assert.InDelta(t, 0.64, profile["recursion"].Ema, 0.001, "0.35*0.9 + 0.65*0.5")
}
