// Package assess maintains per-skill proficiency estimates. Each skill
// carries two independent estimates: an exponential moving average of
// observed scores and a two-parameter-logistic IRT ability.
package assess

import (
	"context"
	"fmt"
	"math"

	"github.com/tutorloop/tutorloop/internal/store"
)

// Default 2PL item parameters used when a question carries none.
const (
	DefaultDiscrimination = 1.0
	DefaultItemDifficulty = 0.0
	DefaultLearningRate   = 0.1
)

// IRTParams describe one item for an ability update.
type IRTParams struct {
	Discrimination float64 // a
	Difficulty     float64 // b
	LearningRate   float64 // lr
}

// DefaultIRTParams returns the parameters used for untagged questions.
func DefaultIRTParams() IRTParams {
	return IRTParams{
		Discrimination: DefaultDiscrimination,
		Difficulty:     DefaultItemDifficulty,
		LearningRate:   DefaultLearningRate,
	}
}

// Estimator updates and aggregates skill proficiency records.
type Estimator struct {
	skills store.SkillRepo
}

// NewEstimator creates an Estimator backed by the given repository.
func NewEstimator(skills store.SkillRepo) *Estimator {
	return &Estimator{skills: skills}
}

// Update folds score into the skill's EMA with smoothing factor alpha.
// The record is created lazily on first reference. The alpha used is
// stored on the record so later reads see the last smoothing applied.
func (e *Estimator) Update(ctx context.Context, sessionID, skill string, score, alpha float64) (*store.SkillScore, error) {
	rec, err := e.skills.GetOrInit(ctx, sessionID, skill)
	if err != nil {
		return nil, fmt.Errorf("loading skill %q: %w", skill, err)
	}

	rec.EMAScore = alpha*score + (1-alpha)*rec.EMAScore
	rec.EMAAlpha = alpha

	if err := e.skills.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving skill %q: %w", skill, err)
	}
	return rec, nil
}

// UpdateAbility performs one gradient step of the 2PL IRT model. The
// predicted correctness is p = 1/(1+exp(-a*(theta-b))) and theta moves
// by lr*a*(score-p).
func (e *Estimator) UpdateAbility(ctx context.Context, sessionID, skill string, score float64, params IRTParams) (*store.SkillScore, error) {
	rec, err := e.skills.GetOrInit(ctx, sessionID, skill)
	if err != nil {
		return nil, fmt.Errorf("loading skill %q: %w", skill, err)
	}

	p := 1.0 / (1.0 + math.Exp(-params.Discrimination*(rec.Theta-params.Difficulty)))
	rec.Theta += params.LearningRate * params.Discrimination * (score - p)

	if err := e.skills.Save(ctx, rec); err != nil {
		return nil, fmt.Errorf("saving skill %q: %w", skill, err)
	}
	return rec, nil
}

// SkillSummary is one skill's view in a Profile.
type SkillSummary struct {
	Ema   float64 `json:"ema"`
	Theta float64 `json:"theta"`
}

// Profile returns the session's full skill map, computed on demand.
func (e *Estimator) Profile(ctx context.Context, sessionID string) (map[string]SkillSummary, error) {
	recs, err := e.skills.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("aggregating skills: %w", err)
	}

	profile := make(map[string]SkillSummary, len(recs))
	for _, rec := range recs {
		profile[rec.Skill] = SkillSummary{Ema: rec.EMAScore, Theta: rec.Theta}
	}
	return profile, nil
}

// EmaMap returns just the EMA component of the profile, used as
// summarizer input.
func (e *Estimator) EmaMap(ctx context.Context, sessionID string) (map[string]float64, error) {
	recs, err := e.skills.BySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("aggregating skills: %w", err)
	}

	emas := make(map[string]float64, len(recs))
	for _, rec := range recs {
		emas[rec.Skill] = rec.EMAScore
	}
	return emas, nil
}
