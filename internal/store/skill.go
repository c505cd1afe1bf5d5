package store

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/ent"
	entskill "github.com/tutorloop/tutorloop/ent/skillscore"
)

type skillRepo struct {
	client *ent.Client
}

func (r *skillRepo) GetOrInit(ctx context.Context, sessionID, skill string) (*SkillScore, error) {
	row, err := r.client.SkillScore.Query().
		Where(
			entskill.SessionID(sessionID),
			entskill.Skill(skill),
		).
		Only(ctx)
	if err == nil {
		return skillFromRow(row), nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query skill score: %w", err)
	}

	// Lazy create with schema defaults (EMA 0.5, alpha 0.3, theta 0.0).
	row, err = r.client.SkillScore.Create().
		SetSessionID(sessionID).
		SetSkill(skill).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create skill score: %w", err)
	}
	return skillFromRow(row), nil
}

func (r *skillRepo) Save(ctx context.Context, rec *SkillScore) error {
	n, err := r.client.SkillScore.Update().
		Where(
			entskill.SessionID(rec.SessionID),
			entskill.Skill(rec.Skill),
		).
		SetEmaScore(rec.EMAScore).
		SetEmaAlpha(rec.EMAAlpha).
		SetIrtTheta(rec.Theta).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save skill score: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("skill score %s/%s not found", rec.SessionID, rec.Skill)
	}
	return nil
}

func (r *skillRepo) BySession(ctx context.Context, sessionID string) ([]*SkillScore, error) {
	rows, err := r.client.SkillScore.Query().
		Where(entskill.SessionID(sessionID)).
		Order(ent.Asc(entskill.FieldSkill)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query skill scores: %w", err)
	}
	out := make([]*SkillScore, len(rows))
	for i, row := range rows {
		out[i] = skillFromRow(row)
	}
	return out, nil
}

func skillFromRow(row *ent.SkillScore) *SkillScore {
	return &SkillScore{
		SessionID: row.SessionID,
		Skill:     row.Skill,
		EMAScore:  row.EmaScore,
		EMAAlpha:  row.EmaAlpha,
		Theta:     row.IrtTheta,
	}
}
