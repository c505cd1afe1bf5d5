package store

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/ent"
	entsession "github.com/tutorloop/tutorloop/ent/session"
)

type sessionRepo struct {
	client *ent.Client
}

func (r *sessionRepo) Create(ctx context.Context, s *Session) error {
	builder := r.client.Session.Create().
		SetID(s.ID).
		SetMode(s.Mode).
		SetTopic(s.Topic).
		SetStatus(StatusActive)

	if s.MaxQuestions != nil {
		builder = builder.SetMaxQuestions(*s.MaxQuestions)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	s.Status = row.Status
	s.StartedAt = row.StartedAt
	return nil
}

func (r *sessionRepo) Get(ctx context.Context, id string) (*Session, error) {
	row, err := r.client.Session.Query().
		Where(entsession.ID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get session: %w", err)
	}
	return sessionFromRow(row), nil
}

func (r *sessionRepo) Complete(ctx context.Context, id string) error {
	n, err := r.client.Session.Update().
		Where(
			entsession.ID(id),
			entsession.Status(StatusActive),
		).
		SetStatus(StatusCompleted).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session: %w", err)
	}
	if n == 0 {
		return ErrSessionCompleted
	}
	return nil
}

func (r *sessionRepo) List(ctx context.Context) ([]*Session, error) {
	rows, err := r.client.Session.Query().
		Order(ent.Desc(entsession.FieldStartedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	out := make([]*Session, len(rows))
	for i, row := range rows {
		out[i] = sessionFromRow(row)
	}
	return out, nil
}

func sessionFromRow(row *ent.Session) *Session {
	return &Session{
		ID:           row.ID,
		Mode:         row.Mode,
		Topic:        row.Topic,
		Status:       row.Status,
		MaxQuestions: row.MaxQuestions,
		StartedAt:    row.StartedAt,
	}
}
