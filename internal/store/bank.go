package store

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/ent"
	entbank "github.com/tutorloop/tutorloop/ent/bankquestion"
	enttopic "github.com/tutorloop/tutorloop/ent/topic"
)

type bankRepo struct {
	client *ent.Client
}

func (r *bankRepo) EnsureTopic(ctx context.Context, name string) error {
	exists, err := r.client.Topic.Query().
		Where(enttopic.Name(name)).
		Exist(ctx)
	if err != nil {
		return fmt.Errorf("query topic: %w", err)
	}
	if exists {
		return nil
	}
	if _, err := r.client.Topic.Create().SetName(name).Save(ctx); err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *bankRepo) AddQuestion(ctx context.Context, e *BankEntry) error {
	if err := r.EnsureTopic(ctx, e.Topic); err != nil {
		return err
	}

	// Append at the end of the topic's ordered bank.
	n, err := r.client.BankQuestion.Query().
		Where(entbank.Topic(e.Topic)).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("count bank questions: %w", err)
	}

	builder := r.client.BankQuestion.Create().
		SetTopic(e.Topic).
		SetPosition(n).
		SetText(e.Text)

	if e.IdealAnswer != "" {
		builder = builder.SetIdealAnswer(e.IdealAnswer)
	}
	if e.BloomHint != "" {
		builder = builder.SetBloomHint(e.BloomHint)
	}
	if e.Difficulty != "" {
		builder = builder.SetDifficulty(e.Difficulty)
	}

	if _, err := builder.Save(ctx); err != nil {
		return fmt.Errorf("add bank question: %w", err)
	}
	e.Position = n
	return nil
}

func (r *bankRepo) QuestionAt(ctx context.Context, topic string, idx int) (string, bool, error) {
	row, err := r.client.BankQuestion.Query().
		Where(
			entbank.Topic(topic),
			entbank.Position(idx),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("query bank question: %w", err)
	}
	return row.Text, true, nil
}

func (r *bankRepo) Topics(ctx context.Context) ([]string, error) {
	rows, err := r.client.Topic.Query().
		Order(ent.Asc(enttopic.FieldName)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	out := make([]string, len(rows))
	for i, row := range rows {
		out[i] = row.Name
	}
	return out, nil
}

func (r *bankRepo) Questions(ctx context.Context, topic string) ([]*BankEntry, error) {
	rows, err := r.client.BankQuestion.Query().
		Where(entbank.Topic(topic)).
		Order(ent.Asc(entbank.FieldPosition)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list bank questions: %w", err)
	}
	out := make([]*BankEntry, len(rows))
	for i, row := range rows {
		out[i] = &BankEntry{
			Topic:       row.Topic,
			Position:    row.Position,
			Text:        row.Text,
			IdealAnswer: row.IdealAnswer,
			BloomHint:   row.BloomHint,
			Difficulty:  row.Difficulty,
		}
	}
	return out, nil
}
