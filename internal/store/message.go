package store

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/ent"
	entmessage "github.com/tutorloop/tutorloop/ent/message"
)

type messageRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *messageRepo) Append(ctx context.Context, m *Message) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.Message.Create().
		SetSeq(seqNum).
		SetSessionID(m.SessionID).
		SetRole(m.Role).
		SetContent(m.Content)

	if m.BloomLevel != "" {
		builder = builder.SetBloomLevel(m.BloomLevel)
	}
	if m.SoloLevel != "" {
		builder = builder.SetSoloLevel(m.SoloLevel)
	}
	if m.Difficulty != "" {
		builder = builder.SetDifficulty(m.Difficulty)
	}
	if m.Score != nil {
		builder = builder.SetScore(*m.Score)
	}
	if m.Confidence != nil {
		builder = builder.SetConfidence(*m.Confidence)
	}
	if m.Payload != nil {
		builder = builder.SetPayload(m.Payload)
	}

	row, err := builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("append message: %w", err)
	}
	m.Seq = row.Seq
	m.TS = row.Ts
	return nil
}

func (r *messageRepo) History(ctx context.Context, sessionID string, limit int) ([]*Message, error) {
	q := r.client.Message.Query().
		Where(entmessage.SessionID(sessionID))

	if limit > 0 {
		// Take the newest N, then restore append order.
		rows, err := q.
			Order(ent.Desc(entmessage.FieldSeq)).
			Limit(limit).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("query history: %w", err)
		}
		out := make([]*Message, len(rows))
		for i, row := range rows {
			out[len(rows)-1-i] = messageFromRow(row)
		}
		return out, nil
	}

	rows, err := q.Order(ent.Asc(entmessage.FieldSeq)).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	out := make([]*Message, len(rows))
	for i, row := range rows {
		out[i] = messageFromRow(row)
	}
	return out, nil
}

func (r *messageRepo) AskedCount(ctx context.Context, sessionID string) (int, error) {
	n, err := r.client.Message.Query().
		Where(
			entmessage.SessionID(sessionID),
			entmessage.Role(RoleAssistant),
		).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count asked: %w", err)
	}
	return n, nil
}

func (r *messageRepo) LastQuestion(ctx context.Context, sessionID string) (*Message, error) {
	row, err := r.client.Message.Query().
		Where(
			entmessage.SessionID(sessionID),
			entmessage.Role(RoleAssistant),
		).
		Order(ent.Desc(entmessage.FieldSeq)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query last question: %w", err)
	}
	return messageFromRow(row), nil
}

func (r *messageRepo) MeanScore(ctx context.Context, sessionID string) (float64, error) {
	rows, err := r.client.Message.Query().
		Where(
			entmessage.SessionID(sessionID),
			entmessage.Role(RoleUser),
			entmessage.ScoreNotNil(),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("query scores: %w", err)
	}
	if len(rows) == 0 {
		return 0.0, nil
	}

	var sum float64
	for _, row := range rows {
		sum += *row.Score
	}
	return sum / float64(len(rows)), nil
}

func messageFromRow(row *ent.Message) *Message {
	return &Message{
		Seq:        row.Seq,
		SessionID:  row.SessionID,
		Role:       row.Role,
		Content:    row.Content,
		BloomLevel: row.BloomLevel,
		SoloLevel:  row.SoloLevel,
		Difficulty: row.Difficulty,
		Score:      row.Score,
		Confidence: row.Confidence,
		Payload:    row.Payload,
		TS:         row.Ts,
	}
}
