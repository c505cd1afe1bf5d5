package store

import (
	"context"
	"fmt"

	"github.com/tutorloop/tutorloop/ent"
	entdoc "github.com/tutorloop/tutorloop/ent/contentdoc"
)

type contentRepo struct {
	client *ent.Client
}

func (r *contentRepo) AddDocs(ctx context.Context, docs []ContentDocData) error {
	builders := make([]*ent.ContentDocCreate, len(docs))
	for i, d := range docs {
		b := r.client.ContentDoc.Create().
			SetTopic(d.Topic).
			SetText(d.Text)
		if d.Skill != "" {
			b = b.SetSkill(d.Skill)
		}
		if d.Level != "" {
			b = b.SetLevel(d.Level)
		}
		if d.Embedding != nil {
			b = b.SetEmbedding(d.Embedding)
		}
		builders[i] = b
	}
	if _, err := r.client.ContentDoc.CreateBulk(builders...).Save(ctx); err != nil {
		return fmt.Errorf("add content docs: %w", err)
	}
	return nil
}

func (r *contentRepo) DocsByTopic(ctx context.Context, topic string) ([]ContentDocData, error) {
	rows, err := r.client.ContentDoc.Query().
		Where(entdoc.Topic(topic)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query content docs: %w", err)
	}
	out := make([]ContentDocData, len(rows))
	for i, row := range rows {
		out[i] = ContentDocData{
			Topic:     row.Topic,
			Skill:     row.Skill,
			Level:     row.Level,
			Text:      row.Text,
			Embedding: row.Embedding,
		}
	}
	return out, nil
}
