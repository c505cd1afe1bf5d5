// Package rag grounds question generation in stored reference
// material. Documents are embedded once on ingest; search embeds the
// query and ranks stored documents by cosine similarity.
package rag

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/store"
)

// Retriever indexes and searches topic-scoped content documents.
type Retriever struct {
	provider llm.Provider
	docs     store.ContentRepo
}

// New creates a Retriever over the given content store.
func New(provider llm.Provider, docs store.ContentRepo) *Retriever {
	return &Retriever{provider: provider, docs: docs}
}

// Doc is one ingestible reference document.
type Doc struct {
	Topic string `json:"topic"`
	Skill string `json:"skill"`
	Level string `json:"level"`
	Text  string `json:"text"`
}

// Add embeds and stores the documents. Providers without an embedding
// API store the documents without vectors; they are then invisible to
// Search but still listable.
func (r *Retriever) Add(ctx context.Context, docs []Doc) error {
	if len(docs) == 0 {
		return nil
	}

	texts := make([]string, len(docs))
	for i, d := range docs {
		texts[i] = d.Text
	}

	vecs, err := r.provider.Embed(ctx, texts)
	if errors.Is(err, llm.ErrEmbeddingsUnsupported) {
		vecs = make([][]float32, len(docs))
	} else if err != nil {
		return fmt.Errorf("embedding documents: %w", err)
	} else if len(vecs) != len(docs) {
		return fmt.Errorf("embedding documents: got %d vectors for %d texts", len(vecs), len(docs))
	}

	rows := make([]store.ContentDocData, len(docs))
	for i, d := range docs {
		skill := d.Skill
		if skill == "" {
			skill = "general"
		}
		level := d.Level
		if level == "" {
			level = "remember"
		}
		rows[i] = store.ContentDocData{
			Topic:     d.Topic,
			Skill:     skill,
			Level:     level,
			Text:      d.Text,
			Embedding: vecs[i],
		}
	}
	return r.docs.AddDocs(ctx, rows)
}

// Search returns the k most similar document texts for the query
// within a topic. Any failure yields an empty result rather than an
// error context for the caller to handle: retrieval is advisory.
func (r *Retriever) Search(ctx context.Context, topic, query string, k int) ([]string, error) {
	if k <= 0 {
		return nil, nil
	}

	docs, err := r.docs.DocsByTopic(ctx, topic)
	if err != nil || len(docs) == 0 {
		return nil, nil
	}

	vecs, err := r.provider.Embed(ctx, []string{query})
	if err != nil || len(vecs) != 1 {
		return nil, nil
	}
	queryVec := vecs[0]

	type scored struct {
		text string
		sim  float64
	}
	ranked := make([]scored, 0, len(docs))
	for _, d := range docs {
		if len(d.Embedding) == 0 {
			continue
		}
		ranked = append(ranked, scored{text: d.Text, sim: cosine(queryVec, d.Embedding)})
	}

	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].sim > ranked[j].sim })

	if k > len(ranked) {
		k = len(ranked)
	}
	out := make([]string, k)
	for i := 0; i < k; i++ {
		out[i] = ranked[i].text
	}
	return out, nil
}

// cosine returns the cosine similarity of two vectors, 0 when the
// dimensions differ or either vector is zero.
func cosine(a, b []float32) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
