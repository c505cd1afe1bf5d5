package rag

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/tutorloop/tutorloop/internal/llm"
	"github.com/tutorloop/tutorloop/internal/store"
)

// fakeContentRepo is an in-memory ContentRepo.
type fakeContentRepo struct {
	docs    []store.ContentDocData
	addErr  error
	listErr error
}

func (f *fakeContentRepo) AddDocs(_ context.Context, docs []store.ContentDocData) error {
	if f.addErr != nil {
		return f.addErr
	}
	f.docs = append(f.docs, docs...)
	return nil
}

func (f *fakeContentRepo) DocsByTopic(_ context.Context, topic string) ([]store.ContentDocData, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []store.ContentDocData
	for _, d := range f.docs {
		if d.Topic == topic {
			out = append(out, d)
		}
	}
	return out, nil
}

func TestAdd_EmbedsAndStores(t *testing.T) {
	repo := &fakeContentRepo{}
	r := New(llm.NewMockProvider(), repo)

	err := r.Add(context.Background(), []Doc{
		{Topic: "recursion", Text: "A recursive function calls itself."},
		{Topic: "recursion", Skill: "base-cases", Level: "apply", Text: "Every recursion needs a base case."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.docs) != 2 {
		t.Fatalf("stored %d docs, want 2", len(repo.docs))
	}
	if len(repo.docs[0].Embedding) == 0 {
		t.Error("first doc has no embedding")
	}
	if repo.docs[0].Skill != "general" {
		t.Errorf("default skill = %q, want general", repo.docs[0].Skill)
	}
	if repo.docs[1].Level != "apply" {
		t.Errorf("level = %q, want apply", repo.docs[1].Level)
	}
}

func TestAdd_EmbeddingsUnsupportedStoresWithoutVectors(t *testing.T) {
	repo := &fakeContentRepo{}
	mock := llm.NewMockProvider()
	mock.EmbedErr = llm.ErrEmbeddingsUnsupported
	r := New(mock, repo)

	err := r.Add(context.Background(), []Doc{{Topic: "t", Text: "text"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.docs) != 1 || len(repo.docs[0].Embedding) != 0 {
		t.Fatalf("expected 1 doc without embedding, got %+v", repo.docs)
	}
}

func TestSearch_RanksBySimilarity(t *testing.T) {
	repo := &fakeContentRepo{docs: []store.ContentDocData{
		{Topic: "t", Text: "far", Embedding: []float32{0, 1, 0}},
		{Topic: "t", Text: "near", Embedding: []float32{1, 0.1, 0}},
		{Topic: "t", Text: "exact", Embedding: []float32{1, 0, 0}},
	}}

	// The mock embeds deterministically; steer it with a custom repo
	// whose vectors we compare against the query's mock embedding.
	mock := llm.NewMockProvider()
	queryVec, err := mock.Embed(context.Background(), []string{"query"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Align the "exact" doc with the query vector so ranking is known.
	repo.docs[2].Embedding = queryVec[0]

	r := New(mock, repo)
	got, err := r.Search(context.Background(), "t", "query", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2", len(got))
	}
	if got[0] != "exact" {
		t.Errorf("top result = %q, want exact", got[0])
	}
}

func TestSearch_FailuresYieldEmpty(t *testing.T) {
	tests := []struct {
		name string
		repo *fakeContentRepo
		emb  error
	}{
		{"repo failure", &fakeContentRepo{listErr: errors.New("db down")}, nil},
		{"no docs", &fakeContentRepo{}, nil},
		{"embed failure", &fakeContentRepo{docs: []store.ContentDocData{{Topic: "t", Text: "x", Embedding: []float32{1}}}}, errors.New("down")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := llm.NewMockProvider()
			mock.EmbedErr = tt.emb
			r := New(mock, tt.repo)

			got, err := r.Search(context.Background(), "t", "query", 3)
			if err != nil {
				t.Fatalf("search must not propagate failure, got: %v", err)
			}
			if len(got) != 0 {
				t.Errorf("expected empty result, got %v", got)
			}
		})
	}
}

func TestSearch_SkipsDocsWithoutEmbeddings(t *testing.T) {
	repo := &fakeContentRepo{docs: []store.ContentDocData{
		{Topic: "t", Text: "no vector"},
		{Topic: "t", Text: "has vector", Embedding: []float32{1, 1, 1}},
	}}
	r := New(llm.NewMockProvider(), repo)

	got, err := r.Search(context.Background(), "t", "query", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "has vector" {
		t.Errorf("got %v, want only the embedded doc", got)
	}
}

func TestCosine(t *testing.T) {
	if sim := cosine([]float32{1, 0}, []float32{1, 0}); math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("identical vectors: %v, want 1.0", sim)
	}
	if sim := cosine([]float32{1, 0}, []float32{0, 1}); math.Abs(sim) > 1e-9 {
		t.Errorf("orthogonal vectors: %v, want 0.0", sim)
	}
	if sim := cosine([]float32{1, 0}, []float32{1, 0, 0}); sim != 0 {
		t.Errorf("mismatched dims: %v, want 0", sim)
	}
	if sim := cosine([]float32{0, 0}, []float32{1, 1}); sim != 0 {
		t.Errorf("zero vector: %v, want 0", sim)
	}
}

func TestSeedFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	content := `[{"topic":"recursion","text":"A function calling itself."},{"topic":"recursion","skill":"base-cases","text":"Stop conditions end recursion."}]`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	repo := &fakeContentRepo{}
	r := New(llm.NewMockProvider(), repo)

	n, err := r.SeedFromFile(context.Background(), path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 2 || len(repo.docs) != 2 {
		t.Fatalf("seeded %d docs (stored %d), want 2", n, len(repo.docs))
	}
}

func TestSeedFromFile_RejectsMissingFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.json")
	if err := os.WriteFile(path, []byte(`[{"topic":"","text":"x"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	r := New(llm.NewMockProvider(), &fakeContentRepo{})
	if _, err := r.SeedFromFile(context.Background(), path); err == nil {
		t.Fatal("expected validation error")
	}
}
