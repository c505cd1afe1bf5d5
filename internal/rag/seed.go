package rag

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
)

// SeedFromFile ingests documents from a JSON file containing an array
// of Doc objects. Returns the number of documents added.
func (r *Retriever) SeedFromFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading seed file: %w", err)
	}

	var docs []Doc
	if err := json.Unmarshal(data, &docs); err != nil {
		return 0, fmt.Errorf("parsing seed file: %w", err)
	}

	for i, d := range docs {
		if d.Topic == "" || d.Text == "" {
			return 0, fmt.Errorf("seed entry %d: topic and text are required", i)
		}
	}

	if err := r.Add(ctx, docs); err != nil {
		return 0, err
	}
	return len(docs), nil
}
