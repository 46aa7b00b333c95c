// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package devserver

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/doc-viewer/pkg/types"
)

// fixtureFile is the YAML layout of a seed file.
type fixtureFile struct {
	Documents []types.DocumentDetail `yaml:"documents"`
}

// LoadFixtures reads a seed file. Documents without an id get a random
// UUID.
func LoadFixtures(path string) ([]types.DocumentDetail, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading fixtures: %w", err)
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing fixtures %s: %w", path, err)
	}
	for i := range f.Documents {
		if f.Documents[i].ID == "" {
			f.Documents[i].ID = uuid.NewString()
		}
	}
	return f.Documents, nil
}

// Seed upserts docs into s, reporting each one to w.
func Seed(ctx context.Context, s *Store, docs []types.DocumentDetail, w io.Writer) (int, error) {
	n := 0
	for _, doc := range docs {
		select {
		case <-ctx.Done():
			return n, ctx.Err()
		default:
		}
		if err := s.Upsert(ctx, doc); err != nil {
			return n, err
		}
		fmt.Fprintf(w, "seeded  %s\n", doc.ID)
		n++
	}
	return n, nil
}
