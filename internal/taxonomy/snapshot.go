// Package taxonomy supplies read-only snapshots of the existing category
// tree for matching. Persistence of categories belongs to the marketplace
// application, not to this tool.
package taxonomy

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"taxo/pkg/matching"
)

// SnapshotProvider yields the current categories. Implementations must
// return a snapshot that stays stable for the duration of one matching
// operation.
type SnapshotProvider interface {
	Snapshot(ctx context.Context) ([]matching.Category, error)
}

// FileProvider reads the snapshot from a JSON file holding an array of
// category objects ({"name", "slug", "parentId"}).
type FileProvider struct {
	Path string
}

func NewFileProvider(path string) *FileProvider {
	return &FileProvider{Path: path}
}

func (p *FileProvider) Snapshot(ctx context.Context) ([]matching.Category, error) {
	data, err := os.ReadFile(p.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to read taxonomy snapshot %s: %w", p.Path, err)
	}

	var categories []matching.Category
	if err := json.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("failed to parse taxonomy snapshot %s: %w", p.Path, err)
	}
	return categories, nil
}

// StaticProvider serves a fixed in-memory snapshot. Used in tests and as
// a fallback when no snapshot file is configured.
type StaticProvider struct {
	Categories []matching.Category
}

func NewStaticProvider(categories []matching.Category) *StaticProvider {
	return &StaticProvider{Categories: categories}
}

func (p *StaticProvider) Snapshot(ctx context.Context) ([]matching.Category, error) {
	return p.Categories, nil
}
