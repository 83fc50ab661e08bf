package taxonomy

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileProvider_Snapshot(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	payload := `[
		{"name": "Electronics", "slug": "electronics"},
		{"name": "Smartphones", "slug": "smartphones", "parentId": "electronics"}
	]`
	require.NoError(t, os.WriteFile(path, []byte(payload), 0o644))

	categories, err := NewFileProvider(path).Snapshot(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "Electronics", categories[0].Name)
	assert.Equal(t, "electronics", categories[1].ParentID)
}

func TestFileProvider_MissingFile(t *testing.T) {
	_, err := NewFileProvider(filepath.Join(t.TempDir(), "nope.json")).Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read taxonomy snapshot")
}

func TestFileProvider_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "categories.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewFileProvider(path).Snapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse taxonomy snapshot")
}
