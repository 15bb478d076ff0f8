package bleve

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexAndSearch(t *testing.T) {
	index, err := NewIndex(filepath.Join(t.TempDir(), "test.bleve"))
	require.NoError(t, err)
	defer index.Close()

	require.NoError(t, index.IndexDocument("1", "the quick brown fox"))
	require.NoError(t, index.IndexDocument("2", "a lazy dog sleeps"))
	require.NoError(t, index.IndexDocument("3", "quick thinking saves time"))

	results, err := index.Search(context.Background(), "quick", 5)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	for _, content := range results {
		assert.Contains(t, content, "quick")
	}
}

func TestSearchRespectsMaxResults(t *testing.T) {
	index, err := NewIndex(filepath.Join(t.TempDir(), "cap.bleve"))
	require.NoError(t, err)
	defer index.Close()

	docs := []string{
		"alpha document one",
		"alpha document two",
		"alpha document three",
	}
	for i, content := range docs {
		require.NoError(t, index.IndexDocument(string(rune('a'+i)), content))
	}

	results, err := index.Search(context.Background(), "alpha", 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchNoMatches(t *testing.T) {
	index, err := NewIndex(filepath.Join(t.TempDir(), "empty.bleve"))
	require.NoError(t, err)
	defer index.Close()

	results, err := index.Search(context.Background(), "anything", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}
