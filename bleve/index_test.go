package bleve_test

import (
	"context"
	"os"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/bleve"
	"github.com/fwojciec/docindex/gjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newIndex(t *testing.T, records []docindex.Record) *bleve.Index {
	t.Helper()
	idx, err := bleve.NewIndex(records)
	require.NoError(t, err)
	t.Cleanup(func() { idx.Close() })
	return idx
}

func TestIndex_Search(t *testing.T) {
	t.Parallel()

	t.Run("ranks title hit above text hit", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, []docindex.Record{
			{Location: "#B", Page: "Home", Title: "Intro", Text: "styling basics", Category: docindex.CategorySection},
			{Location: "#A", Page: "Home", Title: "Styling", Category: docindex.CategorySection},
		})

		results, err := idx.Search(context.Background(), "styling", docindex.SearchOptions{})
		require.NoError(t, err)
		require.Len(t, results, 2)
		assert.Equal(t, "#A", results[0].Record.Location)
		assert.Equal(t, docindex.RankTitle, results[0].Rank)
		assert.Equal(t, 1, results[0].Position)
		assert.Equal(t, "#B", results[1].Record.Location)
		assert.Equal(t, docindex.RankText, results[1].Rank)
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("matches case-insensitively", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, []docindex.Record{
			{Location: "#A", Title: "WGLMakie", Category: docindex.CategorySection},
		})

		results, err := idx.Search(context.Background(), "wglmakie", docindex.SearchOptions{})
		require.NoError(t, err)
		assert.Len(t, results, 1)
	})

	t.Run("returns no results for empty query", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, []docindex.Record{
			{Location: "#A", Title: "Styling", Category: docindex.CategorySection},
		})

		results, err := idx.Search(context.Background(), "", docindex.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("returns no results for empty record set", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, nil)

		results, err := idx.Search(context.Background(), "styling", docindex.SearchOptions{})
		require.NoError(t, err)
		assert.Empty(t, results)
	})

	t.Run("applies filters and limit", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, []docindex.Record{
			{Location: "#1", Page: "Guide", Title: "Axis", Category: docindex.CategorySection},
			{Location: "", Page: "Home", Title: "Home", Text: "axis overview", Category: docindex.CategoryPage},
			{Location: "#2", Page: "Guide", Text: "axis ticks", Category: docindex.CategorySection},
		})

		results, err := idx.Search(context.Background(), "axis", docindex.SearchOptions{
			Pages: []string{"Guide"},
			Limit: 1,
		})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "#1", results[0].Record.Location)
	})

	t.Run("attaches snippets", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, []docindex.Record{
			{Location: "#1", Title: "Intro", Text: "styling basics", Category: docindex.CategorySection},
		})

		results, err := idx.Search(context.Background(), "styling", docindex.SearchOptions{SnippetWidth: 40})
		require.NoError(t, err)
		require.Len(t, results, 1)
		assert.Equal(t, "styling basics", results[0].Snippet)
	})

	t.Run("finds records in real artifact", func(t *testing.T) {
		t.Parallel()

		data, err := os.ReadFile("../gjson/testdata/search_index.js")
		require.NoError(t, err)
		records, err := gjson.NewDecoder().Decode(data)
		require.NoError(t, err)

		idx := newIndex(t, records)

		results, err := idx.Search(context.Background(), "WGLMakie", docindex.SearchOptions{})
		require.NoError(t, err)
		require.NotEmpty(t, results)

		var titled []string
		for _, r := range results {
			if r.Rank == docindex.RankTitle {
				titled = append(titled, r.Record.Location)
			}
		}
		assert.Contains(t, titled, "#How-to-use-JSServe-WGLMakie")
	})

	t.Run("returns error for canceled context", func(t *testing.T) {
		t.Parallel()

		idx := newIndex(t, nil)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := idx.Search(ctx, "styling", docindex.SearchOptions{})
		require.ErrorIs(t, err, context.Canceled)
	})
}
