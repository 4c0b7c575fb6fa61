// Package bleve provides a full-text search engine backed by an in-memory
// bleve index.
package bleve

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/blevesearch/bleve/v2"
	"github.com/fwojciec/docindex"
)

// TitleBoost weights title hits relative to text hits.
const TitleBoost = 2.0

// batchSize is the number of records submitted per bleve batch.
const batchSize = 500

// Compile-time interface verification.
var _ docindex.SearchService = (*Index)(nil)

// Index implements docindex.SearchService with token-based relevance
// scoring. Unlike docindex.Scanner it matches whole analyzed terms, so
// "styl" does not find "styling". Results are ordered by score; ties keep
// sequence order.
//
// An Index is safe for concurrent use.
type Index struct {
	index   bleve.Index
	records []docindex.Record
}

// document is the indexed form of a record.
type document struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// NewIndex indexes records in memory. The slice must not be modified
// afterwards. Callers must Close the index when done.
func NewIndex(records []docindex.Record) (*Index, error) {
	index, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create index: %w", err)
	}

	batch := index.NewBatch()
	for i, r := range records {
		if err := batch.Index(strconv.Itoa(i), document{Title: r.Title, Text: r.Text}); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to add record %d to batch: %w", i, err)
		}

		if batch.Size() >= batchSize {
			if err := index.Batch(batch); err != nil {
				index.Close()
				return nil, fmt.Errorf("failed to index batch: %w", err)
			}
			batch = index.NewBatch()
		}
	}

	if batch.Size() > 0 {
		if err := index.Batch(batch); err != nil {
			index.Close()
			return nil, fmt.Errorf("failed to index final batch: %w", err)
		}
	}

	return &Index{index: index, records: records}, nil
}

// Close releases the index.
func (ix *Index) Close() error {
	return ix.index.Close()
}

// Search implements docindex.SearchService.
func (ix *Index) Search(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == "" || len(ix.records) == 0 {
		return nil, nil
	}

	title := bleve.NewMatchQuery(query)
	title.SetField("title")
	title.SetBoost(TitleBoost)

	text := bleve.NewMatchQuery(query)
	text.SetField("text")

	req := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(title, text), len(ix.records), 0, false)
	req.IncludeLocations = true

	res, err := ix.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("search failed: %w", err)
	}

	matches := make([]docindex.Match, 0, len(res.Hits))
	scores := make(map[int]float64, len(res.Hits))
	for _, hit := range res.Hits {
		pos, err := strconv.Atoi(hit.ID)
		if err != nil || pos < 0 || pos >= len(ix.records) {
			return nil, docindex.Errorf(docindex.EINTERNAL, "unexpected document id %q", hit.ID)
		}

		rank := docindex.RankText
		if _, ok := hit.Locations["title"]; ok {
			rank = docindex.RankTitle
		}

		matches = append(matches, docindex.Match{Record: ix.records[pos], Rank: rank, Position: pos})
		scores[pos] = hit.Score
	}

	slices.SortStableFunc(matches, func(a, b docindex.Match) int {
		switch sa, sb := scores[a.Position], scores[b.Position]; {
		case sa > sb:
			return -1
		case sa < sb:
			return 1
		}
		return a.Position - b.Position
	})

	results := docindex.NewResults(query, matches, opts)
	for i := range results {
		results[i].Score = scores[results[i].Position]
	}
	return results, nil
}
