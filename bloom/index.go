package bloom

import (
	"context"

	"github.com/fwojciec/docindex"
	"golang.org/x/text/cases"
)

// FalsePositiveRate is the target false positive rate of each record filter.
const FalsePositiveRate = 0.01

// gramSize is the number of runes per indexed key.
const gramSize = 3

// Compile-time interface verification.
var _ docindex.SearchService = (*Index)(nil)

// Index implements docindex.SearchService with one trigram Bloom filter per
// record. Queries of at least three runes skip records whose filter rules
// out one of the query trigrams; survivors are confirmed with an exact
// match, so results are identical to docindex.Scanner.
//
// An Index is immutable after construction and safe for concurrent use.
type Index struct {
	records []docindex.Record
	filters []*Filter
}

// NewIndex builds the trigram filters for records. The slice must not be
// modified afterwards.
func NewIndex(records []docindex.Record) *Index {
	caser := cases.Fold()
	filters := make([]*Filter, len(records))
	for i, r := range records {
		grams := append(trigrams(caser.String(r.Title)), trigrams(caser.String(r.Text))...)
		f := NewFilter(uint(max(len(grams), 1)), FalsePositiveRate)
		for _, g := range grams {
			f.Add(g)
		}
		filters[i] = f
	}
	return &Index{records: records, filters: filters}
}

// Search implements docindex.SearchService.
func (ix *Index) Search(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if query == "" {
		return nil, nil
	}

	grams := trigrams(cases.Fold().String(query))
	m := docindex.NewMatcher(query)

	var matches []docindex.Match
	for i, r := range ix.records {
		if !ix.filters[i].TestAll(grams) {
			continue
		}
		rank, ok := m.Match(r)
		if !ok {
			continue
		}
		matches = append(matches, docindex.Match{Record: r, Rank: rank, Position: i})
	}

	docindex.SortMatches(matches)
	return docindex.NewResults(query, matches, opts), nil
}

// Candidates returns the number of records the filters let through for
// query. Queries shorter than three runes let every record through.
func (ix *Index) Candidates(query string) int {
	grams := trigrams(cases.Fold().String(query))
	n := 0
	for _, f := range ix.filters {
		if f.TestAll(grams) {
			n++
		}
	}
	return n
}

// trigrams returns the overlapping three-rune substrings of s.
func trigrams(s string) []string {
	runes := []rune(s)
	if len(runes) < gramSize {
		return nil
	}
	grams := make([]string, 0, len(runes)-gramSize+1)
	for i := 0; i+gramSize <= len(runes); i++ {
		grams = append(grams, string(runes[i:i+gramSize]))
	}
	return grams
}
