package docindex

import (
	"context"
	"iter"
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// Rank orders matches by where the query was found. Higher ranks sort first.
type Rank int

// Match ranks.
const (
	RankNone Rank = iota
	RankText
	RankTitle
)

// String returns the field name the rank refers to.
func (r Rank) String() string {
	switch r {
	case RankTitle:
		return "title"
	case RankText:
		return "text"
	default:
		return "none"
	}
}

// Match is a record that contains the query, with the position it held in
// the searched sequence.
type Match struct {
	Record   Record
	Rank     Rank
	Position int
}

// Matcher tests records for a case-insensitive substring match.
// A Matcher is not safe for concurrent use.
type Matcher struct {
	caser  cases.Caser
	needle string
}

// NewMatcher returns a Matcher for query. Case folding follows Unicode
// rules, so "STRASSE" matches "straße".
func NewMatcher(query string) *Matcher {
	m := &Matcher{caser: cases.Fold()}
	m.needle = m.caser.String(query)
	return m
}

// Match reports whether r contains the query in its title or text and how
// the match ranks. An empty query matches nothing.
func (m *Matcher) Match(r Record) (Rank, bool) {
	if m.needle == "" {
		return RankNone, false
	}
	if strings.Contains(m.caser.String(r.Title), m.needle) {
		return RankTitle, true
	}
	if strings.Contains(m.caser.String(r.Text), m.needle) {
		return RankText, true
	}
	return RankNone, false
}

// Matches returns a lazy sequence of the records matching query, in
// sequence order. Every iteration re-scans records.
func Matches(query string, records []Record) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		if query == "" {
			return
		}
		m := NewMatcher(query)
		for i, r := range records {
			rank, ok := m.Match(r)
			if !ok {
				continue
			}
			if !yield(Match{Record: r, Rank: rank, Position: i}) {
				return
			}
		}
	}
}

// SortMatches orders title matches before text-only matches. The sort is
// stable, so each group keeps its sequence order.
func SortMatches(matches []Match) {
	slices.SortStableFunc(matches, func(a, b Match) int {
		return int(b.Rank) - int(a.Rank)
	})
}

// RankMatches returns the matches for query ordered by rank.
func RankMatches(query string, records []Record) []Match {
	matches := slices.Collect(Matches(query, records))
	SortMatches(matches)
	return matches
}

// Search returns the records containing query as a case-insensitive
// substring of their title or text. Title matches come before text-only
// matches; within a group the original order is kept.
//
// Matching uses full Unicode case folding, so "ß" matches "ss" and a query
// may match text of a different rune length.
//
// The empty query returns no results.
func Search(query string, records []Record) []Record {
	matches := RankMatches(query, records)
	if len(matches) == 0 {
		return nil
	}
	results := make([]Record, len(matches))
	for i, m := range matches {
		results[i] = m.Record
	}
	return results
}

// SearchService answers queries against a fixed record sequence.
type SearchService interface {
	// Search returns results ordered by relevance.
	// The empty query returns no results.
	Search(ctx context.Context, query string, opts SearchOptions) ([]Result, error)
}

// SearchOptions configures search behavior.
type SearchOptions struct {
	// Maximum number of results to return. Zero means no limit.
	Limit int `json:"limit,omitempty"`

	// Restrict results to these page names.
	Pages []string `json:"pages,omitempty"`

	// Restrict results to a category. Empty means any.
	Category Category `json:"category,omitempty"`

	// Width of result snippets in runes. Zero disables snippets.
	SnippetWidth int `json:"snippetWidth,omitempty"`
}

// Accepts reports whether r passes the page and category filters.
func (o SearchOptions) Accepts(r Record) bool {
	if o.Category != "" && r.Category != o.Category {
		return false
	}
	if len(o.Pages) > 0 && !slices.Contains(o.Pages, r.Page) {
		return false
	}
	return true
}

// Result is a ranked search hit.
type Result struct {
	Match

	// Score is an engine-specific relevance score. Engines that rank purely
	// by match field leave it zero.
	Score float64 `json:"score,omitempty"`

	// Snippet is an excerpt of the record text around the query.
	Snippet string `json:"snippet,omitempty"`
}

// NewResults filters ordered matches by opts, applies the limit and attaches
// snippets. The order of matches is kept.
func NewResults(query string, matches []Match, opts SearchOptions) []Result {
	var results []Result
	for _, m := range matches {
		if !opts.Accepts(m.Record) {
			continue
		}
		res := Result{Match: m}
		if opts.SnippetWidth > 0 {
			res.Snippet = Snippet(m.Record.Text, query, opts.SnippetWidth)
		}
		results = append(results, res)
		if opts.Limit > 0 && len(results) == opts.Limit {
			break
		}
	}
	return results
}

// Compile-time interface verification.
var _ SearchService = (*Scanner)(nil)

// Scanner implements SearchService with a linear scan over records.
// It is safe for concurrent use.
type Scanner struct {
	records []Record
}

// NewScanner returns a Scanner over records. The slice must not be
// modified afterwards.
func NewScanner(records []Record) *Scanner {
	return &Scanner{records: records}
}

// Search implements SearchService.
func (s *Scanner) Search(ctx context.Context, query string, opts SearchOptions) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return NewResults(query, RankMatches(query, s.records), opts), nil
}
