package docindex

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

const ellipsis = "…"

// Snippet returns an excerpt of text of at most width runes centered on the
// first case-folded occurrence of query. Whitespace runs are collapsed
// to single spaces. Truncated ends are marked with an ellipsis. When query
// does not occur, the excerpt starts at the beginning of text.
func Snippet(text, query string, width int) string {
	runes := []rune(strings.Join(strings.Fields(text), " "))
	if width <= 0 || len(runes) <= width {
		return string(runes)
	}

	start := 0
	if hit, hitLen := indexFold(runes, query); hit > 0 {
		start = max(0, hit-max(width-hitLen, 0)/2)
	}
	end := min(len(runes), start+width)
	start = max(0, end-width)

	var b strings.Builder
	if start > 0 {
		b.WriteString(ellipsis)
	}
	b.WriteString(strings.TrimSpace(string(runes[start:end])))
	if end < len(runes) {
		b.WriteString(ellipsis)
	}
	return b.String()
}

// indexFold returns the rune offset and rune length within haystack of the
// first occurrence of query under full Unicode case folding, or -1.
func indexFold(haystack []rune, query string) (int, int) {
	caser := cases.Fold()
	needle := []rune(caser.String(query))
	if len(needle) == 0 {
		return -1, 0
	}

	// origin maps each folded rune back to the haystack rune it came from.
	var folded []rune
	var origin []int
	for i, r := range haystack {
		for _, f := range caser.String(string(r)) {
			folded = append(folded, f)
			origin = append(origin, i)
		}
	}

	for i := 0; i+len(needle) <= len(folded); i++ {
		if slices.Equal(folded[i:i+len(needle)], needle) {
			start := origin[i]
			return start, origin[i+len(needle)-1] - start + 1
		}
	}
	return -1, 0
}
