package docindex

import (
	"fmt"
	"strings"
)

// FormatResults formats results for display.
// Each result shows its title (or page name when untitled), the page it
// belongs to, its location and, when present, its snippet.
// Results are separated by blank lines.
func FormatResults(results []Result) string {
	if len(results) == 0 {
		return ""
	}

	parts := make([]string, 0, len(results))
	for i, res := range results {
		r := res.Record
		header := r.Title
		if header == "" {
			header = r.Page
		}

		var b strings.Builder
		fmt.Fprintf(&b, "%d. %s [%s]\n   %s", i+1, header, r.Page, r.Link())
		if res.Snippet != "" {
			fmt.Fprintf(&b, "\n   %s", res.Snippet)
		}
		parts = append(parts, b.String())
	}

	return strings.Join(parts, "\n\n")
}
