// Package goquery locates search index artifacts in rendered documentation
// pages using PuerkitoBio/goquery.
package goquery

import (
	"net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/docindex"
)

// Ensure Discoverer implements docindex.ArtifactDiscoverer at compile time.
var _ docindex.ArtifactDiscoverer = (*Discoverer)(nil)

// Discoverer finds the artifact a documentation page loads for its search box.
type Discoverer struct {
	fileName string
}

// NewDiscoverer creates a new Discoverer looking for docindex.ArtifactFileName.
func NewDiscoverer() *Discoverer {
	return &Discoverer{fileName: docindex.ArtifactFileName}
}

// DiscoverArtifact implements docindex.ArtifactDiscoverer.
// It returns the first script whose source file is the artifact, resolved
// against the page's <base href> when present and pageURL otherwise.
func (d *Discoverer) DiscoverArtifact(html string, pageURL string) (string, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", docindex.Errorf(docindex.EINVALID, "invalid page URL %q", pageURL)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", docindex.Malformedf("failed to parse page %q", pageURL)
	}

	if href, ok := doc.Find("base[href]").First().Attr("href"); ok {
		if ref, err := url.Parse(strings.TrimSpace(href)); err == nil {
			base = base.ResolveReference(ref)
		}
	}

	var found string
	doc.Find("script[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		ref, err := url.Parse(strings.TrimSpace(src))
		if err != nil || path.Base(ref.Path) != d.fileName {
			return true
		}
		found = base.ResolveReference(ref).String()
		return false
	})

	if found == "" {
		return "", docindex.Errorf(docindex.ENOTFOUND, "page %q does not reference %s", pageURL, d.fileName)
	}
	return found, nil
}
