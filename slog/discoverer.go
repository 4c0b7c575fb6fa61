package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingDiscoverer implements docindex.ArtifactDiscoverer.
var _ docindex.ArtifactDiscoverer = (*LoggingDiscoverer)(nil)

// LoggingDiscoverer wraps an ArtifactDiscoverer with logging for artifact
// discovery in HTML pages.
type LoggingDiscoverer struct {
	next   docindex.ArtifactDiscoverer
	logger *slog.Logger
}

// NewLoggingDiscoverer creates a new LoggingDiscoverer.
func NewLoggingDiscoverer(next docindex.ArtifactDiscoverer, logger *slog.Logger) *LoggingDiscoverer {
	return &LoggingDiscoverer{next: next, logger: logger}
}

// DiscoverArtifact delegates to the wrapped discoverer and logs the result.
func (d *LoggingDiscoverer) DiscoverArtifact(html string, pageURL string) (artifactURL string, err error) {
	defer func(begin time.Time) {
		found := artifactURL
		if found == "" {
			found = "(none)"
		}
		d.logger.Info("artifact discovery",
			"page", pageURL,
			"artifact", found,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DiscoverArtifact(html, pageURL)
}
