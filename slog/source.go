package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/docindex"
)

// Ensure LoggingSource implements docindex.ArtifactSource.
var _ docindex.ArtifactSource = (*LoggingSource)(nil)

// LoggingSource wraps an ArtifactSource with logging.
type LoggingSource struct {
	next   docindex.ArtifactSource
	logger *slog.Logger
}

// NewLoggingSource creates a new LoggingSource.
func NewLoggingSource(next docindex.ArtifactSource, logger *slog.Logger) *LoggingSource {
	return &LoggingSource{next: next, logger: logger}
}

// Load delegates to the wrapped source and logs the operation.
func (s *LoggingSource) Load(ctx context.Context, location string) (artifact *docindex.Artifact, err error) {
	defer func(begin time.Time) {
		records := 0
		if artifact != nil {
			records = len(artifact.Records)
		}
		s.logger.Info("artifact load",
			"location", location,
			"records", records,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Load(ctx, location)
}
