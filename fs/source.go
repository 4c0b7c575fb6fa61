// Package fs provides file-based loading and storage of search index artifacts.
package fs

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/xxhash"
)

// Ensure Source implements docindex.ArtifactSource at compile time.
var _ docindex.ArtifactSource = (*Source)(nil)

// Source loads artifacts from the local filesystem.
type Source struct {
	decoder docindex.ArtifactDecoder
}

// NewSource creates a new Source that decodes files with decoder.
func NewSource(decoder docindex.ArtifactDecoder) *Source {
	return &Source{decoder: decoder}
}

// Load reads the artifact file at path and decodes it.
func (s *Source) Load(ctx context.Context, path string) (*docindex.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "artifact %q not found", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read artifact: %w", err)
	}

	records, err := s.decoder.Decode(data)
	if err != nil {
		return nil, err
	}

	return &docindex.Artifact{
		Source:      path,
		ContentHash: xxhash.Sum(data),
		Records:     records,
	}, nil
}
