package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.ArtifactDecoder = (*ArtifactDecoder)(nil)

// ArtifactDecoder is a mock implementation of docindex.ArtifactDecoder.
type ArtifactDecoder struct {
	DecodeFn func(data []byte) ([]docindex.Record, error)
}

func (d *ArtifactDecoder) Decode(data []byte) ([]docindex.Record, error) {
	return d.DecodeFn(data)
}

var _ docindex.ArtifactSource = (*ArtifactSource)(nil)

// ArtifactSource is a mock implementation of docindex.ArtifactSource.
type ArtifactSource struct {
	LoadFn func(ctx context.Context, location string) (*docindex.Artifact, error)
}

func (s *ArtifactSource) Load(ctx context.Context, location string) (*docindex.Artifact, error) {
	return s.LoadFn(ctx, location)
}

var _ docindex.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of docindex.ArtifactStore.
type ArtifactStore struct {
	SaveFn   func(ctx context.Context, data []byte) error
	CommitFn func() error
	AbortFn  func() error
}

func (s *ArtifactStore) Save(ctx context.Context, data []byte) error {
	return s.SaveFn(ctx, data)
}

func (s *ArtifactStore) Commit() error {
	return s.CommitFn()
}

func (s *ArtifactStore) Abort() error {
	return s.AbortFn()
}

var _ docindex.ArtifactDiscoverer = (*ArtifactDiscoverer)(nil)

// ArtifactDiscoverer is a mock implementation of docindex.ArtifactDiscoverer.
type ArtifactDiscoverer struct {
	DiscoverArtifactFn func(html string, pageURL string) (string, error)
}

func (d *ArtifactDiscoverer) DiscoverArtifact(html string, pageURL string) (string, error) {
	return d.DiscoverArtifactFn(html, pageURL)
}

var _ docindex.HostLimiter = (*HostLimiter)(nil)

// HostLimiter is a mock implementation of docindex.HostLimiter.
type HostLimiter struct {
	WaitFn func(ctx context.Context, host string) error
}

func (l *HostLimiter) Wait(ctx context.Context, host string) error {
	return l.WaitFn(ctx, host)
}
