package docindex

import "context"

// ArtifactFileName is the file name documentation generators use for the
// search index artifact.
const ArtifactFileName = "search_index.js"

// Artifact is a loaded search index: the full record sequence produced by a
// single documentation build.
type Artifact struct {
	// Source is the file path or URL the artifact was loaded from.
	Source string

	// ContentHash identifies the raw artifact bytes.
	ContentHash string

	Records []Record
}

// ArtifactDecoder deserializes stored artifact bytes into records.
type ArtifactDecoder interface {
	// Decode returns the records in artifact order.
	// Returns EMALFORMED if the data does not have the expected shape.
	Decode(data []byte) ([]Record, error)
}

// ArtifactSource loads artifacts from a location such as a file path or URL.
type ArtifactSource interface {
	// Load reads and decodes the artifact at location.
	// Returns ENOTFOUND if nothing exists at location and EMALFORMED if the
	// artifact can't be decoded.
	Load(ctx context.Context, location string) (*Artifact, error)
}

// ArtifactStore persists raw artifact bytes with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type ArtifactStore interface {
	Save(ctx context.Context, data []byte) error
	Commit() error
	Abort() error
}

// ArtifactDiscoverer finds the artifact URL referenced by a rendered
// documentation page.
type ArtifactDiscoverer interface {
	// DiscoverArtifact returns the absolute artifact URL referenced by html.
	// Relative references are resolved against pageURL.
	// Returns ENOTFOUND if the page does not reference an artifact.
	DiscoverArtifact(html string, pageURL string) (string, error)
}

// HostLimiter provides per-host rate limiting.
type HostLimiter interface {
	// Wait blocks until the rate limit allows a request to the host.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, host string) error
}
