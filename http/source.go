// Package http provides an HTTP-based implementation of docindex.ArtifactSource
// for loading search index artifacts published with a documentation site.
package http

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/xxhash"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// MaxArtifactBytes bounds the size of a fetched artifact.
const MaxArtifactBytes = 64 << 20

// Ensure Source implements docindex.ArtifactSource at compile time.
var _ docindex.ArtifactSource = (*Source)(nil)

// Source loads artifacts over HTTP. When a URL serves a rendered
// documentation page instead of an artifact, the page is handed to a
// docindex.ArtifactDiscoverer to locate the artifact it references.
type Source struct {
	client      *http.Client
	timeout     time.Duration
	decoder     docindex.ArtifactDecoder
	discoverer  docindex.ArtifactDiscoverer
	limiter     docindex.HostLimiter
	retryDelays []time.Duration
	logf        LogFunc
}

// Option configures a Source.
type Option func(*Source)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(s *Source) {
		s.timeout = d
	}
}

// WithDiscoverer enables loading artifacts from documentation page URLs.
func WithDiscoverer(d docindex.ArtifactDiscoverer) Option {
	return func(s *Source) {
		s.discoverer = d
	}
}

// WithLimiter rate limits requests per host.
func WithLimiter(l docindex.HostLimiter) Option {
	return func(s *Source) {
		s.limiter = l
	}
}

// WithRetryDelays sets the backoff delays between attempts.
// Defaults to DefaultRetryDelays. An empty slice disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(s *Source) {
		s.retryDelays = delays
	}
}

// WithLogFunc sets a function called for each retry attempt.
func WithLogFunc(fn LogFunc) Option {
	return func(s *Source) {
		s.logf = fn
	}
}

// NewSource creates a new HTTP-based Source that decodes artifacts with decoder.
func NewSource(decoder docindex.ArtifactDecoder, opts ...Option) *Source {
	s := &Source{
		timeout:     DefaultFetchTimeout,
		decoder:     decoder,
		retryDelays: DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.client = &http.Client{
		Timeout: s.timeout,
	}

	return s
}

// Load fetches the artifact at rawURL and decodes it.
func (s *Source) Load(ctx context.Context, rawURL string) (*docindex.Artifact, error) {
	data, source, err := s.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	records, err := s.decoder.Decode(data)
	if err != nil {
		return nil, err
	}

	return &docindex.Artifact{
		Source:      source,
		ContentHash: xxhash.Sum(data),
		Records:     records,
	}, nil
}

// Fetch returns the raw artifact bytes for rawURL and the URL they were read
// from. HTML responses are resolved through the discoverer when one is set.
func (s *Source) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	body, err := s.get(ctx, rawURL)
	if err != nil {
		return nil, "", err
	}

	if s.discoverer == nil || !isHTML(body) {
		return body, rawURL, nil
	}

	artifactURL, err := s.discoverer.DiscoverArtifact(string(body), rawURL)
	if err != nil {
		return nil, "", err
	}

	body, err = s.get(ctx, artifactURL)
	if err != nil {
		return nil, "", err
	}
	return body, artifactURL, nil
}

func (s *Source) get(ctx context.Context, rawURL string) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, docindex.Errorf(docindex.EINVALID, "invalid artifact URL %q", rawURL)
	}

	return FetchWithRetryDelays(ctx, rawURL, func(ctx context.Context, rawURL string) ([]byte, error) {
		if s.limiter != nil {
			if err := s.limiter.Wait(ctx, u.Host); err != nil {
				return nil, err
			}
		}
		return s.do(ctx, rawURL)
	}, s.logf, s.retryDelays)
}

func (s *Source) do(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "artifact %q not found", rawURL)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, URL: rawURL}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxArtifactBytes+1))
	if err != nil {
		return nil, err
	}
	if len(body) > MaxArtifactBytes {
		return nil, docindex.Errorf(docindex.EINVALID, "artifact %q exceeds %d bytes", rawURL, MaxArtifactBytes)
	}

	return body, nil
}

// StatusError reports an unexpected HTTP response status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

// isHTML reports whether body looks like a rendered page rather than an
// artifact, which always starts with a script assignment or a JSON object.
func isHTML(body []byte) bool {
	return bytes.HasPrefix(bytes.TrimSpace(body), []byte("<"))
}
