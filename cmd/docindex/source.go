package main

import (
	"context"
	"strings"

	"github.com/fwojciec/docindex"
	"golang.org/x/sync/errgroup"
)

// Compile-time interface verification.
var _ docindex.ArtifactSource = (*Router)(nil)

// Router implements docindex.ArtifactSource by dispatching on the location:
// http and https URLs go to HTTP, anything else to File.
type Router struct {
	HTTP docindex.ArtifactSource
	File docindex.ArtifactSource
}

// Load implements docindex.ArtifactSource.
func (r *Router) Load(ctx context.Context, location string) (*docindex.Artifact, error) {
	if isURL(location) {
		return r.HTTP.Load(ctx, location)
	}
	return r.File.Load(ctx, location)
}

func isURL(location string) bool {
	lower := strings.ToLower(location)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

// LoadAll loads locations concurrently with at most limit loads in flight
// and returns the artifacts in argument order. The first failure cancels
// the remaining loads.
func LoadAll(ctx context.Context, src docindex.ArtifactSource, locations []string, limit int) ([]*docindex.Artifact, error) {
	artifacts := make([]*docindex.Artifact, len(locations))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, location := range locations {
		g.Go(func() error {
			artifact, err := src.Load(ctx, location)
			if err != nil {
				return err
			}
			artifacts[i] = artifact
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return artifacts, nil
}

// Concat joins the records of artifacts in order.
func Concat(artifacts []*docindex.Artifact) []docindex.Record {
	n := 0
	for _, a := range artifacts {
		n += len(a.Records)
	}
	records := make([]docindex.Record, 0, n)
	for _, a := range artifacts {
		records = append(records, a.Records...)
	}
	return records
}
