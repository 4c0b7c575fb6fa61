package main

import (
	"context"

	"github.com/fwojciec/docindex"
)

// findIndexByName returns the catalog index called name.
func findIndexByName(ctx context.Context, indexes docindex.IndexService, name string) (*docindex.Index, error) {
	found, err := indexes.FindIndexes(ctx, docindex.IndexFilter{Name: &name})
	if err != nil {
		return nil, err
	}
	if len(found) == 0 {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "index %q not found", name)
	}
	return found[0], nil
}
