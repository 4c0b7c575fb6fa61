package main

import (
	"fmt"

	"github.com/fwojciec/docindex"
	docslog "github.com/fwojciec/docindex/slog"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	opts, err := c.options()
	if err != nil {
		return err
	}

	records, err := c.records(deps)
	if err != nil {
		return err
	}

	engine, closeEngine, err := NewEngine(c.Engine, records)
	if err != nil {
		return err
	}
	defer closeEngine()

	svc := docslog.NewLoggingSearchService(engine, deps.Logger)
	results, err := svc.Search(deps.Ctx, c.Query, opts)
	if err != nil {
		return err
	}

	if len(results) == 0 {
		fmt.Fprintln(deps.Stdout, "No results.")
		return nil
	}

	fmt.Fprintln(deps.Stdout, docindex.FormatResults(results))
	return nil
}

func (c *SearchCmd) options() (docindex.SearchOptions, error) {
	category := docindex.Category(c.Category)
	if category != "" && !category.Valid() {
		return docindex.SearchOptions{}, docindex.Errorf(docindex.EINVALID, "unknown category %q (want page or section)", c.Category)
	}
	if c.Limit < 0 {
		return docindex.SearchOptions{}, docindex.Errorf(docindex.EINVALID, "limit must not be negative")
	}
	return docindex.SearchOptions{
		Limit:        c.Limit,
		Pages:        c.Page,
		Category:     category,
		SnippetWidth: max(c.Snippet, 0),
	}, nil
}

// records loads the searched records from the catalog or from locations.
func (c *SearchCmd) records(deps *Dependencies) ([]docindex.Record, error) {
	switch {
	case c.Index != "" && len(c.Locations) > 0:
		return nil, docindex.Errorf(docindex.EINVALID, "use either locations or --index, not both")
	case c.Index != "":
		idx, err := findIndexByName(deps.Ctx, deps.Indexes, c.Index)
		if err != nil {
			if docindex.ErrorCode(err) == docindex.ENOTFOUND {
				fmt.Fprintln(deps.Stderr, "Hint: Use 'docindex list' to see available indexes.")
			}
			return nil, err
		}
		return deps.Indexes.FindRecords(deps.Ctx, idx.ID)
	case len(c.Locations) == 0:
		return nil, docindex.Errorf(docindex.EINVALID, "provide at least one artifact location or --index")
	}

	artifacts, err := LoadAll(deps.Ctx, deps.Source, c.Locations, c.Concurrency)
	if err != nil {
		return nil, err
	}
	return Concat(artifacts), nil
}
