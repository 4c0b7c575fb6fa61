package main

import (
	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/bleve"
	"github.com/fwojciec/docindex/bloom"
)

// Search engine names.
const (
	EngineScan  = "scan"
	EngineBloom = "bloom"
	EngineBleve = "bleve"
)

// NewEngine returns the search engine named kind over records and a
// function that releases its resources.
func NewEngine(kind string, records []docindex.Record) (docindex.SearchService, func() error, error) {
	noop := func() error { return nil }

	switch kind {
	case EngineScan, "":
		return docindex.NewScanner(records), noop, nil
	case EngineBloom:
		return bloom.NewIndex(records), noop, nil
	case EngineBleve:
		idx, err := bleve.NewIndex(records)
		if err != nil {
			return nil, nil, err
		}
		return idx, idx.Close, nil
	default:
		return nil, nil, docindex.Errorf(docindex.EINVALID, "unknown engine %q", kind)
	}
}
