package mock

import (
	"context"

	"github.com/fwojciec/docindex"
)

var _ docindex.IndexService = (*IndexService)(nil)

// IndexService is a mock implementation of docindex.IndexService.
type IndexService struct {
	ReplaceIndexFn  func(ctx context.Context, idx *docindex.Index, records []docindex.Record) error
	FindIndexByIDFn func(ctx context.Context, id string) (*docindex.Index, error)
	FindIndexesFn   func(ctx context.Context, filter docindex.IndexFilter) ([]*docindex.Index, error)
	FindRecordsFn   func(ctx context.Context, indexID string) ([]docindex.Record, error)
	DeleteIndexFn   func(ctx context.Context, id string) error
}

func (s *IndexService) ReplaceIndex(ctx context.Context, idx *docindex.Index, records []docindex.Record) error {
	return s.ReplaceIndexFn(ctx, idx, records)
}

func (s *IndexService) FindIndexByID(ctx context.Context, id string) (*docindex.Index, error) {
	return s.FindIndexByIDFn(ctx, id)
}

func (s *IndexService) FindIndexes(ctx context.Context, filter docindex.IndexFilter) ([]*docindex.Index, error) {
	return s.FindIndexesFn(ctx, filter)
}

func (s *IndexService) FindRecords(ctx context.Context, indexID string) ([]docindex.Record, error) {
	return s.FindRecordsFn(ctx, indexID)
}

func (s *IndexService) DeleteIndex(ctx context.Context, id string) error {
	return s.DeleteIndexFn(ctx, id)
}
