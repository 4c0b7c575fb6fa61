package docindex

import (
	"context"
	"time"
)

// Index is an artifact imported into the local catalog under a name.
type Index struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Source      string    `json:"source"`
	ContentHash string    `json:"contentHash"`
	RecordCount int       `json:"recordCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the index contains invalid fields.
func (i *Index) Validate() error {
	if i.Name == "" {
		return Errorf(EINVALID, "index name required")
	}
	if i.Source == "" {
		return Errorf(EINVALID, "index source required")
	}
	return nil
}

// IndexService represents a service for managing imported indexes.
type IndexService interface {
	// ReplaceIndex stores records under idx.Name, replacing any index with
	// the same name wholesale. Sets idx.ID, idx.RecordCount and idx.CreatedAt.
	ReplaceIndex(ctx context.Context, idx *Index, records []Record) error

	// FindIndexByID retrieves an index by ID.
	// Returns ENOTFOUND if index does not exist.
	FindIndexByID(ctx context.Context, id string) (*Index, error)

	// FindIndexes retrieves indexes matching the filter.
	FindIndexes(ctx context.Context, filter IndexFilter) ([]*Index, error)

	// FindRecords retrieves the records of an index in artifact order.
	FindRecords(ctx context.Context, indexID string) ([]Record, error)

	// DeleteIndex permanently removes an index and its records.
	// Returns ENOTFOUND if index does not exist.
	DeleteIndex(ctx context.Context, id string) error
}

// IndexFilter represents a filter for FindIndexes.
type IndexFilter struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
