package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/docindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ docindex.IndexService = (*IndexService)(nil)

// IndexService implements docindex.IndexService using SQLite.
type IndexService struct {
	db *DB
}

// NewIndexService creates a new IndexService.
func NewIndexService(db *DB) *IndexService {
	return &IndexService{db: db}
}

// ReplaceIndex stores records under idx.Name in a single transaction.
// An existing index with the same name and all of its records are removed
// first, so readers see either the old build or the new one.
func (s *IndexService) ReplaceIndex(ctx context.Context, idx *docindex.Index, records []docindex.Record) error {
	if err := idx.Validate(); err != nil {
		return err
	}
	for i := range records {
		if err := records[i].Validate(); err != nil {
			return docindex.Errorf(docindex.EINVALID, "record %d: %s", i, docindex.ErrorMessage(err))
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM indexes WHERE name = ?", idx.Name); err != nil {
		return err
	}

	id := uuid.New().String()
	createdAt := time.Now().UTC().Truncate(time.Second)

	if _, err := tx.ExecContext(ctx, `
		INSERT INTO indexes (id, name, source, content_hash, record_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, idx.Name, idx.Source, idx.ContentHash, len(records), createdAt.Format(time.RFC3339)); err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO records (index_id, position, location, page, title, text, category)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.ExecContext(ctx, id, i, r.Location, r.Page, r.Title, r.Text, string(r.Category)); err != nil {
			return fmt.Errorf("failed to insert record %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	idx.ID = id
	idx.RecordCount = len(records)
	idx.CreatedAt = createdAt
	return nil
}

// FindIndexByID retrieves an index by ID.
func (s *IndexService) FindIndexByID(ctx context.Context, id string) (*docindex.Index, error) {
	var idx docindex.Index
	var createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, source, content_hash, record_count, created_at
		FROM indexes
		WHERE id = ?
	`, id).Scan(&idx.ID, &idx.Name, &idx.Source, &idx.ContentHash, &idx.RecordCount, &createdAt)

	if err == sql.ErrNoRows {
		return nil, docindex.Errorf(docindex.ENOTFOUND, "index not found")
	}
	if err != nil {
		return nil, err
	}

	if idx.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
		return nil, err
	}

	return &idx, nil
}

// FindIndexes retrieves indexes matching the filter, ordered by name.
func (s *IndexService) FindIndexes(ctx context.Context, filter docindex.IndexFilter) ([]*docindex.Index, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, name, source, content_hash, record_count, created_at FROM indexes WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}

	query.WriteString(" ORDER BY name ASC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var indexes []*docindex.Index
	for rows.Next() {
		var idx docindex.Index
		var createdAt string

		if err := rows.Scan(&idx.ID, &idx.Name, &idx.Source, &idx.ContentHash, &idx.RecordCount, &createdAt); err != nil {
			return nil, err
		}

		if idx.CreatedAt, err = parseRFC3339(createdAt, "created_at"); err != nil {
			return nil, err
		}

		indexes = append(indexes, &idx)
	}

	return indexes, rows.Err()
}

// FindRecords retrieves the records of an index in artifact order.
func (s *IndexService) FindRecords(ctx context.Context, indexID string) ([]docindex.Record, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT location, page, title, text, category
		FROM records
		WHERE index_id = ?
		ORDER BY position ASC
	`, indexID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []docindex.Record
	for rows.Next() {
		var r docindex.Record
		var category string

		if err := rows.Scan(&r.Location, &r.Page, &r.Title, &r.Text, &category); err != nil {
			return nil, err
		}
		r.Category = docindex.Category(category)

		records = append(records, r)
	}

	return records, rows.Err()
}

// DeleteIndex permanently removes an index and its records.
func (s *IndexService) DeleteIndex(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM indexes WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return docindex.Errorf(docindex.ENOTFOUND, "index not found")
	}

	return nil
}
