package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/docindex"
	"github.com/fwojciec/docindex/mock"
	docslog "github.com/fwojciec/docindex/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearchService_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query with result count at debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		inner := &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.Result, error) {
				return []docindex.Result{{}, {}, {}}, nil
			},
		}

		svc := docslog.NewLoggingSearchService(inner, logger)
		results, err := svc.Search(context.Background(), "styl", docindex.SearchOptions{})

		require.NoError(t, err)
		assert.Len(t, results, 3)
		output := buf.String()
		assert.Contains(t, output, "msg=search")
		assert.Contains(t, output, "query=styl")
		assert.Contains(t, output, "results=3")
		assert.Contains(t, output, "duration=")
	})

	t.Run("passes options through", func(t *testing.T) {
		t.Parallel()

		var got docindex.SearchOptions
		inner := &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.Result, error) {
				got = opts
				return nil, nil
			},
		}

		svc := docslog.NewLoggingSearchService(inner, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))
		_, err := svc.Search(context.Background(), "styl", docindex.SearchOptions{Limit: 5, Pages: []string{"Home"}})

		require.NoError(t, err)
		assert.Equal(t, 5, got.Limit)
		assert.Equal(t, []string{"Home"}, got.Pages)
	})

	t.Run("stays quiet above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.SearchService{
			SearchFn: func(ctx context.Context, query string, opts docindex.SearchOptions) ([]docindex.Result, error) {
				return nil, errors.New("index closed")
			},
		}

		svc := docslog.NewLoggingSearchService(inner, logger)
		_, err := svc.Search(context.Background(), "styl", docindex.SearchOptions{})

		require.Error(t, err)
		assert.Empty(t, buf.String())
	})
}
