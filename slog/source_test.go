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

func TestLoggingSource_Load(t *testing.T) {
	t.Parallel()

	t.Run("logs load with record count and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArtifactSource{
			LoadFn: func(ctx context.Context, location string) (*docindex.Artifact, error) {
				return &docindex.Artifact{
					Source:  location,
					Records: []docindex.Record{{Page: "Home", Category: docindex.CategoryPage}, {Page: "Home", Category: docindex.CategoryPage}},
				}, nil
			},
		}

		src := docslog.NewLoggingSource(inner, logger)
		artifact, err := src.Load(context.Background(), "/tmp/search_index.js")

		require.NoError(t, err)
		assert.Len(t, artifact.Records, 2)
		output := buf.String()
		assert.Contains(t, output, "artifact load")
		assert.Contains(t, output, "location=/tmp/search_index.js")
		assert.Contains(t, output, "records=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.ArtifactSource{
			LoadFn: func(ctx context.Context, location string) (*docindex.Artifact, error) {
				return nil, errors.New("connection failed")
			},
		}

		src := docslog.NewLoggingSource(inner, logger)
		_, err := src.Load(context.Background(), "https://example.com/search_index.js")

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "artifact load")
		assert.Contains(t, output, "records=0")
		assert.Contains(t, output, "err=\"connection failed\"")
	})
}
