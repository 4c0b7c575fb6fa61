package fs

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fwojciec/docindex"
)

// Ensure Cache implements docindex.ArtifactStore at compile time.
var _ docindex.ArtifactStore = (*Cache)(nil)

// Cache implements docindex.ArtifactStore with atomic update semantics.
// Data is saved to a temporary file next to the target, then renamed over
// the target on Commit. Readers never observe a partially written artifact.
type Cache struct {
	path string
}

// NewCache creates a new Cache writing to path.
// Data is saved to path.tmp and moved to path on Commit.
func NewCache(path string) *Cache {
	return &Cache{path: path}
}

func (c *Cache) tempPath() string {
	return c.path + ".tmp"
}

// Save writes data to the temporary file, creating parent directories.
func (c *Cache) Save(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(c.tempPath(), data, 0644)
}

// Commit atomically replaces the target with the saved data.
func (c *Cache) Commit() error {
	return os.Rename(c.tempPath(), c.path)
}

// Abort discards the saved data.
func (c *Cache) Abort() error {
	err := os.Remove(c.tempPath())
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
