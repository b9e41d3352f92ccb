package jsonfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// collection is one JSON array file. The mutex serializes read-modify-rewrite
// cycles within this process; cross-process writers are not coordinated and
// can still lose updates to each other. Readers are safe either way because
// replace swaps the file in with a rename.
type collection[T any] struct {
	path   string
	logger *zap.SugaredLogger
	mu     sync.Mutex
}

func newCollection[T any](storage *Storage, filename string) *collection[T] {
	return &collection[T]{
		path:   filepath.Join(storage.dir, filename),
		logger: storage.logger,
	}
}

// load reads the whole collection. A missing or unparsable file degrades to
// an empty collection instead of failing the request.
func (c *collection[T]) load() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Warnw("failed to read collection file", "path", c.path, "error", err)
		}
		return []T{}
	}

	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		c.logger.Warnw("corrupt collection file, treating as empty", "path", c.path, "error", err)
		return []T{}
	}

	return records
}

// replace rewrites the whole collection: serialize to a temp file next to the
// target, then rename over it so readers never see a partial write.
func (c *collection[T]) replace(records []T) error {
	if records == nil {
		records = []T{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal collection: %w", err)
	}

	tmpPath := c.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, c.path); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}

	return nil
}

// update runs fn over the current records and persists its result, holding
// the collection lock across the whole cycle. If fn returns an error nothing
// is written.
func (c *collection[T]) update(fn func(records []T) ([]T, error)) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	records, err := fn(c.load())
	if err != nil {
		return err
	}

	return c.replace(records)
}
