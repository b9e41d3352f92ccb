package jsonfile

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

// Storage is a directory of JSON array files, one file per collection.
// There is no database: every read loads a whole collection, every write
// rewrites it. Fine for the hundreds of rows a small shop produces,
// explicitly not built for more.
type Storage struct {
	dir    string
	logger *zap.SugaredLogger
}

type Config struct {
	Dir string
}

func New(cfg Config, logger *zap.SugaredLogger) (*Storage, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return &Storage{
		dir:    cfg.Dir,
		logger: logger,
	}, nil
}

func (s *Storage) Ping() error {
	info, err := os.Stat(s.dir)
	if err != nil {
		return fmt.Errorf("failed to stat data directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("data path %s is not a directory", s.dir)
	}

	return nil
}

func (s *Storage) Dir() string {
	return s.dir
}
