package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ecotrack/core/internal/infrastructure/config"
)

// Store owns the JSON backing file for the action collection. It handles
// file lifecycle and raw I/O; callers are responsible for serializing
// read-modify-write cycles. Writes go to a temporary file that is renamed
// over the target, so readers see either the old or the new contents.
type Store struct {
	path   string
	config config.StorageConfig
}

// New opens the backing file, creating an empty collection if it does not
// exist yet
func New(cfg config.StorageConfig) (*Store, error) {
	if cfg.FilePath == "" {
		return nil, fmt.Errorf("storage file path is required")
	}

	s := &Store{
		path:   cfg.FilePath,
		config: cfg,
	}

	if dir := filepath.Dir(cfg.FilePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}

	if _, err := os.Stat(cfg.FilePath); errors.Is(err, fs.ErrNotExist) {
		if err := s.WriteAtomic([]byte("[]\n")); err != nil {
			return nil, fmt.Errorf("failed to initialize storage file: %w", err)
		}
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat storage file: %w", err)
	}

	return s, nil
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Read returns the raw file contents. A missing file reads as empty.
func (s *Store) Read() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	return data, nil
}

// WriteAtomic replaces the file contents via a temporary file and rename,
// so a concurrent reader never observes a truncated file
func (s *Store) WriteAtomic(data []byte) error {
	tmp := s.path + ".tmp"

	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}

	if err := os.Rename(tmp, s.path); err != nil {
		// Best effort: don't leave the temp file behind.
		_ = os.Remove(tmp)
		return err
	}

	return nil
}

// HealthCheck verifies the backing file is readable and holds a
// syntactically valid JSON array
func (s *Store) HealthCheck() error {
	data, err := s.Read()
	if err != nil {
		return fmt.Errorf("storage health check failed: %w", err)
	}

	if len(data) == 0 {
		return nil
	}

	var records []json.RawMessage
	if err := json.Unmarshal(data, &records); err != nil {
		return fmt.Errorf("storage health check failed: backing file is not a JSON array: %w", err)
	}

	return nil
}

// Info returns backing-file statistics for the detailed health endpoint
func (s *Store) Info() map[string]interface{} {
	info := map[string]interface{}{
		"path": s.path,
	}

	fi, err := os.Stat(s.path)
	if err != nil {
		info["error"] = err.Error()
		return info
	}

	info["size_bytes"] = fi.Size()
	info["modified"] = fi.ModTime().UTC()

	if data, err := s.Read(); err == nil {
		var records []json.RawMessage
		if json.Unmarshal(data, &records) == nil {
			info["records"] = len(records)
		}
	}

	return info
}

// Close releases the store. Writes are already durable at this point, so
// there is nothing to flush.
func (s *Store) Close() error {
	return nil
}
