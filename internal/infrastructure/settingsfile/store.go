// Package settingsfile persists the settings document as a flat JSON file.
package settingsfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/orris-inc/photobooth/internal/domain/setting"
	"github.com/orris-inc/photobooth/internal/shared/logger"
)

// Store implements setting.Repository. Reads are served from a cached copy
// of the parsed file; every write replaces the file atomically and drops the
// cache.
type Store struct {
	path   string
	logger logger.Interface

	mu     sync.Mutex
	cached setting.Document
}

// NewStore creates a store backed by path. The file need not exist.
func NewStore(path string, logger logger.Interface) *Store {
	return &Store{
		path:   path,
		logger: logger,
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns a copy of the stored document.
func (s *Store) Load(ctx context.Context) (setting.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.cached != nil {
		return s.cached.Clone(), nil
	}

	doc, err := s.read()
	if err != nil {
		return nil, err
	}
	s.cached = doc
	return doc.Clone(), nil
}

// Save writes doc to a temp file in the same directory and renames it over
// the target.
func (s *Store) Save(ctx context.Context, doc setting.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.cached = nil

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".settings-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp settings file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp settings file: %w", err)
	}
	if err := os.Chmod(tmpName, 0600); err != nil {
		return fmt.Errorf("failed to chmod settings: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to replace settings file: %w", err)
	}

	s.logger.Debugw("settings saved", "path", s.path)
	return nil
}

func (s *Store) read() (setting.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return setting.Document{}, nil
		}
		return nil, fmt.Errorf("%w: %v", setting.ErrCorruptDocument, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return setting.Document{}, nil
	}

	var doc setting.Document
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return nil, fmt.Errorf("%w: %s is not a JSON object", setting.ErrCorruptDocument, s.path)
	}
	return doc, nil
}
