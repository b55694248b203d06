package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/logger"
)

// Ensure CacheStore implements the interface.
var _ driven.CatalogueCacheStore = (*CacheStore)(nil)

// CacheStore persists the last-known-good catalogue as a JSON document.
type CacheStore struct {
	mu   sync.Mutex
	path string
}

// NewCacheStore creates a catalogue cache store under dataDir.
// If dataDir is empty, defaults to ~/.typepair.
func NewCacheStore(dataDir string) (*CacheStore, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return &CacheStore{path: filepath.Join(dir, "catalogue_cache.json")}, nil
}

// Path returns the cache file path.
func (s *CacheStore) Path() string {
	return s.path
}

// Read returns the cached catalogue entry. A missing or unreadable
// file yields domain.ErrNotFound; corruption is logged, never fatal.
func (s *CacheStore) Read(_ context.Context) (*domain.CachedCatalogue, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading catalogue cache: %w", err)
	}

	var entry domain.CachedCatalogue
	if err := json.Unmarshal(data, &entry); err != nil {
		logger.Warn("Catalogue cache corrupt, discarding: %v", err)
		return nil, domain.ErrNotFound
	}
	if len(entry.Fonts) == 0 {
		return nil, domain.ErrNotFound
	}

	return &entry, nil
}

// Write replaces the cached entry.
func (s *CacheStore) Write(_ context.Context, entry *domain.CachedCatalogue) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("encoding catalogue cache: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing catalogue cache: %w", err)
	}
	return nil
}

// resolveDataDir expands an empty dir to the default location and
// ensures it exists.
func resolveDataDir(dataDir string) (string, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".typepair")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}
	return dataDir, nil
}
