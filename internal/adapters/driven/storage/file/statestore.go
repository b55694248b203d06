package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/logger"
)

// Ensure StateStore implements the interface.
var _ driven.StateStore = (*StateStore)(nil)

// StateStore persists the pairing state as a TOML file.
type StateStore struct {
	mu   sync.Mutex
	path string
}

// NewStateStore creates a pairing state store under dataDir.
// If dataDir is empty, defaults to ~/.typepair.
func NewStateStore(dataDir string) (*StateStore, error) {
	dir, err := resolveDataDir(dataDir)
	if err != nil {
		return nil, err
	}
	return &StateStore{path: filepath.Join(dir, "state.toml")}, nil
}

// Path returns the state file path.
func (s *StateStore) Path() string {
	return s.path
}

// Load returns the persisted state. A missing or unparseable file
// yields domain.ErrNotFound, so the caller falls back to defaults.
func (s *StateStore) Load(_ context.Context) (*domain.PairState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("reading pairing state: %w", err)
	}

	var state domain.PairState
	if err := toml.Unmarshal(data, &state); err != nil {
		logger.Warn("Pairing state corrupt, discarding: %v", err)
		return nil, domain.ErrNotFound
	}

	return &state, nil
}

// Save persists the state.
func (s *StateStore) Save(_ context.Context, state domain.PairState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := toml.Marshal(state)
	if err != nil {
		return fmt.Errorf("encoding pairing state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("writing pairing state: %w", err)
	}
	return nil
}
