package driven

import (
	"context"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// StateStore persists the current pairing state between sessions.
type StateStore interface {
	// Load returns the persisted state, or domain.ErrNotFound when
	// none has been saved yet.
	Load(ctx context.Context) (*domain.PairState, error)

	// Save persists the state.
	Save(ctx context.Context, state domain.PairState) error
}
