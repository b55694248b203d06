package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
	"github.com/typepair-labs/typepair-cli/internal/logger"
)

// Ensure FavouriteManager implements the interface.
var _ driving.FavouriteService = (*FavouriteManager)(nil)

// FavouriteManager manages saved pairings on top of a FavouriteStore.
type FavouriteManager struct {
	store driven.FavouriteStore

	// now is swappable for tests.
	now func() time.Time
}

// NewFavouriteManager creates a favourite manager.
func NewFavouriteManager(store driven.FavouriteStore) *FavouriteManager {
	return &FavouriteManager{
		store: store,
		now:   time.Now,
	}
}

// Save snapshots a pairing state as a new favourite and prunes the
// list to the cap, dropping the oldest entries.
func (m *FavouriteManager) Save(ctx context.Context, state domain.PairState) (*domain.Favourite, error) {
	fav := domain.Favourite{
		ID:        uuid.New().String(),
		CreatedAt: m.now(),
		State:     state.Sanitize(),
	}

	if err := m.store.Save(ctx, fav); err != nil {
		return nil, fmt.Errorf("save favourite: %w", err)
	}

	if err := m.store.Prune(ctx, domain.MaxFavourites); err != nil {
		logger.Warn("Failed to prune favourites: %v", err)
	}

	logger.Debug("Saved favourite %s (%s)", fav.ID, fav.Label())
	return &fav, nil
}

// List returns all favourites, newest first.
func (m *FavouriteManager) List(ctx context.Context) ([]domain.Favourite, error) {
	favs, err := m.store.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list favourites: %w", err)
	}
	return favs, nil
}

// Get retrieves one favourite by ID.
func (m *FavouriteManager) Get(ctx context.Context, id string) (*domain.Favourite, error) {
	fav, err := m.store.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get favourite: %w", err)
	}
	return fav, nil
}

// Delete removes a favourite.
func (m *FavouriteManager) Delete(ctx context.Context, id string) error {
	if err := m.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete favourite: %w", err)
	}
	return nil
}
