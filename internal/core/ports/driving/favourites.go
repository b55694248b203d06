package driving

import (
	"context"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// FavouriteService manages saved pairings.
type FavouriteService interface {
	// Save snapshots a pairing state as a new favourite. The list is
	// pruned to domain.MaxFavourites, dropping the oldest.
	Save(ctx context.Context, state domain.PairState) (*domain.Favourite, error)

	// List returns all favourites, newest first.
	List(ctx context.Context) ([]domain.Favourite, error)

	// Get retrieves one favourite by ID.
	Get(ctx context.Context, id string) (*domain.Favourite, error)

	// Delete removes a favourite.
	Delete(ctx context.Context, id string) error
}
