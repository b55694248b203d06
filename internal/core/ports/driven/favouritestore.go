package driven

import (
	"context"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// FavouriteStore persists saved pairings.
type FavouriteStore interface {
	// Save stores a favourite.
	Save(ctx context.Context, fav domain.Favourite) error

	// Get retrieves a favourite by ID.
	Get(ctx context.Context, id string) (*domain.Favourite, error)

	// Delete removes a favourite.
	Delete(ctx context.Context, id string) error

	// List returns all favourites, newest first.
	List(ctx context.Context) ([]domain.Favourite, error)

	// Prune removes the oldest favourites beyond keep.
	Prune(ctx context.Context, keep int) error
}
