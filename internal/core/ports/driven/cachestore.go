package driven

import (
	"context"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// CatalogueCacheStore persists the last-known-good catalogue.
type CatalogueCacheStore interface {
	// Read returns the cached entry. A missing, empty or corrupt
	// entry yields domain.ErrNotFound; corruption is never fatal.
	Read(ctx context.Context) (*domain.CachedCatalogue, error)

	// Write replaces the cached entry.
	Write(ctx context.Context, entry *domain.CachedCatalogue) error
}
