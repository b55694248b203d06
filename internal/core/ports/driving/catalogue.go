package driving

import (
	"context"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// Resolution is the outcome of a catalogue resolve cycle.
type Resolution struct {
	// Catalogue is the active font collection.
	Catalogue domain.Catalogue

	// SourceLabel names the tier (or cache) that supplied Catalogue.
	SourceLabel string

	// Quality is the trust rank of that tier.
	Quality domain.Quality

	// Signature is the content fingerprint of Catalogue.
	Signature string

	// Status is a human-readable description of how the catalogue
	// was obtained, for display only.
	Status string

	// FromCache is true when Catalogue came from the persisted cache
	// rather than a fresh fetch.
	FromCache bool
}

// CatalogueService produces the session's font catalogue.
type CatalogueService interface {
	// Resolve returns the best-available catalogue. When a usable
	// cache exists, onProvisional (if non-nil) is invoked with it
	// before the source tiers are attempted, so callers can display
	// something immediately. Resolve itself only errors in the
	// defensive, practically unreachable case where every tier and
	// the cache are empty.
	Resolve(ctx context.Context, onProvisional func(*Resolution)) (*Resolution, error)

	// Cached returns the persisted cache entry without fetching, or
	// domain.ErrNotFound when none exists.
	Cached(ctx context.Context) (*domain.CachedCatalogue, error)
}
