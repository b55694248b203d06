package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driving"
	"github.com/typepair-labs/typepair-cli/internal/logger"
)

// Ensure CatalogueResolver implements the interface.
var _ driving.CatalogueService = (*CatalogueResolver)(nil)

// CatalogueResolver walks a chain of catalogue sources in descending
// quality order, serving the persisted cache while the chain runs and
// refusing to let a lower-quality tier overwrite a higher-quality
// cached catalogue.
type CatalogueResolver struct {
	cache   driven.CatalogueCacheStore
	sources []driven.CatalogueSource

	// now is swappable for tests.
	now func() time.Time
}

// NewCatalogueResolver creates a resolver over the given source chain.
// Sources must be ordered by descending quality; the resolver tries
// them front to back.
func NewCatalogueResolver(cache driven.CatalogueCacheStore, sources ...driven.CatalogueSource) *CatalogueResolver {
	return &CatalogueResolver{
		cache:   cache,
		sources: sources,
		now:     time.Now,
	}
}

// Resolve returns the best-available catalogue.
//
// The persisted cache, when present, is handed to onProvisional before
// any network work so callers can render immediately. Each tier is then
// tried in order; every tier failure is soft and advances the chain.
// The first successful fetch wins unless its quality is strictly below
// the cached catalogue's, in which case the cache is kept — sources are
// quality-ordered, so the first downgrade ends the chain.
func (r *CatalogueResolver) Resolve(ctx context.Context, onProvisional func(*driving.Resolution)) (*driving.Resolution, error) {
	cached := r.readCache(ctx)

	if cached != nil && onProvisional != nil {
		onProvisional(r.fromCache(cached, r.cacheStatus(cached)))
	}

	for _, source := range r.sources {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if cached != nil && source.Quality() < cached.Quality {
			logger.Info("Keeping cached %s catalogue; remaining tiers rank lower", cached.Quality)
			return r.fromCache(cached, fmt.Sprintf("Kept %d cached fonts from %s; fresher sources unavailable.", len(cached.Fonts), cached.SourceLabel)), nil
		}

		logger.Debug("Trying catalogue source: %s", source.Label())
		result, err := source.Fetch(ctx)
		if err != nil {
			logger.Warn("Source %s failed: %v", source.Label(), err)
			continue
		}

		return r.accept(ctx, source, result, cached), nil
	}

	if cached != nil {
		logger.Warn("All catalogue sources failed; serving cache")
		return r.fromCache(cached, fmt.Sprintf("Sources unreachable; using %d cached fonts.", len(cached.Fonts))), nil
	}

	return nil, domain.ErrNoCatalogue
}

// Cached returns the persisted cache entry without fetching.
func (r *CatalogueResolver) Cached(ctx context.Context) (*domain.CachedCatalogue, error) {
	return r.cache.Read(ctx)
}

// accept installs a successful fetch: the cache is rewritten unless the
// content signature is unchanged, and the resolution is built from the
// fresh result.
func (r *CatalogueResolver) accept(ctx context.Context, source driven.CatalogueSource, result *driven.FetchResult, cached *domain.CachedCatalogue) *driving.Resolution {
	status := fmt.Sprintf("Loaded %d fonts from %s.", len(result.Fonts), source.Label())

	if cached != nil && cached.Signature == result.Signature {
		logger.Debug("Catalogue signature unchanged (%s); skipping cache write", result.Signature)
	} else {
		entry := &domain.CachedCatalogue{
			Fonts:       result.Fonts,
			Signature:   result.Signature,
			SourceStamp: result.SourceStamp,
			SourceLabel: source.Label(),
			Quality:     source.Quality(),
			FetchedAt:   r.now(),
		}
		if err := r.cache.Write(ctx, entry); err != nil {
			logger.Warn("Failed to persist catalogue cache: %v", err)
		}
	}

	return &driving.Resolution{
		Catalogue:   result.Fonts,
		SourceLabel: source.Label(),
		Quality:     source.Quality(),
		Signature:   result.Signature,
		Status:      status,
		FromCache:   false,
	}
}

// readCache loads the persisted catalogue, treating every failure as a
// miss. An unusable cache must never block resolution.
func (r *CatalogueResolver) readCache(ctx context.Context) *domain.CachedCatalogue {
	cached, err := r.cache.Read(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			logger.Debug("Catalogue cache unreadable: %v", err)
		}
		return nil
	}
	if cached == nil || len(cached.Fonts) == 0 {
		return nil
	}
	return cached
}

func (r *CatalogueResolver) fromCache(cached *domain.CachedCatalogue, status string) *driving.Resolution {
	return &driving.Resolution{
		Catalogue:   cached.Fonts,
		SourceLabel: cached.SourceLabel,
		Quality:     cached.Quality,
		Signature:   cached.Signature,
		Status:      status,
		FromCache:   true,
	}
}

func (r *CatalogueResolver) cacheStatus(cached *domain.CachedCatalogue) string {
	if cached.Fresh(r.now()) {
		return fmt.Sprintf("Using %d cached fonts from %s.", len(cached.Fonts), cached.SourceLabel)
	}
	return fmt.Sprintf("Using %d cached fonts from %s (stale; refreshing).", len(cached.Fonts), cached.SourceLabel)
}
