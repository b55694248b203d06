package driven

import (
	"context"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

// FetchResult is a successfully fetched and normalised catalogue tier.
type FetchResult struct {
	// Fonts is the normalised, non-empty catalogue.
	Fonts domain.Catalogue

	// Signature is the content fingerprint of Fonts.
	Signature string

	// SourceStamp is an opaque version marker from the source
	// (a last-modified value, or a fixed tier tag).
	SourceStamp string
}

// CatalogueSource retrieves one tier of the font catalogue. Sources
// are tried by the resolver in descending Quality order; any error is
// a soft failure that advances the chain to the next tier.
type CatalogueSource interface {
	// Label is the human-readable tier name used in status messages.
	Label() string

	// Quality is the fixed trust rank of this tier.
	Quality() domain.Quality

	// Fetch retrieves the payload and returns the normalised
	// catalogue. Implementations must treat an empty or implausibly
	// small normalisation result as an error.
	Fetch(ctx context.Context) (*FetchResult, error)
}
