package sources

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/normalisers/fonts"
)

// embeddedFonts is a small curated catalogue compiled into the binary,
// covering all five categories. It is the tier of last resort and
// cannot fail at runtime.
//
//go:embed fonts_embedded.json
var embeddedFonts []byte

// Ensure EmbeddedSource implements the interface.
var _ driven.CatalogueSource = (*EmbeddedSource)(nil)

// EmbeddedSource serves the compiled-in fallback list.
type EmbeddedSource struct{}

// NewEmbeddedSource creates the embedded tier.
func NewEmbeddedSource() *EmbeddedSource {
	return &EmbeddedSource{}
}

// Label returns the tier name.
func (s *EmbeddedSource) Label() string { return "embedded list" }

// Quality returns the tier's trust rank.
func (s *EmbeddedSource) Quality() domain.Quality { return domain.QualityEmbedded }

// Fetch normalises the embedded list.
func (s *EmbeddedSource) Fetch(_ context.Context) (*driven.FetchResult, error) {
	var entries []domain.RawEntry
	if err := json.Unmarshal(embeddedFonts, &entries); err != nil {
		return nil, fmt.Errorf("%w: embedded list: %v", domain.ErrMalformedPayload, err)
	}

	catalogue, signature := fonts.Build(entries)
	return &driven.FetchResult{
		Fonts:       catalogue,
		Signature:   signature,
		SourceStamp: "embedded-fallback",
	}, nil
}
