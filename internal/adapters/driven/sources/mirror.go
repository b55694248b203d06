package sources

import (
	"context"
	"fmt"
	"net/http"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/logger"
	"github.com/typepair-labs/typepair-cli/internal/normalisers/fonts"
)

// mirrorPlausibleMin is the smallest normalised record count a mirror
// response is allowed to have. The real catalogue carries well over a
// thousand families; a tiny payload is a placeholder or truncation.
const mirrorPlausibleMin = 500

// defaultMirrorURLs are CDN copies of the full catalogue, tried in
// order.
var defaultMirrorURLs = []string{
	"https://cdn.jsdelivr.net/npm/google-fonts-complete@2.2.3/api-response.json",
	"https://unpkg.com/google-fonts-complete@2.2.3/api-response.json",
}

// Ensure MirrorSource implements the interface.
var _ driven.CatalogueSource = (*MirrorSource)(nil)

// MirrorSource fetches a third-party mirror of the full catalogue.
// Each endpoint is tried in order; the first plausible response wins.
type MirrorSource struct {
	urls   []string
	client *httpClient
}

// NewMirrorSource creates the mirror tier. Empty urls selects the
// default CDN endpoints; client may be nil for defaults.
func NewMirrorSource(urls []string, client *http.Client) *MirrorSource {
	if len(urls) == 0 {
		urls = defaultMirrorURLs
	}
	return &MirrorSource{urls: urls, client: newHTTPClient(client)}
}

// Label returns the tier name.
func (s *MirrorSource) Label() string { return "mirror" }

// Quality returns the tier's trust rank.
func (s *MirrorSource) Quality() domain.Quality { return domain.QualityMirror }

// Fetch tries each mirror endpoint until one yields a plausible
// catalogue. The last endpoint's error is returned when all fail.
func (s *MirrorSource) Fetch(ctx context.Context) (*driven.FetchResult, error) {
	var lastErr error

	for _, url := range s.urls {
		result, err := s.fetchOne(ctx, url)
		if err != nil {
			logger.Debug("Mirror %s failed: %v", url, err)
			lastErr = err
			continue
		}
		return result, nil
	}

	if lastErr == nil {
		lastErr = fmt.Errorf("%w: no mirror endpoints configured", domain.ErrRetrieval)
	}
	return nil, lastErr
}

func (s *MirrorSource) fetchOne(ctx context.Context, url string) (*driven.FetchResult, error) {
	body, err := s.client.get(ctx, url)
	if err != nil {
		return nil, err
	}

	entries, err := decodeEntryList(body, "items")
	if err != nil {
		return nil, err
	}

	catalogue, signature := fonts.Build(entries)
	if len(catalogue) < mirrorPlausibleMin {
		return nil, fmt.Errorf("%w: mirror returned %d families", domain.ErrImplausiblySmall, len(catalogue))
	}

	logger.Debug("Mirror: %d families, signature %s", len(catalogue), signature)
	return &driven.FetchResult{
		Fonts:       catalogue,
		Signature:   signature,
		SourceStamp: "mirror",
	}, nil
}
