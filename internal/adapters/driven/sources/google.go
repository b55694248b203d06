package sources

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
	"github.com/typepair-labs/typepair-cli/internal/core/ports/driven"
	"github.com/typepair-labs/typepair-cli/internal/logger"
	"github.com/typepair-labs/typepair-cli/internal/normalisers/fonts"
)

// googleMetadataURL is the upstream catalogue of record.
const googleMetadataURL = "https://fonts.google.com/metadata/fonts"

// Ensure GoogleSource implements the interface.
var _ driven.CatalogueSource = (*GoogleSource)(nil)

// GoogleSource fetches the Google Fonts metadata endpoint, the
// highest-quality catalogue tier.
type GoogleSource struct {
	url    string
	client *httpClient
}

// NewGoogleSource creates the primary catalogue source. An empty url
// selects the upstream endpoint; client may be nil for defaults.
func NewGoogleSource(url string, client *http.Client) *GoogleSource {
	if url == "" {
		url = googleMetadataURL
	}
	return &GoogleSource{url: url, client: newHTTPClient(client)}
}

// Label returns the tier name.
func (s *GoogleSource) Label() string { return "Google metadata" }

// Quality returns the tier's trust rank.
func (s *GoogleSource) Quality() domain.Quality { return domain.QualityPrimary }

// googlePayload is the metadata envelope. The entry list has appeared
// under both keys across schema revisions.
type googlePayload struct {
	FamilyMetadataList []domain.RawEntry `json:"familyMetadataList"`
	Fonts              []domain.RawEntry `json:"fonts"`
	LastModified       json.RawMessage   `json:"lastModified"`
	Generated          json.RawMessage   `json:"generated"`
	Updated            json.RawMessage   `json:"updated"`
}

// Fetch retrieves and normalises the metadata payload.
func (s *GoogleSource) Fetch(ctx context.Context) (*driven.FetchResult, error) {
	body, err := s.client.get(ctx, s.url)
	if err != nil {
		return nil, err
	}

	var payload googlePayload
	if err := decodePayload(body, &payload); err != nil {
		return nil, err
	}

	entries := payload.FamilyMetadataList
	if len(entries) == 0 {
		entries = payload.Fonts
	}

	catalogue, signature := fonts.Build(entries)
	if len(catalogue) == 0 {
		return nil, fmt.Errorf("%w: %s returned no families", domain.ErrEmptyCatalogue, s.Label())
	}

	logger.Debug("Google metadata: %d families, signature %s", len(catalogue), signature)
	return &driven.FetchResult{
		Fonts:       catalogue,
		Signature:   signature,
		SourceStamp: stampValue("google", payload.LastModified, payload.Generated, payload.Updated),
	}, nil
}
