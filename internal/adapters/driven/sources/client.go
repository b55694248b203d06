package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"github.com/typepair-labs/typepair-cli/internal/core/domain"
)

const (
	// requestTimeout bounds a single catalogue request.
	requestTimeout = 15 * time.Second

	// maxPayloadBytes caps the response body read. The full Google
	// metadata payload is a few megabytes; anything past this is not a
	// catalogue.
	maxPayloadBytes = 32 << 20

	// Sustained request rate across all catalogue endpoints. Catalogue
	// refreshes are rare, so this only guards against refresh loops.
	requestsPerSecond = 2.0
	burstSize         = 4
)

// httpClient wraps an http.Client with a token-bucket rate limiter
// shared by the remote catalogue sources.
type httpClient struct {
	client  *http.Client
	limiter *rate.Limiter
}

// newHTTPClient wraps the given client, or a default one when nil.
func newHTTPClient(client *http.Client) *httpClient {
	if client == nil {
		client = &http.Client{Timeout: requestTimeout}
	}
	return &httpClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// get performs a rate-limited GET and returns the body. Transport
// failures and non-2xx statuses map to domain.ErrRetrieval.
func (c *httpClient) get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRetrieval, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %d", domain.ErrRetrieval, url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", domain.ErrRetrieval, err)
	}
	return body, nil
}
