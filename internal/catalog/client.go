// Package catalog talks to the external product catalog service. The catalog
// is read-only: the only call this service ever makes is a full product fetch,
// once per chat request. Nothing is cached across requests.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/ahstack/shopchat/internal/models"
)

var (
	// ErrUnavailable covers network errors, timeouts and non-2xx statuses.
	ErrUnavailable = errors.New("catalog: upstream unavailable")
	// ErrMalformed means the catalog answered but the body was undecodable.
	ErrMalformed = errors.New("catalog: malformed upstream response")
)

// fetchLimit matches the upstream page size; the catalog is small and bounded
// so one page is the whole inventory.
const fetchLimit = 100

// Client is a minimal wrapper around the catalog's REST API.
// It is intentionally light—just the single endpoint our services require.
type Client struct {
	http    *http.Client
	baseURL string
}

// NewClient returns a ready-to-use catalog client. timeout bounds every
// outbound call; past it the fetch fails with ErrUnavailable instead of
// hanging.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// dummyJSON is the upstream envelope around the product array.
type dummyJSON struct {
	Products []models.Product `json:"products"`
	Total    int              `json:"total"`
	Skip     int              `json:"skip"`
	Limit    int              `json:"limit"`
}

// FetchAll retrieves the full product list. It is idempotent and performs no
// retries; retry policy belongs to the caller.
func (c *Client) FetchAll(ctx context.Context) ([]models.Product, error) {
	u := fmt.Sprintf("%s/products?limit=%d", c.baseURL, fetchLimit)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: unexpected status %s", ErrUnavailable, resp.Status)
	}

	var payload dummyJSON
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	return payload.Products, nil
}
