// Package upstream fetches (original, enriched) document pairs from the
// scraping and LLM extraction backend. A failed fetch surfaces as an error
// and nothing else: the caller's current review session stays untouched,
// and retry policy belongs to the caller.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/agentstation/utc"

	"github.com/agentstation/curator/pkg/document"
	"github.com/agentstation/curator/pkg/errors"
)

// enrichEndpoint is the backend route that scrapes a product page and runs
// the extraction pipeline over it.
const enrichEndpoint = "/enrich-product-schema"

// defaultTimeout bounds a full scrape-and-extract round trip.
const defaultTimeout = 120 * time.Second

// Pair is a fetched review input: the document as found on the page and
// the AI-enriched candidate.
type Pair struct {
	Original  document.Value
	Enriched  document.Value
	SourceURL string
	FetchedAt utc.Time
}

// Client talks to the enrichment backend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithAPIKey sets a Bearer token for backend authentication.
func WithAPIKey(apiKey string) Option {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the request timeout on the default HTTP client.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a client for the backend at baseURL.
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// enrichRequest is the backend request body.
type enrichRequest struct {
	URL string `json:"url"`
}

// Fetch scrapes productURL through the backend and returns the document
// pair for review. The original side is the page's JSON-LD schema; the
// enriched side is the extraction pipeline's output. A page without JSON-LD
// yields a null original, which the diff engine reads as an empty object.
func (c *Client) Fetch(ctx context.Context, productURL string) (*Pair, error) {
	endpoint := c.baseURL + enrichEndpoint

	body, err := json.Marshal(enrichRequest{URL: productURL})
	if err != nil {
		return nil, errors.WrapFetch(endpoint, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, errors.WrapFetch(endpoint, err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.WrapFetch(endpoint, err)
	}
	defer func() {
		// Drain any remaining body to allow connection reuse
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, &errors.FetchError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Message:    "unexpected response status",
		}
	}

	payload, err := document.Decode(resp.Body)
	if err != nil {
		return nil, errors.WrapParse("json", endpoint, err)
	}

	original, _ := document.GetAt(payload, document.Path{"scraped_data", "json_ld_schema"})
	enriched, ok := document.GetAt(payload, document.Path{"extraction_results"})
	if !ok {
		return nil, &errors.FetchError{
			Endpoint: endpoint,
			Message:  "response missing extraction_results",
		}
	}

	return &Pair{
		Original:  original,
		Enriched:  enriched,
		SourceURL: productURL,
		FetchedAt: utc.Now(),
	}, nil
}
