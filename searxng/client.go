// Package searxng provides a rescontext.Searcher backed by a self-hosted
// SearXNG metasearch instance, which aggregates results from many engines
// behind a single JSON API.
package searxng

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/rescontext"
	"github.com/google/uuid"
)

// SourceName is the attribution name for results from this source.
const SourceName = "searxng"

// DefaultMaxResults bounds how many results a single search returns.
const DefaultMaxResults = 5

// DefaultTimeout is the default timeout for search requests.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements rescontext.Searcher at compile time.
var _ rescontext.Searcher = (*Client)(nil)

// Client is a SearXNG search client.
type Client struct {
	baseURL    string
	client     *http.Client
	maxResults int
}

// Option configures a Client.
type Option func(*Client)

// WithMaxResults sets how many results a search returns.
// Defaults to DefaultMaxResults if not specified.
func WithMaxResults(n int) Option {
	return func(c *Client) {
		c.maxResults = n
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a Client for the SearXNG instance at baseURL.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL:    baseURL,
		maxResults: DefaultMaxResults,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	return c
}

// searchResponse mirrors the fields of SearXNG's JSON search response
// that the client consumes.
type searchResponse struct {
	Results []struct {
		Title   string `json:"title"`
		URL     string `json:"url"`
		Content string `json:"content"`
	} `json:"results"`
}

// Search queries the SearXNG instance and returns raw results in the
// order the engine ranked them. Content is the engine's result snippet
// and has not been through the processing pipeline.
func (c *Client) Search(ctx context.Context, query string) ([]rescontext.Result, error) {
	if query == "" {
		return nil, rescontext.Errorf(rescontext.EINVALID, "search query required")
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("pageno", strconv.Itoa(1))

	reqURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	// SearXNG's bot detection wants a client IP when it sits behind a proxy.
	req.Header.Set("X-Real-IP", "127.0.0.1")
	req.Header.Set("X-Forwarded-For", "127.0.0.1")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, rescontext.Errorf(rescontext.EUNAVAILABLE, "searxng returned HTTP %d", resp.StatusCode)
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		return nil, fmt.Errorf("decode searxng response: %w", err)
	}

	n := len(sr.Results)
	if n > c.maxResults {
		n = c.maxResults
	}

	results := make([]rescontext.Result, 0, n)
	for _, r := range sr.Results[:n] {
		results = append(results, rescontext.Result{
			ID:      uuid.NewString(),
			Query:   query,
			Source:  SourceName,
			Title:   r.Title,
			URL:     r.URL,
			Content: r.Content,
		})
	}

	return results, nil
}

// Name returns "searxng".
func (c *Client) Name() string { return SourceName }
