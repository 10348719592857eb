// Package wikipedia provides a rescontext.Searcher backed by the MediaWiki
// query API: a title search followed by page extracts for the top hits.
package wikipedia

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/beevik/etree"
	"github.com/fwojciec/rescontext"
	"github.com/google/uuid"
)

// SourceName is the attribution name for results from this source.
const SourceName = "wikipedia"

// DefaultBaseURL is the English Wikipedia API endpoint.
const DefaultBaseURL = "https://en.wikipedia.org/w/api.php"

// DefaultTopK is how many articles a single lookup returns.
const DefaultTopK = 2

// DefaultMaxContentChars caps the extract length per article.
const DefaultMaxContentChars = 2000

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// userAgent identifies the client per the Wikimedia API etiquette.
const userAgent = "rescontext/1.0 (+https://github.com/fwojciec/rescontext)"

// Ensure Client implements rescontext.Searcher at compile time.
var _ rescontext.Searcher = (*Client)(nil)

// Client is a Wikipedia lookup client.
type Client struct {
	baseURL         string
	client          *http.Client
	topK            int
	maxContentChars int
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at a different MediaWiki API endpoint.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = u
	}
}

// WithTopK sets how many articles a lookup returns.
// Defaults to DefaultTopK if not specified.
func WithTopK(k int) Option {
	return func(c *Client) {
		c.topK = k
	}
}

// WithMaxContentChars caps the extract length per article.
// Defaults to DefaultMaxContentChars if not specified.
func WithMaxContentChars(n int) Option {
	return func(c *Client) {
		c.maxContentChars = n
	}
}

// WithHTTPClient sets the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.client = hc
	}
}

// NewClient creates a Wikipedia Client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:         DefaultBaseURL,
		topK:            DefaultTopK,
		maxContentChars: DefaultMaxContentChars,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.client == nil {
		c.client = &http.Client{Timeout: DefaultTimeout}
	}
	return c
}

// Search looks up the query on Wikipedia and returns the extracts of the
// top matching articles. Content is the article extract reduced to plain
// text and has not been through the processing pipeline.
func (c *Client) Search(ctx context.Context, query string) ([]rescontext.Result, error) {
	if query == "" {
		return nil, rescontext.Errorf(rescontext.EINVALID, "search query required")
	}

	titles, err := c.searchTitles(ctx, query)
	if err != nil {
		return nil, err
	}

	results := make([]rescontext.Result, 0, len(titles))
	for _, title := range titles {
		content, err := c.fetchExtract(ctx, title)
		if err != nil {
			return nil, err
		}
		results = append(results, rescontext.Result{
			ID:      uuid.NewString(),
			Query:   query,
			Source:  SourceName,
			Title:   title,
			URL:     articleURL(title),
			Content: content,
		})
	}

	return results, nil
}

// Name returns "wikipedia".
func (c *Client) Name() string { return SourceName }

// searchTitles runs a full-text title search and returns the top K titles.
func (c *Client) searchTitles(ctx context.Context, query string) ([]string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "search")
	params.Set("srsearch", query)
	params.Set("srlimit", strconv.Itoa(c.topK))
	params.Set("format", "xml")

	doc, err := c.get(ctx, params)
	if err != nil {
		return nil, err
	}

	var titles []string
	for _, el := range doc.FindElements("//search/p") {
		if title := el.SelectAttrValue("title", ""); title != "" {
			titles = append(titles, title)
		}
	}
	return titles, nil
}

// fetchExtract retrieves the article extract for a title and reduces its
// HTML to plain text, capped at maxContentChars characters.
func (c *Client) fetchExtract(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("titles", title)
	params.Set("redirects", "1")
	params.Set("format", "xml")

	doc, err := c.get(ctx, params)
	if err != nil {
		return "", err
	}

	el := doc.FindElement("//extract")
	if el == nil {
		return "", nil
	}

	text, err := htmlToText(el.Text())
	if err != nil {
		return "", err
	}

	runes := []rune(text)
	if len(runes) > c.maxContentChars {
		runes = runes[:c.maxContentChars]
	}
	return string(runes), nil
}

// get performs an API request and parses the XML response.
func (c *Client) get(ctx context.Context, params url.Values) (*etree.Document, error) {
	reqURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, rescontext.Errorf(rescontext.EUNAVAILABLE, "wikipedia returned HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return nil, fmt.Errorf("parse wikipedia response: %w", err)
	}
	return doc, nil
}

// htmlToText reduces extract HTML to plain text.
func htmlToText(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Text()), nil
}

// articleURL builds the canonical article URL for a title.
func articleURL(title string) string {
	return "https://en.wikipedia.org/wiki/" + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
}
