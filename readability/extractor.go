// Package readability provides a secondary content extraction strategy
// wrapping go-readability, tried when trafilatura finds no article body.
package readability

import (
	"strings"

	"github.com/fwojciec/rescontext"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements rescontext.Extractor at compile time.
var _ rescontext.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	article, err := readability.FromReader(strings.NewReader(raw), nil)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(article.TextContent), nil
}

// Name returns "readability".
func (e *Extractor) Name() string { return "readability" }
