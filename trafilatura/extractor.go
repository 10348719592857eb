// Package trafilatura provides the primary content extraction strategy,
// wrapping go-trafilatura's structured boilerplate-removal pass.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/rescontext"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements rescontext.Extractor at compile time.
var _ rescontext.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
// Navigation, footers, ads, and sidebars are stripped; tabular content
// is retained.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
// Inputs with no detectable article body yield an empty string so the
// extraction chain can fall through to the next strategy.
func (e *Extractor) Extract(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(raw), opts)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.ContentText), nil
}

// Name returns "trafilatura".
func (e *Extractor) Name() string { return "trafilatura" }

// Article holds the richer extraction used by the page reader path.
type Article struct {
	// Title is the page title extracted from metadata.
	Title string

	// ContentHTML is the main content as clean HTML, suitable for
	// markdown conversion. Boilerplate has been removed.
	ContentHTML string
}

// ExtractArticle processes raw HTML and returns the title and the main
// content as clean HTML.
func (e *Extractor) ExtractArticle(raw string) (*Article, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, rescontext.Errorf(rescontext.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(raw), opts)
	if err != nil {
		return nil, err
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &Article{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
