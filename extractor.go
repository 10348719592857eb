package rescontext

import (
	"regexp"
	"strings"
)

// Extractor reduces raw HTML or plain text to clean body text with
// boilerplate (navigation, footers, ads, sidebars) removed.
type Extractor interface {
	// Extract returns the main textual content of the raw input.
	// An empty string with a nil error means the strategy found no
	// usable content.
	Extract(raw string) (string, error)

	// Name returns the strategy's identifier (e.g., "trafilatura").
	Name() string
}

// Chain tries extraction strategies in order and returns the first
// non-empty trimmed result. A strategy error is not fatal; the next
// strategy is tried. A Chain never fails: if every strategy comes up
// empty the result is the empty string.
type Chain struct {
	strategies []Extractor
}

var _ Extractor = (*Chain)(nil)

// NewChain creates a Chain that tries the given strategies in order.
func NewChain(strategies ...Extractor) *Chain {
	return &Chain{strategies: strategies}
}

// Extract runs the strategies in sequence, first non-empty result wins.
// Empty or whitespace-only input short-circuits to "".
func (c *Chain) Extract(raw string) (string, error) {
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	for _, s := range c.strategies {
		text, err := s.Extract(raw)
		if err != nil {
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return text, nil
		}
	}
	return "", nil
}

// Name returns "chain".
func (c *Chain) Name() string { return "chain" }

// tagRe matches tag-like substrings for the naive fallback strategy.
var tagRe = regexp.MustCompile(`<[^>]+>`)

// TagStripExtractor is the last-resort extraction strategy: it removes
// tag-like substrings and collapses whitespace runs to single spaces.
// It handles plain text and minimal or malformed HTML for which the
// structured strategies find no article body.
type TagStripExtractor struct{}

var _ Extractor = (*TagStripExtractor)(nil)

// Extract strips tags and normalizes whitespace. It never returns an error.
func (TagStripExtractor) Extract(raw string) (string, error) {
	cleaned := tagRe.ReplaceAllString(raw, " ")
	return strings.Join(strings.Fields(cleaned), " "), nil
}

// Name returns "tagstrip".
func (TagStripExtractor) Name() string { return "tagstrip" }
