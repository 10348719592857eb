package rescontext

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxInputBytes bounds raw input size before extraction. Structured
// extraction is CPU-bound in proportion to input size, so oversized inputs
// are cut before the heavy pass runs.
const DefaultMaxInputBytes = 2 << 20 // 2 MB

// Pipeline transforms one raw retrieval result into a formatted context
// string: extract, truncate with relevance, format. Zero-value fields fall
// back to a trafilatura-free default chain, DefaultMaxChars, and a
// LexicalScorer; callers normally wire the full extractor chain.
//
// Pipelines are stateless and safe for concurrent use as long as the
// configured Extractor and Scorer are.
type Pipeline struct {
	Extractor     Extractor
	Scorer        Scorer
	MaxChars      int
	MaxInputBytes int
}

// Process runs one raw result through the pipeline and returns the
// formatted context string, attributed to source and titled with the
// query. Processing never fails: extraction errors and empty extractions
// degrade to the empty string.
func (p *Pipeline) Process(raw, query, source string) string {
	maxIn := p.MaxInputBytes
	if maxIn <= 0 {
		maxIn = DefaultMaxInputBytes
	}
	if len(raw) > maxIn {
		raw = cutAtRuneBoundary(raw, maxIn)
	}

	extractor := p.Extractor
	if extractor == nil {
		extractor = NewChain(TagStripExtractor{})
	}

	extracted, err := extractor.Extract(raw)
	if err != nil {
		return ""
	}
	extracted = strings.TrimSpace(extracted)
	if extracted == "" {
		return ""
	}

	t := Truncator{MaxChars: p.MaxChars, Scorer: p.Scorer}
	truncated := t.Truncate(extracted, query)

	return FormatResult(query, source, truncated)
}

// cutAtRuneBoundary truncates s to at most n bytes without splitting a rune.
func cutAtRuneBoundary(s string, n int) string {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
