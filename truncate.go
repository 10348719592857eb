package rescontext

import "strings"

// DefaultMaxChars is the per-result content length bound applied before
// formatting.
const DefaultMaxChars = 1000

// Scorer scores the relevance of a span of text to a query.
// Higher scores indicate greater relevance.
type Scorer interface {
	Score(query, text string) int
}

// LexicalScorer scores text by pure lexical overlap with the query: the
// size of the intersection between the lowercased, whitespace-tokenized
// word sets. Case-insensitive, no stemming, no weighting.
type LexicalScorer struct{}

var _ Scorer = (*LexicalScorer)(nil)

// Score returns the number of distinct query words present in text.
func (LexicalScorer) Score(query, text string) int {
	queryWords := tokenSet(query)
	textWords := tokenSet(text)

	n := 0
	for w := range queryWords {
		if _, ok := textWords[w]; ok {
			n++
		}
	}
	return n
}

func tokenSet(s string) map[string]struct{} {
	fields := strings.Fields(strings.ToLower(s))
	set := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		set[f] = struct{}{}
	}
	return set
}

// Truncator bounds text length while preferring the query-relevant region.
// The zero value uses DefaultMaxChars and a LexicalScorer. MaxChars must be
// positive; negative or zero values fall back to the default.
type Truncator struct {
	MaxChars int
	Scorer   Scorer
}

// Truncate returns the most query-relevant portion of text, at most
// MaxChars characters long. Text already within the bound is returned
// unchanged. Longer text is partitioned into overlapping windows of
// MaxChars characters with a 25% stride overlap; the highest-scoring
// window wins, earliest window on ties. The selected window is hard-cut
// to MaxChars, which may split a word.
func (t *Truncator) Truncate(text, query string) string {
	maxChars := t.MaxChars
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	runes := []rune(text)
	if len(runes) <= maxChars {
		return text
	}

	scorer := t.Scorer
	if scorer == nil {
		scorer = LexicalScorer{}
	}

	// Overlapping windows: stride leaves a 25% overlap so no relevant
	// region straddles a window boundary unscored.
	stride := maxChars - maxChars/4
	var windows []string
	for start := 0; start < len(runes); start += stride {
		end := start + maxChars
		if end > len(runes) {
			end = len(runes)
		}
		windows = append(windows, string(runes[start:end]))
	}

	if len(windows) == 0 {
		return string(runes[:maxChars])
	}

	best := windows[0]
	bestScore := scorer.Score(query, best)
	for _, w := range windows[1:] {
		if s := scorer.Score(query, w); s > bestScore {
			best, bestScore = w, s
		}
	}

	bestRunes := []rune(best)
	if len(bestRunes) > maxChars {
		bestRunes = bestRunes[:maxChars]
	}
	return string(bestRunes)
}
