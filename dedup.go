package rescontext

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// fingerprintLen is the number of leading characters of content used to
// detect near-duplicate results across sources.
const fingerprintLen = 200

// Deduplicate removes results with highly overlapping content from a batch.
// A result is kept iff the fingerprint of its content has not been seen
// earlier in the batch, so the first occurrence wins and surviving results
// keep their original order. Results with empty content share the empty
// fingerprint and collapse to at most one survivor. Deduplicate is
// idempotent.
func Deduplicate(results []Result) []Result {
	seen := make(map[uint64]struct{}, len(results))
	unique := make([]Result, 0, len(results))

	for _, r := range results {
		fp := Fingerprint(r.Content)
		if _, ok := seen[fp]; ok {
			continue
		}
		seen[fp] = struct{}{}
		unique = append(unique, r)
	}

	return unique
}

// Fingerprint hashes the normalized prefix of content: the first 200
// characters lowercased, trimmed, with internal whitespace runs collapsed
// to a single space.
func Fingerprint(content string) uint64 {
	runes := []rune(content)
	if len(runes) > fingerprintLen {
		runes = runes[:fingerprintLen]
	}
	normalized := strings.Join(strings.Fields(strings.ToLower(string(runes))), " ")
	return xxhash.Sum64String(normalized)
}
