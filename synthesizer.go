package rescontext

import "context"

// Synthesizer answers a research query from processed context.
type Synthesizer interface {
	// Synthesize answers the query using only the provided research
	// context. Returns EINVALID if the query or context is empty.
	Synthesize(ctx context.Context, query, researchContext string) (string, error)
}
