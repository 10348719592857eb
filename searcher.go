package rescontext

import "context"

// Searcher retrieves raw results for a query from a single source.
// Implementations hide the source's transport and response format; the
// Content of returned results is raw source output (HTML snippets, page
// text) and has not been through the processing pipeline.
type Searcher interface {
	// Search returns results in the order the source returned them.
	// The context controls timeout and cancellation.
	Search(ctx context.Context, query string) ([]Result, error)

	// Name returns the source identifier used for attribution
	// (e.g., "wikipedia", "searxng").
	Name() string
}
