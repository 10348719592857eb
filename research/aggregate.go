// Package research orchestrates multi-source retrieval into a single
// bounded context: fan out to search sources, optionally fetch full pages,
// run every raw result through the processing pipeline, then deduplicate
// and budget the batch.
package research

import (
	"context"
	"net/url"
	"time"

	"github.com/fwojciec/rescontext"
	"github.com/fwojciec/rescontext/bloom"
	reshttp "github.com/fwojciec/rescontext/http"
	"golang.org/x/sync/errgroup"
)

// expectedURLs sizes the per-run seen-URL filter.
const expectedURLs = 1024

// Aggregator coordinates searchers, fetching, and the processing pipeline.
type Aggregator struct {
	Searchers []rescontext.Searcher
	Pipeline  *rescontext.Pipeline

	// Fetcher, when set, retrieves the full page behind each result URL
	// so the pipeline can work on complete articles instead of snippets.
	// Fetch failures fall back to the source's snippet.
	Fetcher rescontext.Fetcher

	// MaxTotalChars caps the assembled context.
	// Defaults to rescontext.DefaultMaxTotalChars.
	MaxTotalChars int

	// Concurrency limits parallel page fetches. Defaults to 4.
	Concurrency int

	// RetryDelays configures fetch retry backoff.
	// Defaults to reshttp.DefaultRetryDelays().
	RetryDelays []time.Duration
}

// Gathered holds the outcome of a research run.
type Gathered struct {
	// Context is the deduplicated, budgeted context string.
	Context string

	// Results are the surviving processed results, in first-seen order.
	// Content holds the formatted context piece for each.
	Results []rescontext.Result

	// SourcesFailed counts searchers that errored and were skipped.
	SourcesFailed int
}

// Gather runs the full research flow for a query. A failing source is
// skipped rather than failing the run; if every source fails the last
// error is returned.
func (a *Aggregator) Gather(ctx context.Context, query string) (*Gathered, error) {
	batches := make([][]rescontext.Result, len(a.Searchers))
	errs := make([]error, len(a.Searchers))

	g, gctx := errgroup.WithContext(ctx)
	for i, searcher := range a.Searchers {
		g.Go(func() error {
			batches[i], errs[i] = searcher.Search(gctx, query)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	var lastErr error
	for _, err := range errs {
		if err != nil {
			failed++
			lastErr = err
		}
	}
	if failed == len(a.Searchers) && failed > 0 {
		return nil, lastErr
	}

	// Flatten in searcher order, skipping URLs already surfaced by an
	// earlier source.
	seen := bloom.NewFilter(expectedURLs, 0.01)
	var raw []rescontext.Result
	for _, batch := range batches {
		for _, r := range batch {
			if r.URL != "" && seen.TestAndAdd(normalizeURL(r.URL)) {
				continue
			}
			raw = append(raw, r)
		}
	}

	if a.Fetcher != nil {
		a.fetchPages(ctx, raw)
	}

	pipeline := a.Pipeline
	if pipeline == nil {
		pipeline = &rescontext.Pipeline{}
	}

	var processed []rescontext.Result
	for _, r := range raw {
		formatted := pipeline.Process(r.Content, query, r.Source)
		if formatted == "" {
			continue
		}
		r.Content = formatted
		processed = append(processed, r)
	}

	processed = rescontext.Deduplicate(processed)

	pieces := make([]string, len(processed))
	for i, r := range processed {
		pieces[i] = r.Content
	}

	return &Gathered{
		Context:       rescontext.BudgetContext(pieces, a.MaxTotalChars),
		Results:       processed,
		SourcesFailed: failed,
	}, nil
}

// fetchPages replaces result snippets with full page bodies where the
// page can be fetched. Results without URLs and failed fetches keep
// their snippets.
func (a *Aggregator) fetchPages(ctx context.Context, results []rescontext.Result) {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}
	delays := a.RetryDelays
	if delays == nil {
		delays = reshttp.DefaultRetryDelays()
	}

	g := new(errgroup.Group)
	g.SetLimit(concurrency)

	for i := range results {
		if results[i].URL == "" {
			continue
		}
		g.Go(func() error {
			body, err := reshttp.FetchWithRetryDelays(ctx, results[i].URL, a.Fetcher.Fetch, delays)
			if err == nil && body != "" {
				results[i].Content = body
			}
			return nil
		})
	}
	_ = g.Wait()
}

// normalizeURL strips fragments so URLs differing only by fragment are
// considered duplicates.
func normalizeURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return raw
	}
	u.Fragment = ""
	return u.String()
}
