package mock

import (
	"context"

	"github.com/fwojciec/rescontext"
)

var _ rescontext.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of rescontext.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string) ([]rescontext.Result, error)
	NameFn   func() string
}

func (s *Searcher) Search(ctx context.Context, query string) ([]rescontext.Result, error) {
	return s.SearchFn(ctx, query)
}

func (s *Searcher) Name() string {
	if s.NameFn == nil {
		return "mock"
	}
	return s.NameFn()
}
