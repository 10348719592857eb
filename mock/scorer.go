package mock

import "github.com/fwojciec/rescontext"

var _ rescontext.Scorer = (*Scorer)(nil)

// Scorer is a mock implementation of rescontext.Scorer.
type Scorer struct {
	ScoreFn func(query, text string) int
}

func (s *Scorer) Score(query, text string) int {
	return s.ScoreFn(query, text)
}
