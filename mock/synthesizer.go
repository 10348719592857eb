package mock

import (
	"context"

	"github.com/fwojciec/rescontext"
)

var _ rescontext.Synthesizer = (*Synthesizer)(nil)

// Synthesizer is a mock implementation of rescontext.Synthesizer.
type Synthesizer struct {
	SynthesizeFn func(ctx context.Context, query, researchContext string) (string, error)
}

func (s *Synthesizer) Synthesize(ctx context.Context, query, researchContext string) (string, error) {
	return s.SynthesizeFn(ctx, query, researchContext)
}
