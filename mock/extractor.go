package mock

import "github.com/fwojciec/rescontext"

var _ rescontext.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of rescontext.Extractor.
type Extractor struct {
	ExtractFn func(raw string) (string, error)
	NameFn    func() string
}

func (e *Extractor) Extract(raw string) (string, error) {
	return e.ExtractFn(raw)
}

func (e *Extractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}
