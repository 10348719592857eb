package mock

import "github.com/fwojciec/rescontext"

var _ rescontext.Converter = (*Converter)(nil)

// Converter is a mock implementation of rescontext.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
