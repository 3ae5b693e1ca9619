package mock

import "github.com/fwojciec/lunagames"

var _ lunagames.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of lunagames.Extractor.
type Extractor struct {
	ExtractFn func(markup string) *lunagames.Extraction
}

func (e *Extractor) Extract(markup string) *lunagames.Extraction {
	return e.ExtractFn(markup)
}
