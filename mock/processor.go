package mock

import (
	"context"

	"github.com/fwojciec/domscan"
)

var _ domscan.Processor = (*Processor)(nil)

// Processor is a mock implementation of domscan.Processor.
type Processor struct {
	ProcessDomFn      func(ctx context.Context, chunksSeen []int) (*domscan.Extraction, error)
	ProcessAllOfDomFn func(ctx context.Context) (*domscan.Extraction, error)
	ProcessElementsFn func(ctx context.Context, chunk int, scrollToChunk bool) (*domscan.Extraction, error)
}

func (p *Processor) ProcessDom(ctx context.Context, chunksSeen []int) (*domscan.Extraction, error) {
	return p.ProcessDomFn(ctx, chunksSeen)
}

func (p *Processor) ProcessAllOfDom(ctx context.Context) (*domscan.Extraction, error) {
	return p.ProcessAllOfDomFn(ctx)
}

func (p *Processor) ProcessElements(ctx context.Context, chunk int, scrollToChunk bool) (*domscan.Extraction, error) {
	return p.ProcessElementsFn(ctx, chunk, scrollToChunk)
}
