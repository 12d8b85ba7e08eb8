// Package extract orchestrates DOM extraction over a live page. It
// coordinates chunk selection, scrolling, sensor snapshots, and
// serialization into indexed output blocks with selector maps.
package extract

import (
	"context"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/domscan"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Ensure Processor implements domscan.Processor at compile time.
var _ domscan.Processor = (*Processor)(nil)

// Processor runs extraction passes over a single page. It holds no state
// between calls; every extraction rebuilds its candidate list from the live
// DOM.
type Processor struct {
	Page domscan.Page
}

// NewProcessor creates a Processor bound to a page.
func NewProcessor(page domscan.Page) *Processor {
	return &Processor{Page: page}
}

// ProcessDom extracts the unseen chunk nearest the current scroll position,
// scrolling to it first. chunksSeen lists chunks already consumed by the
// caller across previous calls.
func (p *Processor) ProcessDom(ctx context.Context, chunksSeen []int) (*domscan.Extraction, error) {
	m, err := p.Page.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("page metrics: %w", err)
	}

	chunk, chunks, err := domscan.PickChunk(chunksSeen, m)
	if err != nil {
		return nil, err
	}

	ex, err := p.ProcessElements(ctx, chunk, true)
	if err != nil {
		return nil, err
	}
	ex.Chunks = chunks
	return ex, nil
}

// ProcessElements is the extraction primitive for a single chunk. When
// scrollToChunk is set the page is scrolled to the chunk's top offset and
// allowed to settle before the snapshot is taken.
func (p *Processor) ProcessElements(ctx context.Context, chunk int, scrollToChunk bool) (*domscan.Extraction, error) {
	m, err := p.Page.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("page metrics: %w", err)
	}

	if scrollToChunk {
		if err := p.Page.ScrollTo(ctx, domscan.ChunkOffset(chunk, m)); err != nil {
			return nil, fmt.Errorf("scroll to chunk %d: %w", chunk, err)
		}
	}

	forest, err := p.Page.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}

	candidates := domscan.CollectCandidates(forest, m.ViewportHeight)
	output, selectorMap := domscan.Serialize(candidates)

	return &domscan.Extraction{
		ID:           uuid.NewString(),
		OutputString: output,
		SelectorMap:  selectorMap,
		Chunk:        chunk,
		Chunks:       domscan.ChunkList(m),
		ContentHash:  contentHash(output),
	}, nil
}

// ProcessAllOfDom extracts every chunk concurrently without scrolling and
// concatenates the results in chunk order. Visibility stays relative to the
// current viewport, and selector indices restart at zero per chunk: a
// colliding index keeps the highest chunk's selector. Callers that need
// full-page coverage without loss drive ProcessElements chunk by chunk with
// scrolling enabled.
func (p *Processor) ProcessAllOfDom(ctx context.Context) (*domscan.Extraction, error) {
	m, err := p.Page.Metrics(ctx)
	if err != nil {
		return nil, fmt.Errorf("page metrics: %w", err)
	}
	chunks := domscan.ChunkList(m)

	results := make([]*domscan.Extraction, len(chunks))
	g, gctx := errgroup.WithContext(ctx)
	for _, chunk := range chunks {
		chunk := chunk
		g.Go(func() error {
			ex, err := p.ProcessElements(gctx, chunk, false)
			if err != nil {
				return err
			}
			results[chunk] = ex
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var output strings.Builder
	maps := make([]map[int]string, 0, len(results))
	for _, ex := range results {
		output.WriteString(ex.OutputString)
		maps = append(maps, ex.SelectorMap)
	}

	return &domscan.Extraction{
		ID:           uuid.NewString(),
		OutputString: output.String(),
		SelectorMap:  domscan.MergeSelectorMaps(maps),
		Chunks:       chunks,
		ContentHash:  contentHash(output.String()),
	}, nil
}

// contentHash fingerprints serialized output with xxhash so callers can
// detect that the page changed between extraction calls.
func contentHash(s string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(s))
}
