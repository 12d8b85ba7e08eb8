package domscan

import "context"

// Processor runs extraction passes over a single page. The concrete
// implementation lives in extract/; slog/ provides a logging decorator.
type Processor interface {
	// ProcessDom extracts the unseen chunk nearest the current scroll
	// position, scrolling to it first. Returns ENOTFOUND when every chunk
	// has been seen.
	ProcessDom(ctx context.Context, chunksSeen []int) (*Extraction, error)

	// ProcessAllOfDom extracts every chunk without scrolling and merges
	// the results. Selector indices restart per chunk, so the merged map
	// keeps the last entry for a colliding index.
	ProcessAllOfDom(ctx context.Context) (*Extraction, error)

	// ProcessElements is the extraction primitive for one chunk. When
	// scrollToChunk is set the page is scrolled to the chunk's top offset
	// before the snapshot.
	ProcessElements(ctx context.Context, chunk int, scrollToChunk bool) (*Extraction, error)
}
