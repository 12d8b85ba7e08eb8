package domscan

import "context"

// Page is a live browser page capable of answering layout and style
// queries. Implementations drive a real rendering engine over CDP; see
// rod/ and chromedp/. The DOM is only ever read, except for the viewport
// scrolling side effect of ScrollTo.
type Page interface {
	// Metrics reports the current scroll position, viewport height, and
	// document height.
	Metrics(ctx context.Context) (Metrics, error)

	// Snapshot walks the body subtree and reports a forest of raw node
	// facts in document order: every element, and every text node with
	// content. Geometry and hit-test results are relative to the current
	// viewport.
	Snapshot(ctx context.Context) ([]*NodeRecord, error)

	// ScrollTo smooth-scrolls to the offset, clamped to the maximum
	// scrollable height, and returns once scroll events have been quiet
	// for a debounce window.
	ScrollTo(ctx context.Context, height float64) error

	// WaitForSettle returns once the body subtree has seen no mutation
	// for the settle window. There is no upper bound on the wait beyond
	// the context.
	WaitForSettle(ctx context.Context) error

	// VisibleElements runs the secondary extraction over the whole tree,
	// judging visibility by computed style only.
	VisibleElements(ctx context.Context) ([]*VisibleElement, error)

	// Close releases the page and any driver resources tied to it.
	Close() error
}
