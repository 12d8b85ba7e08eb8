package mock

import (
	"context"

	"github.com/fwojciec/domscan"
)

var _ domscan.Page = (*Page)(nil)

// Page is a mock implementation of domscan.Page.
type Page struct {
	MetricsFn         func(ctx context.Context) (domscan.Metrics, error)
	SnapshotFn        func(ctx context.Context) ([]*domscan.NodeRecord, error)
	ScrollToFn        func(ctx context.Context, height float64) error
	WaitForSettleFn   func(ctx context.Context) error
	VisibleElementsFn func(ctx context.Context) ([]*domscan.VisibleElement, error)
	CloseFn           func() error
}

func (p *Page) Metrics(ctx context.Context) (domscan.Metrics, error) {
	return p.MetricsFn(ctx)
}

func (p *Page) Snapshot(ctx context.Context) ([]*domscan.NodeRecord, error) {
	return p.SnapshotFn(ctx)
}

func (p *Page) ScrollTo(ctx context.Context, height float64) error {
	return p.ScrollToFn(ctx, height)
}

func (p *Page) WaitForSettle(ctx context.Context) error {
	return p.WaitForSettleFn(ctx)
}

func (p *Page) VisibleElements(ctx context.Context) ([]*domscan.VisibleElement, error) {
	return p.VisibleElementsFn(ctx)
}

func (p *Page) Close() error {
	return p.CloseFn()
}
