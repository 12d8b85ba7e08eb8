// Package chromedp implements the domscan.Page interface using the
// chromedp CDP client. It exists for callers that already run a chromedp
// allocator; the rod package is the primary driver.
package chromedp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/chromedp/cdproto/runtime"
	"github.com/chromedp/chromedp"
	"github.com/fwojciec/domscan"
	"github.com/fwojciec/domscan/script"
)

// Ensure Page implements domscan.Page at compile time.
var _ domscan.Page = (*Page)(nil)

// Page runs extraction sensors on a chromedp browser tab. The tab context
// is created from the allocator context at construction and lives until
// Close; per-call contexts bound the individual sensor evaluations.
type Page struct {
	ctx    context.Context
	cancel context.CancelFunc
}

// NewPage creates a tab from the allocator context and navigates it to the
// URL. Close must be called when the Page is no longer needed.
func NewPage(allocCtx context.Context, url string) (*Page, error) {
	ctx, cancel := chromedp.NewContext(allocCtx)
	if err := chromedp.Run(ctx,
		chromedp.Navigate(url),
		chromedp.WaitReady("body"),
	); err != nil {
		cancel()
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	return &Page{ctx: ctx, cancel: cancel}, nil
}

// Metrics reports the current page geometry.
func (p *Page) Metrics(ctx context.Context) (domscan.Metrics, error) {
	var m domscan.Metrics
	if err := p.eval(ctx, script.Metrics, &m); err != nil {
		return domscan.Metrics{}, fmt.Errorf("page metrics: %w", err)
	}
	return m, nil
}

// Snapshot runs the snapshot sensor and decodes the reported node forest.
func (p *Page) Snapshot(ctx context.Context) ([]*domscan.NodeRecord, error) {
	var forest []*domscan.NodeRecord
	if err := p.eval(ctx, script.Snapshot, &forest); err != nil {
		return nil, fmt.Errorf("dom snapshot: %w", err)
	}
	return forest, nil
}

// ScrollTo smooth-scrolls to the clamped offset and returns after the
// in-page scroll debounce resolves.
func (p *Page) ScrollTo(ctx context.Context, height float64) error {
	if err := p.eval(ctx, script.ScrollTo, nil, height); err != nil {
		return fmt.Errorf("scrolling to %.0f: %w", height, err)
	}
	return nil
}

// WaitForSettle returns after the body subtree has been mutation-quiet for
// the settle window.
func (p *Page) WaitForSettle(ctx context.Context) error {
	if err := p.eval(ctx, script.WaitForSettle, nil); err != nil {
		return fmt.Errorf("waiting for dom settle: %w", err)
	}
	return nil
}

// VisibleElements runs the secondary extraction sensor.
func (p *Page) VisibleElements(ctx context.Context) ([]*domscan.VisibleElement, error) {
	var elems []*domscan.VisibleElement
	if err := p.eval(ctx, script.VisibleElements, &elems); err != nil {
		return nil, fmt.Errorf("visible elements: %w", err)
	}
	return elems, nil
}

// Close cancels the tab context, which closes the tab.
func (p *Page) Close() error {
	p.cancel()
	return nil
}

// eval evaluates a sensor as a call expression with JSON-encoded
// arguments, awaiting promise results. The caller's context bounds the
// wait; the tab context carries the CDP session.
func (p *Page) eval(ctx context.Context, js string, out interface{}, args ...interface{}) error {
	expr, err := callExpr(js, args...)
	if err != nil {
		return err
	}

	done := make(chan error, 1)
	go func() {
		done <- chromedp.Run(p.ctx, chromedp.Evaluate(expr, out, awaitPromise))
	}()
	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// callExpr wraps a function expression into an immediate call with the
// arguments serialized as JSON literals.
func callExpr(js string, args ...interface{}) (string, error) {
	encoded := make([]string, 0, len(args))
	for _, arg := range args {
		raw, err := json.Marshal(arg)
		if err != nil {
			return "", fmt.Errorf("encoding sensor argument: %w", err)
		}
		encoded = append(encoded, string(raw))
	}
	return "(" + js + ")(" + strings.Join(encoded, ", ") + ")", nil
}

// awaitPromise makes Evaluate resolve promise results instead of returning
// the pending promise object.
func awaitPromise(p *runtime.EvaluateParams) *runtime.EvaluateParams {
	return p.WithAwaitPromise(true)
}
