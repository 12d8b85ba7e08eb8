// Package rod implements the domscan.Page interface using go-rod browser
// automation. It is the primary driver; the chromedp package provides an
// alternative for callers already running a chromedp allocator.
package rod

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/domscan"
	"github.com/fwojciec/domscan/script"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Page implements domscan.Page at compile time.
var _ domscan.Page = (*Page)(nil)

// Page runs extraction sensors on a single rod page.
type Page struct {
	page *rod.Page
}

// NewPage opens a page on the browser, navigates it to the URL, and waits
// for the initial load. Close must be called when the Page is no longer
// needed.
func NewPage(ctx context.Context, browser *rod.Browser, url string) (*Page, error) {
	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating page: %w", err)
	}
	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("navigating to %s: %w", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		_ = page.Close()
		return nil, fmt.Errorf("waiting for load of %s: %w", url, err)
	}
	return &Page{page: page}, nil
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

// Close releases the page.
func (p *Page) Close() error {
	return p.page.Close()
}

// eval runs a sensor on the page and decodes its result into out. Promise
// results are awaited by rod before returning; out may be nil when the
// sensor has no result worth decoding.
func (p *Page) eval(ctx context.Context, js string, out interface{}, args ...interface{}) error {
	res, err := p.page.Context(ctx).Eval(js, args...)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	raw, err := json.Marshal(res.Value)
	if err != nil {
		return fmt.Errorf("encoding sensor result: %w", err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decoding sensor result: %w", err)
	}
	return nil
}
