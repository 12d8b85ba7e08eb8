package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/domscan"
)

// Ensure LoggingPage implements domscan.Page.
var _ domscan.Page = (*LoggingPage)(nil)

// LoggingPage wraps a Page with debug logging of sensor evaluations.
type LoggingPage struct {
	next   domscan.Page
	logger *slog.Logger
}

// NewLoggingPage creates a new LoggingPage.
func NewLoggingPage(next domscan.Page, logger *slog.Logger) *LoggingPage {
	return &LoggingPage{next: next, logger: logger}
}

// Metrics logs the reported geometry and delegates to the wrapped page.
func (p *LoggingPage) Metrics(ctx context.Context) (m domscan.Metrics, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("page metrics",
			"scrollY", m.ScrollY,
			"viewportHeight", m.ViewportHeight,
			"documentHeight", m.DocumentHeight,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Metrics(ctx)
}

// Snapshot logs the node count and delegates to the wrapped page.
func (p *LoggingPage) Snapshot(ctx context.Context) (forest []*domscan.NodeRecord, err error) {
	defer func(begin time.Time) {
		p.logger.Info("dom snapshot",
			"roots", len(forest),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Snapshot(ctx)
}

// ScrollTo logs the target offset and delegates to the wrapped page.
func (p *LoggingPage) ScrollTo(ctx context.Context, height float64) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("scroll",
			"height", height,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ScrollTo(ctx, height)
}

// WaitForSettle logs the wait duration and delegates to the wrapped page.
func (p *LoggingPage) WaitForSettle(ctx context.Context) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("dom settle",
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.WaitForSettle(ctx)
}

// VisibleElements logs the element count and delegates to the wrapped page.
func (p *LoggingPage) VisibleElements(ctx context.Context) (elems []*domscan.VisibleElement, err error) {
	defer func(begin time.Time) {
		p.logger.Info("visible elements",
			"count", len(elems),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.VisibleElements(ctx)
}

// Close delegates to the wrapped page.
func (p *LoggingPage) Close() error {
	return p.next.Close()
}
