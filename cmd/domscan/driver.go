package main

import (
	"context"
	"log/slog"

	cdp "github.com/chromedp/chromedp"
	"github.com/fwojciec/domscan"
	domscanchromedp "github.com/fwojciec/domscan/chromedp"
	domscanrod "github.com/fwojciec/domscan/rod"
	domscanslog "github.com/fwojciec/domscan/slog"
)

// openPage opens a live page on the selected driver. The returned cleanup
// closes the page and tears down the driver's browser.
func openPage(ctx context.Context, driver, url string, logger *slog.Logger) (domscan.Page, func(), error) {
	switch driver {
	case "chromedp":
		allocCtx, allocCancel := cdp.NewExecAllocator(ctx, cdp.DefaultExecAllocatorOptions[:]...)
		page, err := domscanchromedp.NewPage(allocCtx, url)
		if err != nil {
			allocCancel()
			return nil, nil, err
		}
		cleanup := func() {
			_ = page.Close()
			allocCancel()
		}
		return domscanslog.NewLoggingPage(page, logger), cleanup, nil
	default:
		manager, err := domscanrod.NewManager()
		if err != nil {
			return nil, nil, err
		}
		page, err := manager.OpenPage(ctx, url)
		if err != nil {
			_ = manager.Close()
			return nil, nil, err
		}
		cleanup := func() {
			_ = page.Close()
			_ = manager.Close()
		}
		return domscanslog.NewLoggingPage(page, logger), cleanup, nil
	}
}
