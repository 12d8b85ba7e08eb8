package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/domscan"
	"github.com/fwojciec/domscan/extract"
	domscanslog "github.com/fwojciec/domscan/slog"
)

// Run extracts an indexed content block from the page and writes it to
// stdout.
func (c *SnapshotCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	page, cleanup, err := openPage(ctx, c.Driver, c.URL, deps.Logger)
	if err != nil {
		fmt.Fprintln(deps.Stderr, domscan.ErrorMessage(err))
		return err
	}
	defer cleanup()

	if err := page.WaitForSettle(ctx); err != nil {
		fmt.Fprintln(deps.Stderr, domscan.ErrorMessage(err))
		return err
	}

	var processor domscan.Processor = domscanslog.NewLoggingProcessor(
		extract.NewProcessor(page), deps.Logger,
	)

	var ex *domscan.Extraction
	switch {
	case c.All:
		ex, err = processor.ProcessAllOfDom(ctx)
	case c.Chunk >= 0:
		ex, err = processor.ProcessElements(ctx, c.Chunk, true)
	default:
		ex, err = processor.ProcessDom(ctx, c.Seen)
	}
	if err != nil {
		fmt.Fprintln(deps.Stderr, domscan.ErrorMessage(err))
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(ex)
	}
	fmt.Fprint(deps.Stdout, ex.OutputString)
	return nil
}
