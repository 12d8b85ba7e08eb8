package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/domscan"
	domscangoquery "github.com/fwojciec/domscan/goquery"
	domscanhttp "github.com/fwojciec/domscan/http"
)

// Run lists the page's visible elements as JSON descriptors.
func (c *ElementsCmd) Run(deps *Dependencies) error {
	ctx, cancel := context.WithTimeout(deps.Ctx, c.Timeout)
	defer cancel()

	elems, err := c.elements(ctx, deps)
	if err != nil {
		fmt.Fprintln(deps.Stderr, domscan.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(elems)
}

// elements gathers the descriptor list from the static or live path.
func (c *ElementsCmd) elements(ctx context.Context, deps *Dependencies) ([]*domscan.VisibleElement, error) {
	if c.Static {
		fetcher := domscanhttp.NewFetcher()
		rawHTML, err := fetcher.Fetch(ctx, c.URL)
		if err != nil {
			return nil, err
		}
		return domscangoquery.Elements(rawHTML)
	}

	page, cleanup, err := openPage(ctx, c.Driver, c.URL, deps.Logger)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	if err := page.WaitForSettle(ctx); err != nil {
		return nil, err
	}
	elems, err := page.VisibleElements(ctx)
	if err != nil {
		return nil, err
	}

	m, err := page.Metrics(ctx)
	if err != nil {
		return nil, err
	}
	domscan.AssignChunks(elems, m.ViewportHeight, c.ChunkSize)
	return elems, nil
}
