//go:build integration

package chromedp_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	cdp "github.com/chromedp/chromedp"
	"github.com/fwojciec/domscan/chromedp"
	"github.com/fwojciec/domscan/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_Integration_Extraction(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!doctype html>
<html><body>
	<button id="go">Go</button>
	<p>Some copy</p>
</body></html>`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	allocCtx, allocCancel := cdp.NewExecAllocator(ctx, cdp.DefaultExecAllocatorOptions[:]...)
	defer allocCancel()

	page, err := chromedp.NewPage(allocCtx, srv.URL)
	require.NoError(t, err)
	defer page.Close()

	require.NoError(t, page.WaitForSettle(ctx))

	ex, err := extract.NewProcessor(page).ProcessElements(ctx, 0, false)
	require.NoError(t, err)

	assert.Contains(t, ex.OutputString, `<button id="go">Go</button>`)
	assert.Contains(t, ex.OutputString, "Some copy")
}
