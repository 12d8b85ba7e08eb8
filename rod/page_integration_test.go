//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/domscan"
	"github.com/fwojciec/domscan/extract"
	"github.com/fwojciec/domscan/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixturePage = `<!doctype html>
<html>
<head><style>body { margin: 0 }</style></head>
<body>
	<h1>Fixture</h1>
	<button id="go">Go</button>
	<a href="/next">Next page</a>
	<button disabled>Nope</button>
	<div style="display:none"><button id="ghost">Ghost</button></div>
	<div style="height: 3000px"></div>
	<p id="deep">Bottom text</p>
</body>
</html>`

func fixtureServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(fixturePage))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func openFixture(t *testing.T, ctx context.Context) *rod.Page {
	t.Helper()
	srv := fixtureServer(t)

	manager, err := rod.NewManager()
	require.NoError(t, err)
	t.Cleanup(func() { _ = manager.Close() })

	page, err := manager.OpenPage(ctx, srv.URL)
	require.NoError(t, err)
	t.Cleanup(func() { _ = page.Close() })
	return page
}

func TestPage_Integration_Metrics(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page := openFixture(t, ctx)

	m, err := page.Metrics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0.0, m.ScrollY)
	assert.Greater(t, m.ViewportHeight, 0.0)
	assert.Greater(t, m.DocumentHeight, m.ViewportHeight, "fixture must be scrollable")
}

func TestPage_Integration_SnapshotAndExtraction(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page := openFixture(t, ctx)

	require.NoError(t, page.WaitForSettle(ctx))

	ex, err := extract.NewProcessor(page).ProcessElements(ctx, 0, false)
	require.NoError(t, err)

	assert.Contains(t, ex.OutputString, `<button id="go">Go</button>`)
	assert.Contains(t, ex.OutputString, "Fixture")
	assert.NotContains(t, ex.OutputString, "Nope", "disabled button must be excluded")
	assert.NotContains(t, ex.OutputString, "Ghost", "display:none subtree must be excluded")
	assert.NotContains(t, ex.OutputString, "Bottom text", "content below the viewport must be excluded")

	var goSelector string
	for _, sel := range ex.SelectorMap {
		if sel == "//*[@id='go']" {
			goSelector = sel
		}
	}
	assert.Equal(t, "//*[@id='go']", goSelector, "id short-circuit selector expected")
}

func TestPage_Integration_ScrollTo(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page := openFixture(t, ctx)

	require.NoError(t, page.ScrollTo(ctx, 2500))

	m, err := page.Metrics(ctx)
	require.NoError(t, err)
	assert.Greater(t, m.ScrollY, 0.0)

	forest, err := page.Snapshot(ctx)
	require.NoError(t, err)
	candidates := domscan.CollectCandidates(forest, m.ViewportHeight)
	out, _ := domscan.Serialize(candidates)
	assert.Contains(t, out, "Bottom text", "scrolled content must become visible")
}

func TestPage_Integration_VisibleElements(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	page := openFixture(t, ctx)

	elems, err := page.VisibleElements(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, elems)

	var button *domscan.VisibleElement
	for _, el := range elems {
		if el.TagName == "button" && el.Attributes["id"] == "go" {
			button = el
		}
	}
	require.NotNil(t, button, "go button must be listed")
	assert.True(t, button.IsInteractive)
	assert.Equal(t, "//*[@id='go']", button.XPath)
	assert.Greater(t, button.BoundingBox.Area(), 0.0)

	// Style-only visibility: the deep paragraph is below the viewport but
	// not hidden, so the secondary pass reports it anyway.
	var deep *domscan.VisibleElement
	for _, el := range elems {
		if el.Attributes["id"] == "deep" {
			deep = el
		}
	}
	assert.NotNil(t, deep, "off-screen but unhidden element must be listed")
}

func TestManager_Integration_RecyclesAfterBudget(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	srv := fixtureServer(t)

	manager, err := rod.NewManager(rod.WithRecycleAfter(2))
	require.NoError(t, err)
	defer manager.Close()

	for i := 0; i < 3; i++ {
		page, err := manager.OpenPage(ctx, srv.URL)
		require.NoError(t, err)
		_, err = page.Metrics(ctx)
		assert.NoError(t, err)
		require.NoError(t, page.Close())
	}
}
