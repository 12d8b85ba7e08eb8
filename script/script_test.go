package script_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/domscan/script"
	"github.com/stretchr/testify/assert"
)

// The sensors are evaluated as expressions by both drivers; a stray
// trailing statement or a missing arrow would break evaluation at runtime,
// so the embedded shape is checked here.
func TestSensorsAreArrowFunctionExpressions(t *testing.T) {
	t.Parallel()

	sensors := map[string]string{
		"snapshot":         script.Snapshot,
		"visible elements": script.VisibleElements,
		"scroll to":        script.ScrollTo,
		"wait for settle":  script.WaitForSettle,
		"metrics":          script.Metrics,
	}

	for name, src := range sensors {
		src := src
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			assert.NotEmpty(t, src)
			assert.True(t, strings.HasPrefix(strings.TrimSpace(src), "("), "sensor must open a parameter list")
			assert.Contains(t, src, "=>")
		})
	}
}

func TestSnapshotReportsExpectedKeys(t *testing.T) {
	t.Parallel()

	// Keys must match the NodeRecord JSON tags on the Go side.
	for _, key := range []string{
		"kind", "tag", "text", "attrs", "rect", "topmost",
		"styleVisible", "childCount", "singleTextChild", "path", "children",
	} {
		assert.Contains(t, script.Snapshot, key)
	}
}

func TestVisibleElementsReportsExpectedKeys(t *testing.T) {
	t.Parallel()

	// Keys must match the VisibleElement JSON tags on the Go side.
	for _, key := range []string{
		"xpath", "text", "tagName", "isInteractive", "attributes", "boundingBox", "chunkId",
	} {
		assert.Contains(t, script.VisibleElements, key)
	}
}

func TestMetricsReportsExpectedKeys(t *testing.T) {
	t.Parallel()

	for _, key := range []string{"scrollY", "viewportHeight", "documentHeight"} {
		assert.Contains(t, script.Metrics, key)
	}
}
