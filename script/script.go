// Package script holds the JavaScript sensors evaluated inside the page.
//
// Each sensor is a self-contained arrow-function expression. The rod driver
// calls it directly via Eval (which awaits promise results); the chromedp
// driver wraps it in a call expression with JSON-encoded arguments. Sensors
// only report facts and trigger scrolling; all classification policy lives
// on the Go side.
package script

import _ "embed"

// Snapshot walks the body subtree and returns a forest of raw node facts
// in document order.
//
//go:embed snapshot.js
var Snapshot string

// VisibleElements runs the secondary full-tree extraction with
// computed-style visibility and its own interactivity rules.
//
//go:embed visible_elements.js
var VisibleElements string

// ScrollTo smooth-scrolls to a clamped offset; resolves after scroll
// events have been quiet for 200ms.
//
//go:embed scroll.js
var ScrollTo string

// WaitForSettle resolves after the body subtree has seen no mutation for
// two seconds.
//
//go:embed settle.js
var WaitForSettle string

// Metrics returns the current scroll position, viewport height, and
// document height.
//
//go:embed metrics.js
var Metrics string
