// Package domscan extracts a structured, indexed representation of a web
// page's visible and interactive content, in viewport-sized chunks, for
// consumption by a downstream decision process (e.g. an LLM choosing an
// element to act on).
//
// Geometry, hit-testing, and computed style only exist inside a rendering
// engine, so extraction is split in two: thin JavaScript sensors (script/)
// that report raw facts from a live page, and Go code that owns candidate
// qualification, XPath synthesis, chunk arithmetic, and serialization.
//
// This package contains domain types, the pure algorithm, and the Page
// interface that binds to a live browser. Implementations live in
// subdirectories named after their primary dependency (rod/, chromedp/,
// goquery/). Orchestration lives in extract/.
package domscan
