package main

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// Dependencies holds shared state for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Snapshot SnapshotCmd `cmd:"" help:"Extract an indexed block of visible and interactive content"`
	Elements ElementsCmd `cmd:"" help:"List visible elements with geometry and interactivity flags"`
}

// SnapshotCmd is the "snapshot" subcommand.
type SnapshotCmd struct {
	URL string `arg:"" help:"Page URL"`

	All     bool          `help:"Extract every chunk without scrolling (lossy index merge)"`
	Chunk   int           `default:"-1" help:"Extract a specific chunk instead of the nearest unseen one"`
	Seen    []int         `short:"s" help:"Chunks already seen (repeatable)"`
	Driver  string        `default:"rod" enum:"rod,chromedp" help:"Browser driver"`
	Timeout time.Duration `default:"60s" help:"Overall extraction timeout"`
	JSON    bool          `help:"Emit the full extraction result as JSON"`
}

// ElementsCmd is the "elements" subcommand.
type ElementsCmd struct {
	URL string `arg:"" help:"Page URL"`

	Static    bool          `help:"Fetch raw HTML and skip the browser (markup-level visibility only)"`
	ChunkSize int           `default:"3" help:"Number of viewport bands for chunk labels"`
	Driver    string        `default:"rod" enum:"rod,chromedp" help:"Browser driver"`
	Timeout   time.Duration `default:"60s" help:"Overall extraction timeout"`
}
