// Package slog provides logging decorators for domscan interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/domscan"
)

// Ensure LoggingProcessor implements domscan.Processor.
var _ domscan.Processor = (*LoggingProcessor)(nil)

// LoggingProcessor wraps a Processor with per-operation logging.
type LoggingProcessor struct {
	next   domscan.Processor
	logger *slog.Logger
}

// NewLoggingProcessor creates a new LoggingProcessor.
func NewLoggingProcessor(next domscan.Processor, logger *slog.Logger) *LoggingProcessor {
	return &LoggingProcessor{next: next, logger: logger}
}

// ProcessDom logs the chosen chunk and output size, delegating to the
// wrapped processor.
func (p *LoggingProcessor) ProcessDom(ctx context.Context, chunksSeen []int) (ex *domscan.Extraction, err error) {
	defer func(begin time.Time) {
		p.logger.Info("process dom",
			"seen", len(chunksSeen),
			"chunk", extractionChunk(ex),
			"candidates", extractionSize(ex),
			"id", extractionID(ex),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ProcessDom(ctx, chunksSeen)
}

// ProcessAllOfDom logs the merged output size, delegating to the wrapped
// processor.
func (p *LoggingProcessor) ProcessAllOfDom(ctx context.Context) (ex *domscan.Extraction, err error) {
	defer func(begin time.Time) {
		p.logger.Info("process all of dom",
			"candidates", extractionSize(ex),
			"id", extractionID(ex),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ProcessAllOfDom(ctx)
}

// ProcessElements logs the chunk extraction, delegating to the wrapped
// processor.
func (p *LoggingProcessor) ProcessElements(ctx context.Context, chunk int, scrollToChunk bool) (ex *domscan.Extraction, err error) {
	defer func(begin time.Time) {
		p.logger.Info("process elements",
			"chunk", chunk,
			"scroll", scrollToChunk,
			"candidates", extractionSize(ex),
			"id", extractionID(ex),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.ProcessElements(ctx, chunk, scrollToChunk)
}

func extractionChunk(ex *domscan.Extraction) int {
	if ex == nil {
		return -1
	}
	return ex.Chunk
}

func extractionSize(ex *domscan.Extraction) int {
	if ex == nil {
		return 0
	}
	return len(ex.SelectorMap)
}

func extractionID(ex *domscan.Extraction) string {
	if ex == nil {
		return ""
	}
	return ex.ID
}
