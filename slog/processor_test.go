package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/domscan"
	"github.com/fwojciec/domscan/mock"
	domscanslog "github.com/fwojciec/domscan/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingProcessor_ProcessDom(t *testing.T) {
	t.Parallel()

	t.Run("logs chunk, candidates, and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Processor{
			ProcessDomFn: func(ctx context.Context, chunksSeen []int) (*domscan.Extraction, error) {
				return &domscan.Extraction{
					ID:          "ex-1",
					Chunk:       2,
					SelectorMap: map[int]string{0: "/p", 1: "/a"},
				}, nil
			},
		}

		p := domscanslog.NewLoggingProcessor(inner, logger)
		ex, err := p.ProcessDom(context.Background(), []int{0, 1})

		require.NoError(t, err)
		assert.Equal(t, 2, ex.Chunk)
		output := buf.String()
		assert.Contains(t, output, "process dom")
		assert.Contains(t, output, "seen=2")
		assert.Contains(t, output, "chunk=2")
		assert.Contains(t, output, "candidates=2")
		assert.Contains(t, output, "id=ex-1")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Processor{
			ProcessDomFn: func(ctx context.Context, chunksSeen []int) (*domscan.Extraction, error) {
				return nil, domscan.Errorf(domscan.ENOTFOUND, "no unseen chunks remaining: []")
			},
		}

		p := domscanslog.NewLoggingProcessor(inner, logger)
		_, err := p.ProcessDom(context.Background(), []int{0})

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "chunk=-1")
		assert.Contains(t, output, "err=")
		assert.Contains(t, output, "not_found")
	})
}

func TestLoggingProcessor_ProcessAllOfDom(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Processor{
		ProcessAllOfDomFn: func(ctx context.Context) (*domscan.Extraction, error) {
			return &domscan.Extraction{ID: "ex-2", SelectorMap: map[int]string{0: "/p"}}, nil
		},
	}

	p := domscanslog.NewLoggingProcessor(inner, logger)
	ex, err := p.ProcessAllOfDom(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "ex-2", ex.ID)
	output := buf.String()
	assert.Contains(t, output, "process all of dom")
	assert.Contains(t, output, "candidates=1")
}

func TestLoggingProcessor_ProcessElements(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.Processor{
		ProcessElementsFn: func(ctx context.Context, chunk int, scrollToChunk bool) (*domscan.Extraction, error) {
			return &domscan.Extraction{ID: "ex-3", Chunk: chunk}, nil
		},
	}

	p := domscanslog.NewLoggingProcessor(inner, logger)
	ex, err := p.ProcessElements(context.Background(), 1, true)

	require.NoError(t, err)
	assert.Equal(t, 1, ex.Chunk)
	output := buf.String()
	assert.Contains(t, output, "process elements")
	assert.Contains(t, output, "chunk=1")
	assert.Contains(t, output, "scroll=true")
}
