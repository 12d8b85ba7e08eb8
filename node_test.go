package domscan_test

import (
	"testing"

	"github.com/fwojciec/domscan"
	"github.com/stretchr/testify/assert"
)

func TestElementText(t *testing.T) {
	t.Parallel()

	t.Run("trims a text node's own content", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{Kind: domscan.KindText, Text: "  hello  "}

		assert.Equal(t, "hello", domscan.ElementText(n))
	})

	t.Run("joins descendant text nodes in document order", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{
			Kind: domscan.KindElement,
			Tag:  "p",
			Children: []*domscan.NodeRecord{
				{Kind: domscan.KindText, Text: "Hello "},
				{
					Kind: domscan.KindElement,
					Tag:  "em",
					Children: []*domscan.NodeRecord{
						{Kind: domscan.KindText, Text: "wild "},
					},
				},
				{Kind: domscan.KindText, Text: "world"},
			},
		}

		assert.Equal(t, "Hello wild world", domscan.ElementText(n))
	})

	t.Run("returns empty string for element without text descendants", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{
			Kind: domscan.KindElement,
			Tag:  "div",
			Children: []*domscan.NodeRecord{
				{Kind: domscan.KindElement, Tag: "img"},
			},
		}

		assert.Equal(t, "", domscan.ElementText(n))
	})
}

func TestRect_Area(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 200.0, domscan.Rect{Width: 20, Height: 10}.Area())
	assert.Equal(t, 0.0, domscan.Rect{Width: 20, Height: 0}.Area())
}
