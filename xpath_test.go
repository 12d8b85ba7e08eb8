package domscan_test

import (
	"testing"

	"github.com/fwojciec/domscan"
	"github.com/stretchr/testify/assert"
)

func TestXPath(t *testing.T) {
	t.Parallel()

	t.Run("id short-circuits to an attribute selector", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{
			Kind:  domscan.KindElement,
			Tag:   "button",
			Attrs: map[string]string{"id": "go"},
			Path: []domscan.PathStep{
				{Name: "div", Position: 1},
				{Name: "button", Position: 0},
			},
		}

		assert.Equal(t, "//*[@id='go']", domscan.XPath(n))
	})

	t.Run("positional predicate only with same-type siblings", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{
			Kind: domscan.KindElement,
			Tag:  "a",
			Path: []domscan.PathStep{
				{Name: "body", Position: 0},
				{Name: "div", Position: 2},
				{Name: "a", Position: 0},
			},
		}

		assert.Equal(t, "/body/div[2]/a", domscan.XPath(n))
	})

	t.Run("lone child carries no bracket", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{
			Kind: domscan.KindElement,
			Tag:  "span",
			Path: []domscan.PathStep{
				{Name: "section", Position: 0},
				{Name: "span", Position: 0},
			},
		}

		assert.Equal(t, "/section/span", domscan.XPath(n))
	})

	t.Run("text node resolves to its parent element's path", func(t *testing.T) {
		t.Parallel()

		// Text nodes contribute no step of their own, so the sensor's
		// path for a text node already ends at the parent element.
		n := &domscan.NodeRecord{
			Kind: domscan.KindText,
			Text: "hello",
			Path: []domscan.PathStep{
				{Name: "div", Position: 0},
				{Name: "p", Position: 3},
			},
		}

		assert.Equal(t, "/div/p[3]", domscan.XPath(n))
	})

	t.Run("text node never short-circuits on an inherited id", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{
			Kind:  domscan.KindText,
			Text:  "hello",
			Attrs: map[string]string{"id": "bogus"},
			Path: []domscan.PathStep{
				{Name: "p", Position: 0},
			},
		}

		assert.Equal(t, "/p", domscan.XPath(n))
	})

	t.Run("empty path yields empty locator", func(t *testing.T) {
		t.Parallel()

		n := &domscan.NodeRecord{Kind: domscan.KindElement, Tag: "div"}

		assert.Equal(t, "", domscan.XPath(n))
	})
}
