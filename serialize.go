package domscan

import (
	"fmt"
	"sort"
	"strings"
)

// Attributes always serialized when present, in output order. Every aria-*
// and data-* attribute is serialized as well.
var essentialAttrs = []string{"id", "class", "href", "src"}

// Extraction is the result of one extraction call.
//
// SelectorMap entries correspond 1:1, in index order, to lines of
// OutputString. Selectors are meaningful only until the next DOM mutation;
// there is no cross-call identity for an element. ContentHash fingerprints
// OutputString so callers can detect that the page changed between calls.
type Extraction struct {
	ID           string         `json:"id"`
	OutputString string         `json:"outputString"`
	SelectorMap  map[int]string `json:"selectorMap"`
	Chunk        int            `json:"chunk"`
	Chunks       []int          `json:"chunks"`
	ContentHash  string         `json:"contentHash"`
}

// Serialize assigns each candidate a dense index in traversal order and
// renders the indexed text block alongside the index-to-XPath selector map.
// Each candidate is rendered exactly once, so the per-call XPath synthesis
// runs once per node by construction.
func Serialize(candidates []*NodeRecord) (string, map[int]string) {
	var b strings.Builder
	selectorMap := make(map[int]string, len(candidates))

	for i, n := range candidates {
		switch n.Kind {
		case KindText:
			fmt.Fprintf(&b, "%d:%s\n", i, strings.TrimSpace(n.Text))
		case KindElement:
			attrs := FormatAttrs(n.Attrs)
			if attrs != "" {
				attrs = " " + attrs
			}
			fmt.Fprintf(&b, "%d:<%s%s>%s</%s>\n", i, n.Tag, attrs, ElementText(n), n.Tag)
		}
		selectorMap[i] = XPath(n)
	}
	return b.String(), selectorMap
}

// FormatAttrs renders the essential attributes of an element as
// space-joined name="value" pairs. Live-DOM attribute order is not portable
// across engines, so output order is fixed: the allow-list first, then
// aria-* and data-* sorted by name.
func FormatAttrs(attrs map[string]string) string {
	var parts []string
	for _, name := range essentialAttrs {
		if v, ok := attrs[name]; ok {
			parts = append(parts, fmt.Sprintf("%s=%q", name, v))
		}
	}

	var prefixed []string
	for name := range attrs {
		if strings.HasPrefix(name, "aria-") || strings.HasPrefix(name, "data-") {
			prefixed = append(prefixed, name)
		}
	}
	sort.Strings(prefixed)
	for _, name := range prefixed {
		parts = append(parts, fmt.Sprintf("%s=%q", name, attrs[name]))
	}
	return strings.Join(parts, " ")
}

// MergeSelectorMaps merges per-chunk selector maps in the order given.
// Indices restart at zero in every chunk, so a colliding index keeps the
// entry from the last map merged. This is lossy and deliberate; callers
// that need collision-free selectors extract chunk by chunk.
func MergeSelectorMaps(maps []map[int]string) map[int]string {
	merged := make(map[int]string)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}
