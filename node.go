package domscan

import "strings"

// NodeKind identifies the DOM node type of a record.
type NodeKind string

// Node kinds reported by the page sensor.
const (
	KindElement NodeKind = "element"
	KindText    NodeKind = "text"
)

// Rect is a viewport-relative bounding box.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Area returns the box area in square pixels.
func (r Rect) Area() float64 {
	return r.Width * r.Height
}

// PathStep is one element segment of a node's ancestor chain, ordered from
// the highest ancestor reached down to the node itself. Position is the
// 1-based index among same-type, same-name siblings, or 0 when the node has
// no such siblings and the positional predicate is omitted.
type PathStep struct {
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// NodeRecord holds the raw facts the page sensor reports for one traversed
// node. Records form a tree mirroring the body subtree and are valid for a
// single extraction call only; nothing here survives a DOM mutation.
type NodeRecord struct {
	Kind NodeKind `json:"kind"`

	// Tag is the lower-case tag name. Empty for text nodes.
	Tag string `json:"tag"`

	// Text is the raw node content for text nodes. Elements carry no text
	// of their own; see ElementText.
	Text string `json:"text"`

	// Attrs holds every attribute of an element node.
	Attrs map[string]string `json:"attrs"`

	// Rect is the bounding box relative to the current viewport. For text
	// nodes it is measured on the text range.
	Rect Rect `json:"rect"`

	// Topmost reports whether the node (the parent element, for text
	// nodes) was the top hit at one or more of the five sample points.
	// The sensor only hit-tests nodes whose box lies within the viewport.
	Topmost bool `json:"topmost"`

	// StyleVisible reports the engine's native visibility check, covering
	// CSS visibility and opacity. Measured on the parent for text nodes.
	StyleVisible bool `json:"styleVisible"`

	// ChildCount is the number of child nodes of any type in the live DOM,
	// which may exceed len(Children) since the sensor omits comments.
	ChildCount int `json:"childCount"`

	// SingleTextChild reports that the element's only child is a text node.
	SingleTextChild bool `json:"singleTextChild"`

	// Path holds the element steps from the highest ancestor reached down
	// to this node. Text nodes are counted during the walk but contribute
	// no step, so their path resolves to the parent element.
	Path []PathStep `json:"path"`

	// Children are the reported child records in document order.
	Children []*NodeRecord `json:"children"`
}

// Metrics describes the page geometry at the time of an extraction call.
type Metrics struct {
	ScrollY        float64 `json:"scrollY"`
	ViewportHeight float64 `json:"viewportHeight"`
	DocumentHeight float64 `json:"documentHeight"`
}

// ElementText returns the trimmed text content of a record, assembled from
// its descendant text nodes in document order.
func ElementText(n *NodeRecord) string {
	if n.Kind == KindText {
		return strings.TrimSpace(n.Text)
	}
	var b strings.Builder
	var walk func(*NodeRecord)
	walk = func(r *NodeRecord) {
		for _, c := range r.Children {
			if c.Kind == KindText {
				b.WriteString(c.Text)
			} else {
				walk(c)
			}
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
