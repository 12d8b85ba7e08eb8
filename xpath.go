package domscan

import (
	"fmt"
	"strings"
)

// XPath returns the locator for a record.
//
// An element with an id short-circuits to an attribute selector. The id is
// not verified unique; callers relying on the short-circuit own that
// guarantee. Otherwise the ancestor steps are joined downward into a
// positional path, anchored at whatever ancestor the sensor's walk reached
// (which is /html only when the walk arrived there naturally). Text nodes
// resolve to their parent element's path.
func XPath(n *NodeRecord) string {
	if n.Kind == KindElement {
		if id := n.Attrs["id"]; id != "" {
			return fmt.Sprintf("//*[@id='%s']", id)
		}
	}
	if len(n.Path) == 0 {
		return ""
	}

	var b strings.Builder
	for _, step := range n.Path {
		b.WriteByte('/')
		b.WriteString(step.Name)
		if step.Position > 0 {
			fmt.Fprintf(&b, "[%d]", step.Position)
		}
	}
	return b.String()
}
