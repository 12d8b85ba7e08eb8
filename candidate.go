package domscan

import "strings"

// Tags that make an element interactive regardless of role.
var interactiveTags = map[string]bool{
	"a":        true,
	"button":   true,
	"details":  true,
	"embed":    true,
	"input":    true,
	"label":    true,
	"menu":     true,
	"menuitem": true,
	"object":   true,
	"select":   true,
	"textarea": true,
	"summary":  true,
}

// Roles that make an element interactive.
var interactiveRoles = map[string]bool{
	"button":      true,
	"menu":        true,
	"menuitem":    true,
	"link":        true,
	"checkbox":    true,
	"radio":       true,
	"slider":      true,
	"tab":         true,
	"tabpanel":    true,
	"textbox":     true,
	"combobox":    true,
	"grid":        true,
	"listbox":     true,
	"option":      true,
	"progressbar": true,
	"scrollbar":   true,
	"searchbox":   true,
	"switch":      true,
	"tree":        true,
	"treeitem":    true,
	"spinbutton":  true,
	"tooltip":     true,
}

// Roles accepted on the non-standard aria-role attribute.
var interactiveARIARoles = map[string]bool{
	"menu":     true,
	"menuitem": true,
	"button":   true,
}

// Embed-like tags that never count as leaves, with or without children.
var leafDenyTags = map[string]bool{
	"svg":    true,
	"iframe": true,
	"script": true,
	"style":  true,
	"link":   true,
}

// IsInteractive reports whether an element record matches the interactive
// tag or role allow-lists.
func IsInteractive(n *NodeRecord) bool {
	if n.Kind != KindElement {
		return false
	}
	if interactiveTags[n.Tag] {
		return true
	}
	if interactiveRoles[n.Attrs["role"]] {
		return true
	}
	return interactiveARIARoles[n.Attrs["aria-role"]]
}

// IsLeaf reports whether an element record is a leaf: no children at all,
// or exactly one text-node child, and a tag outside the deny-list.
func IsLeaf(n *NodeRecord) bool {
	if n.Kind != KindElement || leafDenyTags[n.Tag] {
		return false
	}
	return n.ChildCount == 0 || n.SingleTextChild
}

// IsActive reports whether an element record is enabled for interaction.
// Elements carrying disabled, hidden, or aria-disabled="true" are excluded.
func IsActive(n *NodeRecord) bool {
	if _, ok := n.Attrs["disabled"]; ok {
		return false
	}
	if _, ok := n.Attrs["hidden"]; ok {
		return false
	}
	return n.Attrs["aria-disabled"] != "true"
}

// IsVisible reports whether a record passes the geometry, hit-test, and
// native-visibility gates for a viewport of the given height. The box must
// have area and its top edge must fall within the viewport.
func IsVisible(n *NodeRecord, viewportHeight float64) bool {
	if n.Rect.Area() <= 0 {
		return false
	}
	if n.Rect.Y < 0 || n.Rect.Y > viewportHeight {
		return false
	}
	return n.Topmost && n.StyleVisible
}

// IsCandidate reports whether a record is worth reporting: visible text,
// a visible active interactive element, or a visible active leaf.
func IsCandidate(n *NodeRecord, viewportHeight float64) bool {
	switch n.Kind {
	case KindText:
		return strings.TrimSpace(n.Text) != "" && IsVisible(n, viewportHeight)
	case KindElement:
		if !IsInteractive(n) && !IsLeaf(n) {
			return false
		}
		return IsActive(n) && IsVisible(n, viewportHeight)
	}
	return false
}

// CollectCandidates replays the page traversal over the reported forest:
// an explicit LIFO worklist seeded with the body's direct children, each
// popped node's children pushed in reverse, which yields a pre-order,
// left-to-right visitation. A node that qualifies is terminal; its subtree
// is not descended into, so a candidate's text is reported once, on the
// candidate's own line.
func CollectCandidates(forest []*NodeRecord, viewportHeight float64) []*NodeRecord {
	stack := make([]*NodeRecord, 0, len(forest))
	for i := len(forest) - 1; i >= 0; i-- {
		stack = append(stack, forest[i])
	}

	var candidates []*NodeRecord
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if IsCandidate(n, viewportHeight) {
			candidates = append(candidates, n)
			continue
		}
		for i := len(n.Children) - 1; i >= 0; i-- {
			stack = append(stack, n.Children[i])
		}
	}
	return candidates
}
