// Package goquery lists page elements from statically fetched HTML.
//
// Without a layout engine there is no geometry, hit-testing, or computed
// style: visibility is judged from markup alone and bounding boxes are
// zero. This exists for server-rendered pages where launching a browser is
// wasteful; use the rod or chromedp drivers when fidelity matters.
package goquery

import (
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/domscan"
	"golang.org/x/net/html"
)

// Tags skipped entirely, subtree included.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
}

// Interactivity rules mirror the live secondary-extraction sensor.
var interactiveTags = map[string]bool{
	"a":        true,
	"button":   true,
	"input":    true,
	"select":   true,
	"textarea": true,
	"option":   true,
	"label":    true,
}

var interactiveRoles = map[string]bool{
	"button":    true,
	"link":      true,
	"checkbox":  true,
	"radio":     true,
	"menuitem":  true,
	"tab":       true,
	"switch":    true,
	"textbox":   true,
	"combobox":  true,
	"option":    true,
	"searchbox": true,
	"slider":    true,
}

// Elements parses HTML and returns flat descriptors for every element in
// the body that is not hidden at the markup level. Hidden subtrees are
// pruned: descendants of a hidden element are not reported.
func Elements(rawHTML string) ([]*domscan.VisibleElement, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, domscan.Errorf(domscan.EINVALID, "parsing html: %v", err)
	}

	body := doc.Find("body")
	if body.Length() == 0 {
		return nil, nil
	}

	var out []*domscan.VisibleElement
	walk(body.Get(0), &out)
	return out, nil
}

func walk(n *html.Node, out *[]*domscan.VisibleElement) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || skipTags[c.Data] {
			continue
		}
		if !markupVisible(c) {
			continue
		}
		*out = append(*out, descriptor(c))
		walk(c, out)
	}
}

// markupVisible rejects the hidden attribute and inline display:none or
// visibility:hidden. Stylesheets are invisible to a static pass.
func markupVisible(n *html.Node) bool {
	for _, a := range n.Attr {
		switch a.Key {
		case "hidden":
			return false
		case "style":
			style := strings.ReplaceAll(strings.ToLower(a.Val), " ", "")
			if strings.Contains(style, "display:none") || strings.Contains(style, "visibility:hidden") {
				return false
			}
		}
	}
	return true
}

func descriptor(n *html.Node) *domscan.VisibleElement {
	attrs := make(map[string]string, len(n.Attr))
	for _, a := range n.Attr {
		attrs[a.Key] = a.Val
	}
	return &domscan.VisibleElement{
		XPath:         xpathFor(n, attrs),
		Text:          collectText(n),
		TagName:       n.Data,
		IsInteractive: isInteractive(n.Data, attrs),
		Attributes:    attrs,
	}
}

// xpathFor reuses the primary XPath synthesis by rebuilding the node's
// ancestor steps from the parsed tree. The live secondary sensor brackets
// every segment; locators from this pass match the primary synthesis
// instead.
func xpathFor(n *html.Node, attrs map[string]string) string {
	return domscan.XPath(&domscan.NodeRecord{
		Kind:  domscan.KindElement,
		Tag:   n.Data,
		Attrs: attrs,
		Path:  pathSteps(n),
	})
}

func pathSteps(n *html.Node) []domscan.PathStep {
	var steps []domscan.PathStep
	for cur := n; cur != nil && cur.Type == html.ElementNode; cur = cur.Parent {
		position := 0
		if parent := cur.Parent; parent != nil {
			index, sameType := 0, 0
			for sib := parent.FirstChild; sib != nil; sib = sib.NextSibling {
				if sib.Type == html.ElementNode && sib.Data == cur.Data {
					sameType++
					if sib == cur {
						index = sameType
					}
				}
			}
			if sameType > 1 {
				position = index
			}
		}
		steps = append([]domscan.PathStep{{Name: cur.Data, Position: position}}, steps...)
	}
	return steps
}

func isInteractive(tag string, attrs map[string]string) bool {
	if interactiveTags[tag] {
		return true
	}
	if interactiveRoles[attrs["role"]] {
		return true
	}
	if _, ok := attrs["onclick"]; ok {
		return true
	}
	if v, ok := attrs["tabindex"]; ok {
		if idx, err := strconv.Atoi(v); err == nil && idx >= 0 {
			return true
		}
	}
	return false
}

// collectText gathers the trimmed descendant text, joining fragments with
// single spaces the way rendered innerText collapses whitespace.
func collectText(n *html.Node) string {
	var parts []string
	var visit func(*html.Node)
	visit = func(node *html.Node) {
		for c := node.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.TextNode:
				if t := strings.TrimSpace(c.Data); t != "" {
					parts = append(parts, t)
				}
			case html.ElementNode:
				if !skipTags[c.Data] {
					visit(c)
				}
			}
		}
	}
	visit(n)
	return strings.Join(parts, " ")
}
