package goquery

import (
	"iter"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Class names used by the Shamela export layout.
const (
	classPageText = "PageText"
	classPageHead = "PageHead"
	classTitle    = "title"
)

// nodeKind is the role a child node of a page plays in the body text.
type nodeKind int

const (
	nodeOther nodeKind = iota
	nodeDecoration
	nodeHeading
	nodeParagraph
	nodeTextNode
)

// classify resolves the kind of a page child node. Page header decoration
// takes precedence over every other kind.
func classify(n *html.Node) nodeKind {
	switch n.Type {
	case html.TextNode:
		return nodeTextNode
	case html.ElementNode:
		switch {
		case hasClass(n, classPageHead):
			return nodeDecoration
		case n.DataAtom == atom.Span && hasClass(n, classTitle):
			return nodeHeading
		case n.DataAtom == atom.P:
			return nodeParagraph
		}
	}
	return nodeOther
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	for _, a := range n.Attr {
		if a.Key == "class" && slices.Contains(strings.Fields(a.Val), class) {
			return true
		}
	}
	return false
}

// isLabelBoundary reports whether n ends the value of a multi-node field.
func isLabelBoundary(n *html.Node) bool {
	return n.Type == html.ElementNode && (n.DataAtom == atom.Span || n.DataAtom == atom.P)
}

// siblingsUntil yields the siblings following n up to, but excluding, the
// first sibling for which stop returns true.
func siblingsUntil(n *html.Node, stop func(*html.Node) bool) iter.Seq[*html.Node] {
	return func(yield func(*html.Node) bool) {
		for s := n.NextSibling; s != nil && !stop(s); s = s.NextSibling {
			if !yield(s) {
				return
			}
		}
	}
}

// nodeText returns the trimmed text of a text node or the trimmed text of
// all descendants of an element.
func nodeText(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return strings.TrimSpace(b.String())
}
