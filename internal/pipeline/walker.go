package pipeline

import (
	"iter"
	"strconv"
	"strings"
	"sync/atomic"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ElementKind identifies one of the block elements that reach the PDF.
type ElementKind int

// Allow-listed element kinds. Everything else in the HTML tree is transparent.
const (
	H1 ElementKind = iota + 1
	H2
	H3
	Paragraph
	ListItem
	InlineCode
	CodeBlock
)

// Kinds lists every ElementKind in declaration order.
var Kinds = []ElementKind{H1, H2, H3, Paragraph, ListItem, InlineCode, CodeBlock}

// String returns the kind name.
func (k ElementKind) String() string {
	switch k {
	case H1:
		return "H1"
	case H2:
		return "H2"
	case H3:
		return "H3"
	case Paragraph:
		return "Paragraph"
	case ListItem:
		return "ListItem"
	case InlineCode:
		return "InlineCode"
	case CodeBlock:
		return "CodeBlock"
	}
	return "ElementKind(" + strconv.Itoa(int(k)) + ")"
}

// Element is an allow-listed node reduced to its kind and plain text.
type Element struct {
	Kind ElementKind
	Text string // Visible text, markup stripped, outer whitespace trimmed
}

// Classify maps an HTML element node to its ElementKind.
// Returns false for text nodes and for tags outside the allow-list.
func Classify(n *html.Node) (ElementKind, bool) {
	if n == nil || n.Type != html.ElementNode {
		return 0, false
	}
	switch n.DataAtom {
	case atom.H1:
		return H1, true
	case atom.H2:
		return H2, true
	case atom.H3:
		return H3, true
	case atom.P:
		return Paragraph, true
	case atom.Li:
		return ListItem, true
	case atom.Code:
		return InlineCode, true
	case atom.Pre:
		return CodeBlock, true
	}
	return 0, false
}

// Walk parses htmlContent and returns its allow-listed elements in document
// order. The parser recovers from malformed markup and never fails.
//
// An emitted element owns its subtree: a fenced block's <pre><code> yields one
// CodeBlock, and inline <code> inside a paragraph is part of that paragraph's
// text. Containers outside the allow-list (ul, blockquote, table, em...) are
// descended into without being emitted.
//
// The sequence is single-use; ranging over it a second time yields nothing.
func Walk(htmlContent string) iter.Seq[Element] {
	var consumed atomic.Bool

	return func(yield func(Element) bool) {
		if consumed.Swap(true) {
			return
		}

		doc, err := html.Parse(strings.NewReader(htmlContent))
		if err != nil {
			return
		}

		var visit func(n *html.Node) bool
		visit = func(n *html.Node) bool {
			if kind, ok := Classify(n); ok {
				return yield(Element{Kind: kind, Text: strings.TrimSpace(textContent(n))})
			}
			for c := n.FirstChild; c != nil; c = c.NextSibling {
				if !visit(c) {
					return false
				}
			}
			return true
		}
		visit(doc)
	}
}

// Elements collects Walk into a slice.
func Elements(htmlContent string) []Element {
	var out []Element
	for el := range Walk(htmlContent) {
		out = append(out, el)
	}
	return out
}

// textContent concatenates the text nodes under n.
func textContent(n *html.Node) string {
	var b strings.Builder
	var collect func(*html.Node)
	collect = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			collect(c)
		}
	}
	collect(n)
	return b.String()
}
