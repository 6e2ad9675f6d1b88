// Package extract turns fetched HTML into the plain text shown to the model.
package extract

import (
	"errors"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoContent is returned when a page has no readable content elements.
var ErrNoContent = errors.New("no readable content")

// Page chrome and non-visible elements, dropped with their whole subtree.
var skipped = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Style:    true,
	atom.Noscript: true,
	atom.Header:   true,
	atom.Footer:   true,
	atom.Nav:      true,
	atom.Aside:    true,
}

// Elements whose text makes up the main content.
var content = map[atom.Atom]bool{
	atom.H1:         true,
	atom.H2:         true,
	atom.H3:         true,
	atom.P:          true,
	atom.Li:         true,
	atom.Blockquote: true,
}

// MainText extracts the text of heading, paragraph, list-item and blockquote
// elements in document order, joined by single spaces and cut to maxChars
// characters. Nested content elements contribute their text again, once per
// element. maxChars <= 0 disables truncation.
func MainText(htmlContent string, maxChars int) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", err
	}

	var blocks []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if skipped[n.DataAtom] {
				return
			}
			if content[n.DataAtom] {
				if text := nodeText(n); text != "" {
					blocks = append(blocks, text)
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	if len(blocks) == 0 {
		return "", ErrNoContent
	}
	return Truncate(strings.Join(blocks, " "), maxChars), nil
}

// nodeText collects the visible text under n with whitespace collapsed.
func nodeText(n *html.Node) string {
	var parts []string

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.ElementNode:
			if skipped[n.DataAtom] {
				return
			}
		case html.TextNode:
			parts = append(parts, strings.Fields(n.Data)...)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)

	return strings.Join(parts, " ")
}

// Truncate cuts s to at most maxChars runes without regard to word boundaries.
func Truncate(s string, maxChars int) string {
	if maxChars <= 0 || len(s) <= maxChars {
		return s
	}
	n := 0
	for i := range s {
		if n == maxChars {
			return s[:i]
		}
		n++
	}
	return s
}
