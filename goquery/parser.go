// Package goquery implements lunagames.Parser using goquery's CSS selector engine.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/lunagames"
)

var _ lunagames.Parser = (*Parser)(nil)

// Parser parses HTML into lunagames.Node trees.
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses markup and returns the document root.
// The HTML5 parser recovers from malformed markup, so errors are rare.
func (p *Parser) Parse(markup string) (lunagames.Node, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, lunagames.Errorf(lunagames.EINVALID, "failed to parse HTML: %v", err)
	}
	return &node{sel: doc.Selection}, nil
}

// node adapts a single-element goquery.Selection to lunagames.Node.
type node struct {
	sel *goquery.Selection
}

// Find returns descendants matching selector. Invalid selectors match nothing.
func (n *node) Find(selector string) []lunagames.Node {
	matches := n.sel.Find(selector)
	if matches.Length() == 0 {
		return nil
	}
	nodes := make([]lunagames.Node, 0, matches.Length())
	matches.Each(func(_ int, sel *goquery.Selection) {
		nodes = append(nodes, &node{sel: sel})
	})
	return nodes
}

func (n *node) Attr(name string) (string, bool) {
	return n.sel.Attr(name)
}

func (n *node) Text() string {
	return n.sel.Text()
}
