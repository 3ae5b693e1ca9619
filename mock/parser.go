package mock

import "github.com/fwojciec/lunagames"

var _ lunagames.Parser = (*Parser)(nil)

// Parser is a mock implementation of lunagames.Parser.
type Parser struct {
	ParseFn func(markup string) (lunagames.Node, error)
}

func (p *Parser) Parse(markup string) (lunagames.Node, error) {
	return p.ParseFn(markup)
}

var _ lunagames.Node = (*Node)(nil)

// Node is a mock implementation of lunagames.Node.
type Node struct {
	FindFn func(selector string) []lunagames.Node
	AttrFn func(name string) (string, bool)
	TextFn func() string
}

func (n *Node) Find(selector string) []lunagames.Node {
	return n.FindFn(selector)
}

func (n *Node) Attr(name string) (string, bool) {
	return n.AttrFn(name)
}

func (n *Node) Text() string {
	return n.TextFn()
}

var _ lunagames.Strategy = (*Strategy)(nil)

// Strategy is a mock implementation of lunagames.Strategy.
type Strategy struct {
	NameFn       func() string
	CandidatesFn func(doc lunagames.Node) []string
}

func (s *Strategy) Name() string {
	return s.NameFn()
}

func (s *Strategy) Candidates(doc lunagames.Node) []string {
	return s.CandidatesFn(doc)
}
