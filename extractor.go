package lunagames

// Extraction holds the games found in one page of markup.
type Extraction struct {
	// Games are unique by title, in order of first occurrence.
	// An empty list is a valid result.
	Games []Game

	// Strategy names the strategy whose candidates produced Games.
	// Empty when no strategy found any candidate.
	Strategy string

	// Blocked reports that the markup was a sign-in or redirect wall
	// and extraction was skipped.
	Blocked bool
}

// Extractor finds game titles in raw page markup.
type Extractor interface {
	// Extract processes raw markup and returns the games found.
	// It never fails: malformed, empty, or truncated markup yields
	// an empty Extraction. Identical input yields identical output.
	Extract(markup string) *Extraction
}

// Node is an element of parsed markup.
// Lookups that match nothing return an empty slice, never an error.
type Node interface {
	// Find returns descendants matching a CSS selector, in document order.
	Find(selector string) []Node

	// Attr returns the value of the named attribute and whether it exists.
	Attr(name string) (string, bool)

	// Text returns the combined text of the node and its descendants.
	Text() string
}

// Parser parses raw markup into a queryable tree.
type Parser interface {
	// Parse returns the document root for markup.
	Parse(markup string) (Node, error)
}

// Strategy is one heuristic for locating candidate titles in a document.
type Strategy interface {
	// Name returns the strategy's identifier (e.g., "labeled-action").
	Name() string

	// Candidates returns raw candidate titles in document order.
	// Candidates are cleaned and filtered by the caller.
	Candidates(doc Node) []string
}
