// Package extract finds game titles in Luna claims page markup.
// It runs an ordered chain of strategies and keeps the candidates of the
// first strategy that finds any, then cleans, filters, and deduplicates them.
package extract

import (
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/lunagames"
)

// Ensure Extractor implements lunagames.Extractor at compile time.
var _ lunagames.Extractor = (*Extractor)(nil)

// SignInBodyLimit is the body length, in runes, below which a page that
// mentions signing in is treated as a sign-in wall.
const SignInBodyLimit = 5000

// signInMarkers identify sign-in and redirect pages.
var signInMarkers = []string{"Sign In", "Sign-In", "/ap/signin"}

// DefaultDenylist returns UI strings that are never game titles:
// navigation labels, legal and footer links, and the service's own brand.
func DefaultDenylist() []string {
	return []string{
		"Home", "Settings", "Library", "Play", "Claim", "Claims", "Games",
		"Channels", "Search", "Help", "Menu", "Store",
		"Sign In", "Sign Out", "Sign Up",
		"Amazon", "Amazon Luna", "Luna", "Luna+", "Prime Gaming", "Amazon Prime",
		"Privacy Notice", "Conditions of Use", "Cookie Preferences",
		"Interest-Based Ads", "Terms of Use", "Your Ads Privacy Choices",
		"Back to top", "See all", "Learn more", "Get started", "Try it free",
	}
}

// Extractor runs a chain of strategies over parsed markup.
// A zero Strategies or Denylist field disables that step, so construct
// Extractors with NewExtractor unless overriding the defaults.
type Extractor struct {
	Parser     lunagames.Parser
	Strategies []lunagames.Strategy
	Denylist   []string
}

// NewExtractor creates an Extractor with the default strategies and denylist.
func NewExtractor(parser lunagames.Parser) *Extractor {
	return &Extractor{
		Parser:     parser,
		Strategies: DefaultStrategies(),
		Denylist:   DefaultDenylist(),
	}
}

// Extract returns the games found in markup.
// Strategies are tried in order; the first one returning any candidate
// decides the result, even if all its candidates are later filtered out.
// Candidates from different strategies are never merged.
func (e *Extractor) Extract(markup string) *lunagames.Extraction {
	if IsSignInWall(markup) {
		return &lunagames.Extraction{Games: []lunagames.Game{}, Blocked: true}
	}

	doc, err := e.Parser.Parse(markup)
	if err != nil || doc == nil {
		return &lunagames.Extraction{Games: []lunagames.Game{}}
	}

	for _, s := range e.Strategies {
		candidates := s.Candidates(doc)
		if len(candidates) == 0 {
			continue
		}
		return &lunagames.Extraction{
			Games:    e.games(candidates),
			Strategy: s.Name(),
		}
	}

	return &lunagames.Extraction{Games: []lunagames.Game{}}
}

// games cleans candidates and turns the survivors into unique games.
func (e *Extractor) games(candidates []string) []lunagames.Game {
	denied := make(map[string]struct{}, len(e.Denylist))
	for _, d := range e.Denylist {
		denied[d] = struct{}{}
	}

	seen := make(map[string]struct{}, len(candidates))
	games := make([]lunagames.Game, 0, len(candidates))
	for _, c := range candidates {
		title, ok := CleanTitle(c)
		if !ok {
			continue
		}
		if _, ok := denied[title]; ok {
			continue
		}
		if _, ok := seen[title]; ok {
			continue
		}
		seen[title] = struct{}{}
		games = append(games, lunagames.NewGame(title))
	}
	return games
}

// CleanTitle collapses whitespace runs in a candidate and trims it.
// It reports false when the result falls outside the allowed title length.
func CleanTitle(candidate string) (string, bool) {
	title := strings.Join(strings.Fields(candidate), " ")
	n := utf8.RuneCountInString(title)
	if n < lunagames.MinTitleLength || n > lunagames.MaxTitleLength {
		return "", false
	}
	return title, true
}

// IsSignInWall reports whether body looks like a sign-in or redirect page
// rather than the claims listing: a short body mentioning signing in.
func IsSignInWall(body string) bool {
	if len(body) >= SignInBodyLimit*utf8.UTFMax {
		return false
	}
	if utf8.RuneCountInString(body) >= SignInBodyLimit {
		return false
	}
	for _, marker := range signInMarkers {
		if strings.Contains(body, marker) {
			return true
		}
	}
	return false
}
