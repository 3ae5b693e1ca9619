package extract

import (
	"encoding/json"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fwojciec/lunagames"
)

// Strategy names.
const (
	StrategyLabeledAction = "labeled-action"
	StrategyMetadata      = "metadata"
	StrategyContentRegion = "content-region"
	StrategyListItem      = "list-item"
	StrategyTextBlock     = "text-block"
)

// DefaultActionPrefixes are the accessibility label prefixes of claim buttons.
var DefaultActionPrefixes = []string{"Claim ", "Play "}

// DefaultMarkers appear in the text of game entries in the content region.
var DefaultMarkers = []string{"Release Date", "Developer", "Publisher"}

// Selectors shared by the strategies.
const (
	contentRegionSelector = `main, [role="main"], #main-content, article`
	listItemSelector      = `li, [role="listitem"]`
	textBlockSelector     = `span, strong, td`
)

var (
	// metadataTitleRe matches an inline "title": "..." field, including
	// escaped characters inside the string literal.
	metadataTitleRe = regexp.MustCompile(`"title"\s*:\s*"((?:[^"\\]|\\.)*)"`)

	// entryDelimiterRe ends the title part of a content region entry.
	// The earliest match wins.
	entryDelimiterRe = regexp.MustCompile(`\.|–| - |:| Release`)
)

// DefaultStrategies returns the strategy chain in priority order,
// from the most precise signal to the noisiest fallback.
func DefaultStrategies() []lunagames.Strategy {
	return []lunagames.Strategy{
		LabeledAction(DefaultActionPrefixes...),
		Metadata(),
		ContentRegion(DefaultMarkers...),
		ListItems(),
		TextBlocks(),
	}
}

// strategy adapts a function to lunagames.Strategy.
type strategy struct {
	name string
	fn   func(doc lunagames.Node) []string
}

func (s *strategy) Name() string {
	return s.name
}

func (s *strategy) Candidates(doc lunagames.Node) []string {
	return s.fn(doc)
}

// LabeledAction finds elements whose aria-label starts with one of prefixes,
// such as "Claim Fallout 3", and returns the label without the prefix.
func LabeledAction(prefixes ...string) lunagames.Strategy {
	return &strategy{
		name: StrategyLabeledAction,
		fn: func(doc lunagames.Node) []string {
			var candidates []string
			for _, el := range doc.Find("[aria-label]") {
				label, _ := el.Attr("aria-label")
				for _, prefix := range prefixes {
					rest, ok := strings.CutPrefix(label, prefix)
					if !ok {
						continue
					}
					if rest = strings.TrimSpace(rest); rest != "" {
						candidates = append(candidates, rest)
					}
					break
				}
			}
			return candidates
		},
	}
}

// Metadata scans script blocks, including JSON-LD, for inline title fields
// and returns their decoded values. Values that are not valid JSON strings
// are skipped.
func Metadata() lunagames.Strategy {
	return &strategy{
		name: StrategyMetadata,
		fn: func(doc lunagames.Node) []string {
			var candidates []string
			for _, script := range doc.Find("script") {
				for _, m := range metadataTitleRe.FindAllStringSubmatch(script.Text(), -1) {
					var title string
					if err := json.Unmarshal([]byte(`"`+m[1]+`"`), &title); err != nil {
						continue
					}
					if title != "" {
						candidates = append(candidates, title)
					}
				}
			}
			return candidates
		},
	}
}

// ContentRegion looks inside the first main content container for list
// items mentioning one of markers, e.g. "Fallout 3 – Release Date: 2008".
// The text before the first delimiter is the candidate.
func ContentRegion(markers ...string) lunagames.Strategy {
	return &strategy{
		name: StrategyContentRegion,
		fn: func(doc lunagames.Node) []string {
			regions := doc.Find(contentRegionSelector)
			if len(regions) == 0 {
				return nil
			}
			var candidates []string
			for _, item := range regions[0].Find(listItemSelector) {
				text := strings.Join(strings.Fields(item.Text()), " ")
				if !containsAny(text, markers) {
					continue
				}
				title := strings.TrimSpace(entryDelimiterRe.Split(text, 2)[0])
				if title != "" {
					candidates = append(candidates, title)
				}
			}
			return candidates
		},
	}
}

// ListItems returns the text of every list item in the document.
func ListItems() lunagames.Strategy {
	return &strategy{
		name: StrategyListItem,
		fn: func(doc lunagames.Node) []string {
			var candidates []string
			for _, item := range doc.Find(listItemSelector) {
				if text := strings.TrimSpace(item.Text()); text != "" {
					candidates = append(candidates, text)
				}
			}
			return candidates
		},
	}
}

// TextBlocks returns inline text elements whose text starts with an
// uppercase letter.
func TextBlocks() lunagames.Strategy {
	return &strategy{
		name: StrategyTextBlock,
		fn: func(doc lunagames.Node) []string {
			var candidates []string
			for _, el := range doc.Find(textBlockSelector) {
				text := strings.TrimSpace(el.Text())
				first, _ := utf8.DecodeRuneInString(text)
				if text != "" && unicode.IsUpper(first) {
					candidates = append(candidates, text)
				}
			}
			return candidates
		},
	}
}

func containsAny(s string, substrs []string) bool {
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
