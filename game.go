package lunagames

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// PlaceholderImageURL is the image used for games without artwork.
const PlaceholderImageURL = "https://luna.amazon.com/favicon.ico"

// Title length bounds, in runes, after cleaning.
const (
	MinTitleLength = 3
	MaxTitleLength = 70
)

// Game represents one free game on offer.
// Two games are the same game when their titles are equal.
type Game struct {
	Title    string `json:"title"`
	ImageURL string `json:"image"`
}

// NewGame returns a Game with the placeholder image.
func NewGame(title string) Game {
	return Game{Title: title, ImageURL: PlaceholderImageURL}
}

// Validate returns an error if the game contains invalid fields.
func (g Game) Validate() error {
	if g.Title == "" {
		return Errorf(EINVALID, "game title required")
	}
	if g.Title != strings.TrimSpace(g.Title) {
		return Errorf(EINVALID, "game title %q not trimmed", g.Title)
	}
	if n := utf8.RuneCountInString(g.Title); n < MinTitleLength || n > MaxTitleLength {
		return Errorf(EINVALID, "game title %q has length %d, want %d-%d", g.Title, n, MinTitleLength, MaxTitleLength)
	}
	if g.ImageURL == "" {
		return Errorf(EINVALID, "game image URL required")
	}
	return nil
}

// Titles returns the titles of games in order.
func Titles(games []Game) []string {
	if len(games) == 0 {
		return nil
	}
	titles := make([]string, len(games))
	for i, g := range games {
		titles[i] = g.Title
	}
	return titles
}

// FormatGames formats games as a numbered list, one game per line.
func FormatGames(games []Game) string {
	if len(games) == 0 {
		return ""
	}

	var b strings.Builder
	for i, g := range games {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(strconv.Itoa(i + 1))
		b.WriteString(". ")
		b.WriteString(g.Title)
	}
	return b.String()
}
