package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fwojciec/lunagames"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	state := deps.Source.Refresh(deps.Ctx)
	if state.Err != nil {
		return fmt.Errorf("refresh failed: %w", state.Err)
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(state.Games)
	}

	printGames(deps.Stdout, state)
	return nil
}

// printGames writes the games of state as a numbered list.
func printGames(w io.Writer, state lunagames.State) {
	switch {
	case state.Blocked:
		fmt.Fprintln(w, "No games found: the site returned a sign-in page.")
	case len(state.Games) == 0:
		fmt.Fprintln(w, "No free games found.")
	default:
		fmt.Fprintln(w, lunagames.FormatGames(state.Games))
	}
}
