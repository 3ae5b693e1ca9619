package main

import (
	"fmt"

	"github.com/fwojciec/lunagames"
)

// Run executes the watch command. It prints the games after the first
// refresh and again whenever they change, until the context is canceled.
func (c *WatchCmd) Run(deps *Dependencies) error {
	remove := deps.Source.OnUpdate(func(state lunagames.State) {
		fmt.Fprintf(deps.Stdout, "Updated %s (%d games)\n", state.LastSuccess.Format("2006-01-02 15:04:05"), len(state.Games))
		printGames(deps.Stdout, state)
	})
	defer remove()

	state, err := deps.Source.Start(deps.Ctx, c.Interval)
	if err != nil {
		return err
	}
	if !state.Available() {
		_ = deps.Source.Stop()
		return fmt.Errorf("initial refresh failed: %w", state.Err)
	}

	<-deps.Ctx.Done()
	return deps.Source.Stop()
}
