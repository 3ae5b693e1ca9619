package lunagames

import (
	"context"
	"time"
)

// State is a snapshot of a GameSource.
// Snapshots are immutable once published; callers must not modify Games.
type State struct {
	// Games is the result of the last successful refresh.
	// Nil until the first successful refresh.
	Games []Game

	// Err is the error of the last refresh, nil if it succeeded.
	Err error

	LastAttempt time.Time
	LastSuccess time.Time

	// Strategy and Blocked describe the last successful extraction.
	Strategy string
	Blocked  bool

	// Fingerprint identifies the content of Games.
	Fingerprint uint64
}

// Available reports whether any refresh has ever succeeded.
// Hosts keep showing Games across failures once this is true.
func (s State) Available() bool {
	return !s.LastSuccess.IsZero()
}

// Listener is called with the new state after a refresh changes the games.
type Listener func(State)

// GameSource serves the current list of free games and keeps it fresh.
type GameSource interface {
	// Refresh performs one fetch-and-extract cycle and returns the new state.
	// Failures are recorded in State.Err and never returned or panicked.
	// Concurrent calls run one after another.
	Refresh(ctx context.Context) State

	// Current returns the latest published state without blocking.
	Current() State

	// OnUpdate registers a listener and returns a function that removes it.
	OnUpdate(listener Listener) (remove func())

	// Start performs the first refresh, waits for it, and schedules further
	// refreshes every interval. The first refresh's outcome is in the
	// returned state.
	Start(ctx context.Context, interval time.Duration) (State, error)

	// Stop cancels scheduled refreshes. A refresh already running completes.
	Stop() error
}
