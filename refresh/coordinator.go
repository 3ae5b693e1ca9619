// Package refresh keeps a cached list of free games up to date.
// A Coordinator fetches the claims page on a schedule, extracts games, and
// publishes immutable state snapshots. Failed refreshes never replace the
// last good list.
package refresh

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/lunagames"
	"golang.org/x/sync/errgroup"
)

// DefaultURL is the Luna page listing claimable games.
const DefaultURL = "https://luna.amazon.com/claims/home"

// DefaultInterval is the time between scheduled refreshes.
const DefaultInterval = 12 * time.Hour

// DefaultTimeout bounds the fetch of a single refresh cycle.
const DefaultTimeout = 20 * time.Second

var _ lunagames.GameSource = (*Coordinator)(nil)

// Coordinator implements lunagames.GameSource.
//
// Refresh cycles never overlap: timer-driven and manual refreshes queue on
// the same lock. Listeners run synchronously on the refreshing goroutine and
// must not call Refresh or Stop. Stop waits for the schedule goroutine, which
// may be the one running the listener.
type Coordinator struct {
	URL       string
	Fetcher   lunagames.Fetcher
	Extractor lunagames.Extractor

	// Timeout bounds each fetch attempt. Defaults to DefaultTimeout.
	Timeout time.Duration

	// RetryDelays are the waits between fetch attempts within one cycle.
	// Nil uses DefaultRetryDelays; an empty slice disables retries.
	RetryDelays []time.Duration

	// Logger receives refresh outcomes. Defaults to discarding.
	Logger *slog.Logger

	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	cycle sync.Mutex
	state atomic.Pointer[lunagames.State]

	mu        sync.Mutex
	listeners []*subscription
	cancel    context.CancelFunc
	group     *errgroup.Group
}

type subscription struct {
	fn lunagames.Listener
}

// Current returns the latest published state.
func (c *Coordinator) Current() lunagames.State {
	if s := c.state.Load(); s != nil {
		return *s
	}
	return lunagames.State{}
}

// Refresh fetches the page, extracts games, and publishes the new state.
// On failure the previous games are kept and the error is recorded.
// Listeners are notified when the games changed.
func (c *Coordinator) Refresh(ctx context.Context) lunagames.State {
	c.cycle.Lock()
	defer c.cycle.Unlock()
	return c.refresh(ctx, false)
}

// scheduledRefresh runs a timer-driven cycle. Once ctx is canceled no new
// fetch attempt starts, but an attempt already running is not interrupted.
func (c *Coordinator) scheduledRefresh(ctx context.Context) {
	c.cycle.Lock()
	defer c.cycle.Unlock()
	if ctx.Err() != nil {
		return
	}
	c.refresh(ctx, true)
}

// refresh runs one cycle. The caller holds the cycle lock.
func (c *Coordinator) refresh(ctx context.Context, detached bool) lunagames.State {
	prev := c.Current()
	next := prev
	next.LastAttempt = c.now()

	result, err := c.fetchAndExtract(ctx, detached)
	if err != nil {
		next.Err = err
		c.state.Store(&next)
		c.logger().Warn("refresh failed",
			"url", c.URL,
			"available", next.Available(),
			"err", err,
		)
		return next
	}

	next.Games = result.Games
	if next.Games == nil {
		next.Games = []lunagames.Game{}
	}
	next.Strategy = result.Strategy
	next.Blocked = result.Blocked
	next.Fingerprint = Fingerprint(next.Games)
	next.LastSuccess = c.now()
	next.Err = nil
	c.state.Store(&next)

	changed := !prev.Available() || prev.Fingerprint != next.Fingerprint
	c.logger().Info("refresh",
		"url", c.URL,
		"games", len(next.Games),
		"strategy", next.Strategy,
		"blocked", next.Blocked,
		"changed", changed,
		"duration", next.LastSuccess.Sub(next.LastAttempt),
	)
	if len(next.Games) == 0 {
		c.logger().Warn("refresh found no games", "url", c.URL, "blocked", next.Blocked)
	}

	if changed {
		c.notify(next)
	}
	return next
}

// fetchAndExtract fetches the page, retrying failed attempts, and extracts
// the body. A panic in the fetcher or extractor is returned as an EINTERNAL error.
// When detached, each attempt ignores cancellation of ctx while ctx still
// governs the waits between attempts.
func (c *Coordinator) fetchAndExtract(ctx context.Context, detached bool) (result *lunagames.Extraction, err error) {
	defer func() {
		if r := recover(); r != nil {
			result, err = nil, lunagames.Errorf(lunagames.EINTERNAL, "refresh panicked: %v", r)
		}
	}()

	delays := c.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	onRetry := func(attempt int, err error) {
		c.logger().Info("retry fetch", "url", c.URL, "attempt", attempt, "err", err)
	}
	fetch := c.Fetcher.Fetch
	if detached {
		fetch = func(ctx context.Context, url string) (string, error) {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout())
			defer cancel()
			return c.Fetcher.Fetch(ctx, url)
		}
	}
	body, err := FetchWithRetry(ctx, c.URL, fetch, c.timeout(), delays, onRetry)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", c.URL, err)
	}

	result = c.Extractor.Extract(body)
	if result == nil {
		result = &lunagames.Extraction{}
	}
	return result, nil
}

// OnUpdate registers listener and returns a function that removes it.
// Listeners are called in registration order.
func (c *Coordinator) OnUpdate(listener lunagames.Listener) (remove func()) {
	sub := &subscription{fn: listener}

	c.mu.Lock()
	c.listeners = append(c.listeners, sub)
	c.mu.Unlock()

	return func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		for i, s := range c.listeners {
			if s == sub {
				c.listeners = append(c.listeners[:i:i], c.listeners[i+1:]...)
				return
			}
		}
	}
}

func (c *Coordinator) notify(state lunagames.State) {
	c.mu.Lock()
	subs := make([]*subscription, len(c.listeners))
	copy(subs, c.listeners)
	c.mu.Unlock()

	for _, s := range subs {
		s.fn(state)
	}
}

// Start runs the first refresh, waits for it, then refreshes every interval
// until Stop is called or ctx is canceled. The returned state holds the
// first refresh's outcome; a host may treat its error as fatal since there
// is no earlier data to fall back on.
func (c *Coordinator) Start(ctx context.Context, interval time.Duration) (lunagames.State, error) {
	if interval <= 0 {
		return c.Current(), lunagames.Errorf(lunagames.EINVALID, "refresh interval must be positive, got %s", interval)
	}

	c.mu.Lock()
	if c.cancel != nil {
		c.mu.Unlock()
		return c.Current(), lunagames.Errorf(lunagames.ECONFLICT, "coordinator already started")
	}
	loopCtx, cancel := context.WithCancel(ctx)
	g := &errgroup.Group{}
	c.cancel, c.group = cancel, g
	c.mu.Unlock()

	state := c.Refresh(ctx)

	g.Go(func() error {
		c.run(loopCtx, interval)
		return nil
	})

	return state, nil
}

// run refreshes on every tick until ctx is done.
// Stopping never aborts a fetch midway but cuts short any retry backoff.
func (c *Coordinator) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if ctx.Err() != nil {
				return
			}
			c.scheduledRefresh(ctx)
		}
	}
}

// Stop cancels scheduled refreshes and waits for the schedule to exit.
// A fetch already in flight completes and its refresh publishes first.
// Pending retries are abandoned and the last error is published.
// No fetch starts after Stop is called.
// Stop must not be called from a Listener.
func (c *Coordinator) Stop() error {
	c.mu.Lock()
	cancel, g := c.cancel, c.group
	c.cancel, c.group = nil, nil
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	return g.Wait()
}

func (c *Coordinator) timeout() time.Duration {
	if c.Timeout > 0 {
		return c.Timeout
	}
	return DefaultTimeout
}

func (c *Coordinator) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c *Coordinator) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.New(slog.DiscardHandler)
}

// Fingerprint returns a hash identifying the ordered content of games.
func Fingerprint(games []lunagames.Game) uint64 {
	d := xxhash.New()
	for _, g := range games {
		_, _ = d.WriteString(g.Title)
		_, _ = d.Write([]byte{0})
		_, _ = d.WriteString(g.ImageURL)
		_, _ = d.Write([]byte{0})
	}
	return d.Sum64()
}
