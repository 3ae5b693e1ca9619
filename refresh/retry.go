package refresh

import (
	"context"
	"time"

	"github.com/fwojciec/lunagames"
)

// FetchFunc is the signature for a fetch function.
type FetchFunc func(ctx context.Context, url string) (string, error)

// DefaultRetryDelays returns the backoff delays for fetch retries within a
// refresh cycle: 2s, then 5s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{2 * time.Second, 5 * time.Second}
}

// FetchWithRetry calls fetch until it succeeds, retrying after each delay.
// Each attempt is bounded by timeout. Invalid-request errors are not retried.
// Once ctx is done no further attempt starts and the last error is returned.
// The onRetry function, if provided, is called before each retry.
func FetchWithRetry(ctx context.Context, url string, fetch FetchFunc, timeout time.Duration, delays []time.Duration, onRetry func(attempt int, err error)) (string, error) {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if attempt > 0 && ctx.Err() != nil {
			break
		}
		body, err := fetchOnce(ctx, url, fetch, timeout)
		if err == nil {
			return body, nil
		}
		lastErr = err

		if attempt >= maxAttempts-1 || lunagames.ErrorCode(err) == lunagames.EINVALID {
			break
		}

		if ctx.Err() != nil {
			break
		}
		if onRetry != nil {
			onRetry(attempt+2, err)
		}

		timer := time.NewTimer(delays[attempt])
		select {
		case <-ctx.Done():
			timer.Stop()
			return "", lastErr
		case <-timer.C:
		}
	}

	return "", lastErr
}

func fetchOnce(ctx context.Context, url string, fetch FetchFunc, timeout time.Duration) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fetch(ctx, url)
}
