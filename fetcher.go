package lunagames

import "context"

// Fetcher retrieves page markup from URLs.
type Fetcher interface {
	// Fetch requests the URL and returns the response body.
	// Transport failures and non-success statuses are errors.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases resources held by the fetcher.
	Close() error
}
