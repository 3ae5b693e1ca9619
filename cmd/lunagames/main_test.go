package main_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/lunagames"
	main "github.com/fwojciec/lunagames/cmd/lunagames"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const claimsPage = `<!DOCTYPE html>
<html>
<body>
<main>
	<button aria-label="Claim Fallout 3">Claim</button>
	<button aria-label="Claim Control">Claim</button>
</main>
</body>
</html>`

const otherClaimsPage = `<!DOCTYPE html>
<html>
<body>
<main>
	<button aria-label="Claim Hades">Claim</button>
</main>
</body>
</html>`

func TestMain_Run(t *testing.T) {
	t.Parallel()

	t.Run("lists games from claims page", func(t *testing.T) {
		t.Parallel()

		userAgents := make(chan string, 1)
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userAgents <- r.Header.Get("User-Agent")
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write([]byte(claimsPage))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--url", server.URL, "list"}, stdout, stderr)

		require.NoError(t, err)
		assert.Equal(t, "1. Fallout 3\n2. Control\n", stdout.String())
		assert.Contains(t, <-userAgents, "Mozilla/5.0")
	})

	t.Run("lists games as JSON", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(claimsPage))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--url", server.URL, "list", "--json"}, stdout, stderr)
		require.NoError(t, err)

		var games []lunagames.Game
		require.NoError(t, json.Unmarshal(stdout.Bytes(), &games))
		assert.Equal(t, []string{"Fallout 3", "Control"}, lunagames.Titles(games))
		assert.Equal(t, lunagames.PlaceholderImageURL, games[0].ImageURL)
	})

	t.Run("returns error when site is unavailable", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--url", server.URL, "--retries", "0", "--log-level", "info", "list"}, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
		assert.Empty(t, stdout.String())
		assert.Contains(t, stderr.String(), "refresh failed")
	})

	t.Run("watch prints games on every change until canceled", func(t *testing.T) {
		t.Parallel()

		var requests atomic.Int64
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if requests.Add(1) == 1 {
				_, _ = w.Write([]byte(claimsPage))
				return
			}
			_, _ = w.Write([]byte(otherClaimsPage))
		}))
		defer server.Close()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		err := main.NewMain().Run(ctx, []string{"--url", server.URL, "watch", "--interval", "20ms"}, stdout, stderr)

		require.NoError(t, err)
		output := stdout.String()
		assert.Contains(t, output, "1. Fallout 3\n2. Control")
		assert.Contains(t, output, "1. Hades")
		assert.Equal(t, 2, bytes.Count(stdout.Bytes(), []byte("Updated ")))
		assert.GreaterOrEqual(t, requests.Load(), int64(3))
	})

	t.Run("returns error when no command given", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), nil, stdout, stderr)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no command specified")
	})

	t.Run("prints help", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--help"}, stdout, stderr)

		require.NoError(t, err)
		assert.Contains(t, stdout.String(), "lunagames")
		assert.Contains(t, stdout.String(), "watch")
	})

	t.Run("rejects unknown log level", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}

		err := main.NewMain().Run(context.Background(), []string{"--log-level", "loud", "list"}, stdout, stderr)

		require.Error(t, err)
	})
}
