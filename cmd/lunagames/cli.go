package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/lunagames"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger
	Source lunagames.GameSource
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	URL      string        `default:"${url}" env:"LUNAGAMES_URL" help:"Claims page URL"`
	Timeout  time.Duration `short:"t" default:"${timeout}" env:"LUNAGAMES_TIMEOUT" help:"Fetch timeout"`
	Rate     time.Duration `default:"0s" env:"LUNAGAMES_RATE" help:"Minimum time between requests (0 disables)"`
	Retries  int           `default:"2" env:"LUNAGAMES_RETRIES" help:"Fetch retries per refresh (at most 2)"`
	LogLevel string        `default:"warn" enum:"debug,info,warn,error" env:"LUNAGAMES_LOG_LEVEL" help:"Log level (debug, info, warn, error)"`

	List  ListCmd  `cmd:"" help:"Fetch the claims page once and print free games"`
	Watch WatchCmd `cmd:"" help:"Refresh periodically and print games whenever they change"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	JSON bool `help:"Print games as JSON"`
}

// WatchCmd is the "watch" subcommand.
type WatchCmd struct {
	Interval time.Duration `short:"i" default:"${interval}" env:"LUNAGAMES_INTERVAL" help:"Time between refreshes"`
}
