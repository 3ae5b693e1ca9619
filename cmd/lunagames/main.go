package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/lunagames"
	"github.com/fwojciec/lunagames/extract"
	"github.com/fwojciec/lunagames/goquery"
	lunahttp "github.com/fwojciec/lunagames/http"
	"github.com/fwojciec/lunagames/refresh"
	lunaslog "github.com/fwojciec/lunagames/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Source overrides the wired game source. Used in tests.
	Source lunagames.GameSource
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("lunagames"),
		kong.Description("Show the free games currently claimable on Amazon Luna"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Vars{
			"url":      refresh.DefaultURL,
			"timeout":  refresh.DefaultTimeout.String(),
			"interval": refresh.DefaultInterval.String(),
		},
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'lunagames --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cli.LogLevel),
	}))

	if m.Source != nil {
		deps.Source = m.Source
	} else {
		fetcher := lunahttp.NewFetcher(
			lunahttp.WithTimeout(cli.Timeout),
			lunahttp.WithRateLimit(cli.Rate),
		)
		defer fetcher.Close()

		delays := refresh.DefaultRetryDelays()
		if n := max(cli.Retries, 0); n < len(delays) {
			delays = delays[:n]
		}

		deps.Source = &refresh.Coordinator{
			URL:         cli.URL,
			Fetcher:     lunaslog.NewLoggingFetcher(fetcher, deps.Logger),
			Extractor:   lunaslog.NewLoggingExtractor(extract.NewExtractor(goquery.NewParser()), deps.Logger),
			Timeout:     cli.Timeout,
			RetryDelays: delays,
			Logger:      deps.Logger,
		}
	}

	return kongCtx.Run(deps)
}

// parseLogLevel converts a string log level to slog.Level.
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
