package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/lunagames"
)

// Ensure LoggingExtractor implements lunagames.Extractor.
var _ lunagames.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with logging.
// Pages that yield no games are logged at warn level, since that usually
// means the page markup changed.
type LoggingExtractor struct {
	next   lunagames.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next lunagames.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(markup string) *lunagames.Extraction {
	begin := time.Now()
	result := e.next.Extract(markup)
	if result == nil {
		result = &lunagames.Extraction{}
	}

	strategy := result.Strategy
	if strategy == "" {
		strategy = "(none)"
	}
	level := slog.LevelInfo
	msg := "extract"
	switch {
	case result.Blocked:
		level, msg = slog.LevelWarn, "extract blocked by sign-in page"
	case len(result.Games) == 0:
		level, msg = slog.LevelWarn, "extract found no games"
	}
	e.logger.Log(context.Background(), level, msg,
		"strategy", strategy,
		"games", len(result.Games),
		"bytes", len(markup),
		"duration", time.Since(begin),
	)
	return result
}
