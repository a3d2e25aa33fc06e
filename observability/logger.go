// Package observability provides logging, metrics and tracing for route
// engine runs.
//
//   - Structured logging via slog
//   - Metrics via OpenTelemetry
//   - Tracing via OpenTelemetry
//
// Everything is opt-in: nil loggers are ignored and the Noop types stand in
// when metrics or tracing are disabled.
package observability

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"
)

// NewLogger builds a slog.Logger writing to w. level is one of
// debug|info|warn|error; format is json or text.
func NewLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	opts := &slog.HandlerOptions{Level: lvl}

	switch strings.ToLower(format) {
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	case "text", "":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("unsupported log format: %s", format)
	}
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// EnrichLogger adds run context to a logger.
//
//	enriched := EnrichLogger(logger, "run-123", "duo", "AA")
//	enriched.Info("searching") // includes run_id, mode, source
func EnrichLogger(logger *slog.Logger, runID, mode, source string) *slog.Logger {
	if logger == nil {
		return nil
	}
	return logger.With(
		slog.String("run_id", runID),
		slog.String("mode", mode),
		slog.String("source", source),
	)
}

// LogRunStart logs the start of a run.
func LogRunStart(logger *slog.Logger, budget, capacity int) {
	if logger == nil {
		return
	}
	logger.Info("search starting",
		slog.Int("budget", budget),
		slog.Int("capacity", capacity),
	)
}

// LogRunComplete logs a finished run.
func LogRunComplete(logger *slog.Logger, score, popped, recorded int, elapsed time.Duration) {
	if logger == nil {
		return
	}
	logger.Info("search completed",
		slog.Int("score", score),
		slog.Int("states", popped),
		slog.Int("recorded", recorded),
		slog.Float64("duration_ms", float64(elapsed.Microseconds())/1000),
	)
}

// LogRunError logs a failed run.
func LogRunError(logger *slog.Logger, err error) {
	if logger == nil {
		return
	}
	logger.Error("search failed",
		slog.String("error", err.Error()),
	)
}
