// Package cli implements the fengshui command-line interface.
//
// This package provides the interactive terminal front end, the HTTP server
// command and a few batch commands for generating, scoring and rendering
// layout files. The CLI is built using cobra and supports verbose logging
// via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - play: Drag furniture around in the terminal
//   - serve: Serve the same toy to a browser
//   - generate: Write a random layout to a JSON file
//   - score: Score a layout file, optionally pair by pair
//   - render: Draw a layout file as SVG
//   - config: Show or initialize the configuration file
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context, and drag, score and HTTP events are logged
// through observability hooks.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// The duration is rounded to the nearest millisecond.
// Example output: "Scored 10 items (1ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is the type for context keys used in this package.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx.
// If no logger is attached, it returns log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// logHooks forwards observability events to the logger at debug level.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnDragStart(itemID string, x, y float64) {
	h.logger.Debug("drag start", "item", itemID, "x", x, "y", y)
}

func (h *logHooks) OnDragEnd(itemID string, fromX, fromY, toX, toY float64) {
	h.logger.Debug("drag end", "item", itemID,
		"from", [2]float64{fromX, fromY}, "to", [2]float64{toX, toY})
}

func (h *logHooks) OnScore(score float64, items int, d time.Duration) {
	h.logger.Debug("rescored", "score", score, "items", items, "took", d)
}

func (h *logHooks) OnRequest(ctx context.Context, method, path string) {
	h.logger.Debug("request", "method", method, "path", path)
}

func (h *logHooks) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	h.logger.Info("response", "method", method, "path", path, "status", status,
		"took", d.Round(time.Microsecond))
}
