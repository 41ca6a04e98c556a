package clearpass

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/clearpass/backend"
	"github.com/gogpu/clearpass/graph"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with logging from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	l := newNopLogger()
	loggerPtr.Store(l)
}

// SetLogger configures the logger for clearpass and its sub-packages.
// By default, clearpass produces no log output. Call SetLogger to enable
// logging.
//
// The logger is shared with the graph executor, which hands a copy tagged
// with the node name to every node it runs, and with the backends.
// Pass nil to disable logging (restore default silent behavior).
//
// Log levels used by clearpass:
//   - [slog.LevelDebug]: per-pass diagnostics (recorded clears, submissions)
//   - [slog.LevelInfo]: lifecycle events (backend initialized)
//   - [slog.LevelWarn]: failed nodes
//
// Example:
//
//	clearpass.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)

	graph.SetLogger(l)
	backend.SetLogger(l)
}

// Logger returns the current logger used by clearpass.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
