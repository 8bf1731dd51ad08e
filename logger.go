package robust

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled reports false, so a predicate's
// Debug call on the fallback path returns before building attributes.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr is read on every fallback, from any goroutine evaluating a
// predicate, and written by SetLogger.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger routes predicate diagnostics to l. Predicates are silent by
// default; nil restores that.
//
// Records carry the predicate name (see WithName) under the "predicate"
// key:
//   - [slog.LevelDebug] "robust: exact fallback": the interval result was
//     indeterminate and exact arithmetic decided the call
//   - [slog.LevelDebug] "robust: exact state materialized": the persistent
//     state was converted to exact form, once per predicate
//   - [slog.LevelWarn] "robust: exact evaluation failed": the exact
//     evaluator returned an error (for example an exceeded bit budget)
//
// Fallbacks are frequent near degenerate input, so Debug is meant for
// investigating a single predicate. For rates, use metrics.Collector.
//
// Example:
//
//	robust.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the logger predicates write to. The predicates and
// metrics packages share it.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
