package g3d

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard drops every record. Enabled reports false so slog skips building
// the record and attribute values at the call site.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var silent = slog.New(discard{})

// current holds the package logger; never nil.
var current atomic.Pointer[slog.Logger]

func init() { current.Store(silent) }

// SetLogger routes g3d and gpu log output to l. Passing nil restores the
// default, which writes nothing. It may be called concurrently with any
// other g3d operation.
//
// Levels:
//   - [slog.LevelDebug]: SetDebugChecks toggles, SPIR-V sizes from gpu
//   - [slog.LevelWarn]: WGSL that fails to compile
//   - [slog.LevelError]: a precondition violation, logged just before the
//     *PreconditionError panic
//
// Example:
//
//	g3d.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	current.Store(l)
}

// Logger returns the logger set by SetLogger. The gpu package logs through it.
func Logger() *slog.Logger {
	return current.Load()
}
