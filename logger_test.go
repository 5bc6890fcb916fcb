package g3d

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// TestLoggerDefaultSilent checks that the default logger, and any logger
// derived from it, drops every record.
func TestLoggerDefaultSilent(t *testing.T) {
	base := Logger()
	if base == nil {
		t.Fatal("Logger() returned nil")
	}
	loggers := map[string]*slog.Logger{
		"default":    base,
		"with attrs": base.With("op", "Mat3.Inverse"),
		"with group": base.WithGroup("gpu"),
	}
	for name, l := range loggers {
		for _, level := range []slog.Level{slog.LevelDebug, slog.LevelWarn, slog.LevelError} {
			if l.Enabled(context.Background(), level) {
				t.Errorf("%s logger enabled for %v", name, level)
			}
		}
	}
}

func TestSetLogger_DebugToggleIsLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() {
		SetLogger(orig)
		SetDebugChecks(false)
	})

	var buf bytes.Buffer
	custom := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	SetLogger(custom)
	if Logger() != custom {
		t.Fatal("Logger() did not return the logger passed to SetLogger")
	}

	SetDebugChecks(true)
	out := buf.String()
	if !strings.Contains(out, "debug checks toggled") || !strings.Contains(out, "enabled=true") {
		t.Errorf("toggle not logged, got: %s", out)
	}

	// nil restores silence; later toggles write nothing.
	SetLogger(nil)
	if Logger() == nil || Logger().Enabled(context.Background(), slog.LevelError) {
		t.Fatal("SetLogger(nil) did not restore the silent logger")
	}
	buf.Reset()
	SetDebugChecks(false)
	if buf.Len() != 0 {
		t.Errorf("silent logger wrote %q", buf.String())
	}
}

func TestPreconditionViolationIsLogged(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() {
		SetLogger(orig)
		SetDebugChecks(false)
	})

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
	SetDebugChecks(true)

	func() {
		defer func() { _ = recover() }()
		_ = Zero3[float64]().Normalize()
	}()

	out := buf.String()
	if !strings.Contains(out, "level=ERROR") || !strings.Contains(out, "op=Vec3.Normalize") {
		t.Errorf("expected violation logged at error level with op, got: %s", out)
	}
}

func TestLoggerConcurrentAccess(t *testing.T) {
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })

	var wg sync.WaitGroup
	const goroutines = 100

	// Concurrent readers.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := Logger()
			if l == nil {
				t.Error("Logger() returned nil during concurrent access")
				return
			}
			l.Debug("g3d: concurrent read", "det", RotationZ(0.1).Determinant())
		}()
	}

	// Concurrent writers.
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetLogger(slog.Default())
			SetLogger(nil)
		}()
	}

	wg.Wait()
}
