package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		name    string
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("test") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("test") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("test") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))

			if gotLog := buf.Len() > 0; gotLog != tt.wantLog {
				t.Errorf("got log output = %v, want %v", gotLog, tt.wantLog)
			}
		})
	}
}

func TestSetLogLevel(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, LogInfo)

	c.Logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Fatal("debug should be hidden at info level")
	}
	c.SetLogLevel(LogDebug)
	c.Logger.Debug("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Error("debug should be shown after SetLogLevel(LogDebug)")
	}
}

func TestProgress(t *testing.T) {
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.InfoLevel))

	time.Sleep(5 * time.Millisecond)
	prog.done("Rendered shop.svg")

	out := buf.String()
	if !strings.Contains(out, "Rendered shop.svg (") {
		t.Errorf("progress.done() output = %q", out)
	}
}

func TestLoggerFromContext(t *testing.T) {
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("loggerFromContext should fall back to log.Default()")
	}
	if loggerFromContext(nil) != log.Default() {
		t.Error("loggerFromContext(nil) should fall back to log.Default()")
	}

	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)
	if loggerFromContext(withLogger(context.Background(), custom)) != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.DebugLevel))
	h := logHooks{}

	h.OnImportStart(ctx, "shop.yaml")
	h.OnImportComplete(ctx, "shop.yaml", 5, 2, time.Millisecond, nil)
	h.OnImportComplete(ctx, "none.yaml", 0, 0, 0, errors.New("not found"))
	h.OnResolveStart(ctx, 2)
	h.OnResolveComplete(ctx, 1, 1, time.Millisecond, nil)
	h.OnRenderStart(ctx, "svg")
	h.OnRenderComplete(ctx, "svg", 1024, time.Millisecond, nil)
	h.OnCacheMiss(ctx, "artifact")
	h.OnCacheSet(ctx, "artifact", 1024)
	h.OnCacheHit(ctx, "artifact")

	out := buf.String()
	for _, want := range []string{
		"import started", "import finished", "import failed", "resolve started", "resolve finished",
		"render started", "render finished", "cache miss", "cache write", "cache hit",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q", want)
		}
	}
}

func TestLogHooksQuietAtInfo(t *testing.T) {
	var buf bytes.Buffer
	ctx := withLogger(context.Background(), newLogger(&buf, log.InfoLevel))

	logHooks{}.OnImportStart(ctx, "shop.yaml")
	logHooks{}.OnCacheHit(ctx, "artifact")
	if buf.Len() != 0 {
		t.Errorf("hooks should only log at debug level, got %q", buf.String())
	}
}
