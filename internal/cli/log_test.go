package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	if logger == nil {
		t.Fatal("newLogger() returned nil")
	}

	logger.Info("test message")
	if buf.Len() == 0 {
		t.Error("logger should have written output")
	}
}

func TestNewLoggerFiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at info level, got %q", buf.String())
	}

	logger.SetLevel(log.DebugLevel)
	logger.Debug("visible")
	if buf.Len() == 0 {
		t.Error("debug message should pass at debug level")
	}
}

func TestProgressDone(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	p := newProgress(logger)
	p.done("Stacked form-2 onto panel-1")

	out := buf.String()
	if !strings.Contains(out, "Stacked form-2 onto panel-1") {
		t.Errorf("output missing message: %q", out)
	}
	if !strings.Contains(out, "(") || !strings.Contains(out, ")") {
		t.Errorf("output missing elapsed duration: %q", out)
	}
}

func TestLoggerContextRoundTrip(t *testing.T) {
	logger := newLogger(&bytes.Buffer{}, log.InfoLevel)
	ctx := withLogger(context.Background(), logger)

	if got := loggerFromContext(ctx); got != logger {
		t.Error("loggerFromContext should return the attached logger")
	}
}

func TestLoggerFromContextDefault(t *testing.T) {
	if loggerFromContext(context.Background()) == nil {
		t.Error("loggerFromContext should fall back to a default logger")
	}
}
