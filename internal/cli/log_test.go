package cli

import (
	"bytes"
	"context"
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
		{"info at info level", log.InfoLevel, func(l *log.Logger) { l.Info("Wrote glyph") }, true},
		{"debug at info level", log.InfoLevel, func(l *log.Logger) { l.Debug("Opened store") }, false},
		{"debug at debug level", log.DebugLevel, func(l *log.Logger) { l.Debug("Opened store") }, true},
		{"warn at info level", log.InfoLevel, func(l *log.Logger) { l.Warn("fallback") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			if got := buf.Len() > 0; got != tt.wantLog {
				t.Errorf("got log output = %v, want %v", got, tt.wantLog)
			}
		})
	}
}

func TestLogElapsed(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, log.InfoLevel)

	logElapsed(logger, time.Now().Add(-3*time.Millisecond), "Composed", "name", "ocean_lr_1.svg")

	out := buf.String()
	for _, want := range []string{"Composed", "name=ocean_lr_1.svg", "elapsed="} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestLoggerContext(t *testing.T) {
	var buf bytes.Buffer
	custom := newLogger(&buf, log.InfoLevel)

	if got := loggerFromContext(withLogger(context.Background(), custom)); got != custom {
		t.Error("loggerFromContext should return the attached logger")
	}
	if loggerFromContext(context.Background()) != log.Default() {
		t.Error("a context without a logger should yield log.Default()")
	}
	if loggerFromContext(nil) != log.Default() {
		t.Error("a nil context should yield log.Default()")
	}
	if got := loggerFromContext(withLogger(nil, custom)); got != custom {
		t.Error("withLogger should accept a nil context")
	}
}
