package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"DEBUG", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"bogus", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.want {
				t.Errorf("ParseLevel(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriter(&buf, LevelWarn)

	l.Debug("dropped %d", 1)
	l.Info("dropped %d", 2)
	l.Warn("kept %d", 3)
	l.Error("kept %d", 4)

	out := buf.String()
	if strings.Contains(out, "dropped") {
		t.Errorf("records below the level were kept:\n%s", out)
	}
	if !strings.Contains(out, "[WARN] kept 3") || !strings.Contains(out, "[ERROR] kept 4") {
		t.Errorf("missing expected records:\n%s", out)
	}
}

func TestDiscard(t *testing.T) {
	l := Discard()
	l.Error("never seen %s", "anywhere")
	if err := l.Close(); err != nil {
		t.Errorf("Close() on discard logger returned %v", err)
	}
}
