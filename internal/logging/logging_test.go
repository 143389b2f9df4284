package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelWarn)
	l.SetOutput(&buf)

	l.Debug("hidden")
	l.Info("hidden")
	l.Warn("visible warning")
	l.Error("visible error")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("low-level messages leaked: %q", out)
	}
	if !strings.Contains(out, "visible warning") || !strings.Contains(out, "visible error") {
		t.Errorf("high-level messages missing: %q", out)
	}
}

func TestWithPrefix(t *testing.T) {
	var buf bytes.Buffer
	l := New(LevelInfo)
	l.SetOutput(&buf)

	child := l.WithPrefix("engine")
	child.Info("calc complete")

	if !strings.Contains(buf.String(), "engine: calc complete") {
		t.Errorf("prefix missing from output: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"debug", LevelDebug},
		{"WARN", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"bogus", LevelInfo},
	}
	for _, tc := range tests {
		if got := ParseLevel(tc.input); got != tc.expected {
			t.Errorf("ParseLevel(%q) = %v, want %v", tc.input, got, tc.expected)
		}
	}
}

func TestDiscardProducesNothing(t *testing.T) {
	var buf bytes.Buffer
	l := Discard()
	l.SetOutput(&buf)
	l.Error("should not appear")
	if buf.Len() != 0 {
		t.Errorf("discard logger wrote %q", buf.String())
	}
}
