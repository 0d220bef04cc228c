package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" DEBUG ", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warning", slog.LevelWarn},
		{"Warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
		{"", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.in); got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, true, slog.LevelInfo)
	l.Debug("hidden")
	l.Info("centroids ready", "categories", 17)

	var m map[string]any
	if err := json.Unmarshal(buf.Bytes(), &m); err != nil {
		t.Fatalf("want one JSON record, got %q: %v", buf.String(), err)
	}
	if m["msg"] != "centroids ready" || m["categories"] != float64(17) {
		t.Errorf("record = %v", m)
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false, slog.LevelWarn).Warn("cache save failed", "path", "c.db")
	if out := buf.String(); !strings.Contains(out, `msg="cache save failed"`) || !strings.Contains(out, "path=c.db") {
		t.Errorf("text output = %q", out)
	}
}
