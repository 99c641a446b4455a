package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"", slog.LevelInfo, false},
		{"warning", slog.LevelWarn, false},
		{" error ", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestComponent(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, slog.LevelInfo, false)

	Component("series").Info("buffer grown", "capacity", 8)
	Component("series").Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "component=series") || !strings.Contains(out, "capacity=8") {
		t.Errorf("expected component and attribute in output, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Errorf("debug entry should be filtered at info level, got %q", out)
	}
}

func TestInitWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitWithWriter(&buf, slog.LevelWarn, true)

	Warn("readings rejected", "count", 2)

	if !strings.HasPrefix(buf.String(), "{") || !strings.Contains(buf.String(), `"count":2`) {
		t.Errorf("expected JSON entry, got %q", buf.String())
	}
}
