package app

import (
	"context"
	"log/slog"
	"testing"

	"github.com/blackwell-systems/wpg/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"error", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.in); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNewLogger_SetsDefault(t *testing.T) {
	old := slog.Default()
	defer slog.SetDefault(old)

	l := NewLogger(config.LogConfig{Level: "error", Format: "json"})
	if slog.Default() != l {
		t.Error("NewLogger should install the logger as default")
	}
	if l.Enabled(context.Background(), slog.LevelWarn) {
		t.Error("warn should be disabled at error level")
	}
}
