package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWriterLogsJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo)

	logger.Info("teams balanced", "teams", 2, "cost", 1.25)

	var record map[string]any
	if err := json.Unmarshal(buf.Bytes(), &record); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, buf.String())
	}
	if record["msg"] != "teams balanced" {
		t.Errorf("msg = %v, want %q", record["msg"], "teams balanced")
	}
	if record["teams"] != float64(2) {
		t.Errorf("teams = %v, want 2", record["teams"])
	}
	if record["cost"] != 1.25 {
		t.Errorf("cost = %v, want 1.25", record["cost"])
	}
}

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantInfo  bool
		wantWarn  bool
	}{
		{level: LevelDebug, wantDebug: true, wantInfo: true, wantWarn: true},
		{level: LevelInfo, wantDebug: false, wantInfo: true, wantWarn: true},
		{level: LevelWarn, wantDebug: false, wantInfo: false, wantWarn: true},
		{level: LevelError, wantDebug: false, wantInfo: false, wantWarn: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewWriter(&buf, tt.level)

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")

			out := buf.String()
			if got := strings.Contains(out, `"msg":"d"`); got != tt.wantDebug {
				t.Errorf("debug logged = %v, want %v", got, tt.wantDebug)
			}
			if got := strings.Contains(out, `"msg":"i"`); got != tt.wantInfo {
				t.Errorf("info logged = %v, want %v", got, tt.wantInfo)
			}
			if got := strings.Contains(out, `"msg":"w"`); got != tt.wantWarn {
				t.Errorf("warn logged = %v, want %v", got, tt.wantWarn)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{input: "debug", want: slog.LevelDebug},
		{input: "DEBUG", want: slog.LevelDebug},
		{input: "info", want: slog.LevelInfo},
		{input: "warn", want: slog.LevelWarn},
		{input: "error", want: slog.LevelError},
		{input: "", want: slog.LevelInfo},
		{input: "bogus", want: slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWithAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(&buf, LevelInfo).With("run", "abc123")

	logger.Info("started")

	if !strings.Contains(buf.String(), `"run":"abc123"`) {
		t.Errorf("persistent attribute missing from %s", buf.String())
	}
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	logger, err := New(path, LevelDebug)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	logger.Info("hello")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	logger2, err := New("", LevelInfo)
	if err != nil {
		t.Fatalf("New(stderr) error = %v", err)
	}
	if err := logger2.Close(); err != nil {
		t.Errorf("Close() on stderr logger error = %v", err)
	}
}
