package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"WARNING": slog.LevelWarn,
		"error":   slog.LevelError,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range tests {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNew_JSONErrorHasStack(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "INFO", "json")
	log.Error("boom", "k", "v")

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON line, got %q: %v", buf.String(), err)
	}
	if entry["msg"] != "boom" {
		t.Errorf("expected msg=boom, got %v", entry["msg"])
	}
	if _, ok := entry["stacktrace"]; !ok {
		t.Error("expected stacktrace on error entry")
	}
}

func TestNew_TextFiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "WARN", "text")
	log.Info("hidden")
	log.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info line should be filtered at WARN level")
	}
	if !strings.Contains(out, "msg=shown") {
		t.Errorf("expected text-formatted warn line, got %q", out)
	}
	if strings.Contains(out, "stacktrace") {
		t.Error("warn line should not carry a stack trace")
	}
}
