package editor

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
)

func TestTextLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewTextLogger(&buf, slog.LevelInfo)

	logger.Debug("hidden", "k", 1)
	logger.Info("layer added", "name", "Layer 2")
	logger.Warn("document rejected", "op", "zoom")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug message written at info level: %q", out)
	}
	for _, want := range []string{"layer added", "Layer 2", "document rejected", "zoom"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestJSONLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := JSONLogger(&buf, slog.LevelDebug)
	logger.Debug("commit", "kind", "rectangle")

	line := strings.TrimSpace(buf.String())
	var entry map[string]any
	if err := json.Unmarshal([]byte(line), &entry); err != nil {
		t.Fatalf("output is not JSON: %q (%v)", line, err)
	}
	if entry["msg"] != "commit" || entry["kind"] != "rectangle" {
		t.Errorf("entry = %v", entry)
	}
}

func TestSlogAdapter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn})))

	logger.Info("quiet")
	logger.Error("loud", "code", 7)

	out := buf.String()
	if strings.Contains(out, "quiet") || !strings.Contains(out, "loud") || !strings.Contains(out, "code=7") {
		t.Errorf("output = %q", out)
	}
}

func TestSessionLogsThroughOptions(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Logger = NewTextLogger(&buf, slog.LevelDebug)
	s := newTestSession(t, &opts)

	s.AddLayer()
	if !strings.Contains(buf.String(), "layer added") {
		t.Errorf("session did not log through the configured logger: %q", buf.String())
	}
}

func TestLinePrompter(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   string
		wantOK bool
	}{
		{"line", "hello world\n", "hello world", true},
		{"crlf", "hi\r\n", "hi", true},
		{"no newline", "tail", "tail", true},
		{"empty line", "\n", "", true},
		{"eof", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewLinePrompter(strings.NewReader(tt.input), &out)
			got, ok := p.Prompt("Enter text:")
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Prompt() = %q, %v, want %q, %v", got, ok, tt.want, tt.wantOK)
			}
			if out.String() != "Enter text: " {
				t.Errorf("label written = %q", out.String())
			}
		})
	}
}
