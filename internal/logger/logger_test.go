package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, parseLevel(tt.input), "level %q", tt.input)
	}
}

func TestTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "text", Output: &buf})

	log.Info("resolving file", "path", "manifest.json")

	out := buf.String()
	assert.Contains(t, out, "resolving file")
	assert.Contains(t, out, "path=manifest.json")
}

func TestJSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "info", Format: "json", Output: &buf})

	log.Info("resolving file", "path", "manifest.json")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "resolving file", record["msg"])
	assert.Equal(t, "manifest.json", record["path"])
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Format: "text", Output: &buf})

	log.Debug("hidden")
	log.Info("hidden too")
	log.Warn("visible")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "visible")
}

func TestWithComponent(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "text", Output: &buf})

	log.WithComponent("git_commander").Debug("hello")

	assert.Contains(t, buf.String(), "component=git_commander")
}

func TestGitCommandAndResult(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Format: "text", Output: &buf})

	log.GitCommand("git", []string{"ls-files", "-u"})
	log.GitResult("git", true, "output\n")
	log.GitResult("git", false, "fatal: not a git repository")

	out := buf.String()
	assert.Contains(t, out, "executing git command")
	assert.Contains(t, out, "git command succeeded")
	assert.Contains(t, out, "git command failed")
	assert.Contains(t, out, "not a git repository")
}

func TestGlobalConfigure(t *testing.T) {
	original := GetGlobalLogger()
	defer SetGlobalLogger(original)

	var buf bytes.Buffer
	Configure(Config{Level: "debug", Format: "text", Output: &buf})

	Debug("global debug message")

	assert.Contains(t, buf.String(), "global debug message")
}
