package logging

import (
	"bytes"
	"log"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	previous := out
	previousLevel := currentLogLevel
	out = log.New(&buf, "", 0)
	t.Cleanup(func() {
		out = previous
		currentLogLevel = previousLevel
	})
	return &buf
}

func TestSetLogLevelFilters(t *testing.T) {
	buf := captureOutput(t)
	SetLogLevel(WARN)

	LogDebug("Test", "hidden")
	LogInfo("Test", "hidden")
	LogWarn("Test", "shown %d", 1)
	LogError("Test", "shown %d", 2)

	output := buf.String()
	assert.NotContains(t, output, "hidden")
	assert.Contains(t, output, "[WARN] Test: shown 1")
	assert.Contains(t, output, "[ERROR] Test: shown 2")
}

func TestSetLogLevelFromString(t *testing.T) {
	buf := captureOutput(t)

	tests := []struct {
		level string
		want  LogLevel
	}{
		{level: "debug", want: DEBUG},
		{level: "INFO", want: INFO},
		{level: "warning", want: WARN},
		{level: "error", want: ERROR},
		{level: "quiet", want: QUIET},
		{level: "bogus", want: INFO},
	}
	for _, tt := range tests {
		SetLogLevelFromString(tt.level)
		assert.Equal(t, tt.want, currentLogLevel, "level %q", tt.level)
	}

	SetLogLevelFromString("quiet")
	LogError("Test", "suppressed")
	assert.Empty(t, buf.String())
}
