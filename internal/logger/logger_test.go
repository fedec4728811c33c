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
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel("bogus"))
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "info", "text").With("layout", "latin")

	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Info("commit", "text", "한")
	out := buf.String()
	assert.Contains(t, out, "INF")
	assert.Contains(t, out, "commit")
	assert.Contains(t, out, "layout"+reset+"=latin")
	assert.Contains(t, out, "text"+reset+"=한")
}

func TestJSONHandler(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "debug", "json")
	log.Debug("processed event", "result", "consumed")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "processed event", record["msg"])
	assert.Equal(t, "consumed", record["result"])
	assert.Equal(t, "DEBUG", record["level"])
}
