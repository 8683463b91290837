package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"deliveryproof/internal/pkg/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONCritical(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "json", "info")
	require.NoError(t, err)

	logging.Critical(context.Background(), l, "ledger lost", "order_id", 1024)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "CRITICAL", entry["level"])
	assert.Equal(t, "ledger lost", entry["msg"])
	assert.EqualValues(t, 1024, entry["order_id"])
}

func TestNew_TextLevels(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "text", "warn")
	require.NoError(t, err)

	l.Info("hidden")
	l.Warn("shown", "a", 1)
	l.Error("err", "b", 2)
	logging.Critical(context.Background(), l, "crit")

	out := buf.String()
	assert.NotContains(t, out, "msg=hidden")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "a=1")
	assert.Contains(t, out, "level=ERROR")
	assert.Contains(t, out, "level=CRITICAL")
}

func TestNew_CriticalThreshold(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "json", "critical")
	require.NoError(t, err)

	l.Error("dropped")
	logging.Critical(context.Background(), l, "kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"msg":"kept"`)
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := logging.New(&bytes.Buffer{}, "xml", "info")
	assert.Error(t, err)

	_, err = logging.New(&bytes.Buffer{}, "json", "loud")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":         slog.LevelInfo,
		"DEBUG":    slog.LevelDebug,
		"warning":  slog.LevelWarn,
		" error ":  slog.LevelError,
		"critical": logging.LevelCritical,
	}

	for in, want := range tests {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
