package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type traceKey struct{}

func traceFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(traceKey{}).(string)
	return id
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelInfo, "octosupply", traceFromCtx)

	ctx := context.WithValue(context.Background(), traceKey{}, "abc123")
	log.Info(ctx, "listening", "addr", ":3000")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "listening", lines[0]["msg"])
	assert.Equal(t, "info", lines[0]["level"])
	assert.Equal(t, "octosupply", lines[0]["service"])
	assert.Equal(t, "abc123", lines[0]["trace_id"])
	assert.Equal(t, ":3000", lines[0]["addr"])
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, LevelWarn, "octosupply", nil)

	log.Debug(context.Background(), "debug")
	log.Info(context.Background(), "info")
	log.Warn(context.Background(), "warn")
	log.Error(context.Background(), "error", "error", "boom")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 2)
	assert.Equal(t, "warn", lines[0]["msg"])
	assert.Equal(t, "boom", lines[1]["error"])
	assert.NotContains(t, lines[0], "trace_id")
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"":        LevelInfo,
		"bogus":   LevelInfo,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error(context.Background(), "ignored", "k", "v")
	})
}
