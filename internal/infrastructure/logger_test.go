package infrastructure

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"peilbuis/internal/config"
)

func readLastLogEntry(t *testing.T, path string) map[string]interface{} {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))
	return entry
}

func TestInitializeLogger(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logFile := filepath.Join(t.TempDir(), "nested", "test.log")

	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "info",
		Format:   "json",
		Output:   "file",
		FilePath: logFile,
	})
	require.NoError(t, err)
	require.NotNil(t, logger)
	assert.Same(t, logger, GetLogger())

	logger.Info("test message", "key", "value")
	require.NoError(t, CloseLogFile())

	entry := readLastLogEntry(t, logFile)
	assert.Equal(t, "test message", entry["msg"])
	assert.Equal(t, "value", entry["key"])
	assert.Equal(t, "INFO", entry["level"])
}

func TestTraceIDInjection(t *testing.T) {
	ResetLoggerForTesting()
	defer ResetLoggerForTesting()

	logFile := filepath.Join(t.TempDir(), "test.log")
	logger, err := InitializeLogger(config.LoggingConfig{
		Level:    "debug",
		Output:   "both",
		FilePath: logFile,
	})
	require.NoError(t, err)

	ctx := WithTraceID(context.Background(), "test-trace-123")
	logger.InfoContext(ctx, "test with trace")
	require.NoError(t, CloseLogFile())

	entry := readLastLogEntry(t, logFile)
	assert.Equal(t, "test-trace-123", entry["trace_id"])
}

func TestLogLevels(t *testing.T) {
	tests := []struct {
		level   string
		logged  []string
		dropped []string
	}{
		{"debug", []string{"d", "i", "w", "e"}, nil},
		{"info", []string{"i", "w", "e"}, []string{"d"}},
		{"warning", []string{"w", "e"}, []string{"d", "i"}},
		{"error", []string{"e"}, []string{"d", "i", "w"}},
		{"bogus", []string{"i", "w", "e"}, []string{"d"}},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewLogger(&buf, &slog.HandlerOptions{Level: parseLogLevel(tt.level)})

			logger.Debug("d")
			logger.Info("i")
			logger.Warn("w")
			logger.Error("e")

			var got []string
			for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
				var entry map[string]interface{}
				require.NoError(t, json.Unmarshal([]byte(line), &entry))
				got = append(got, entry["msg"].(string))
			}
			assert.Equal(t, tt.logged, got)
		})
	}
}

func TestContextHelpers(t *testing.T) {
	ctx := ContextWithTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, 36)

	assert.Equal(t, traceID, GetTraceID(EnsureTraceID(ctx)))
	assert.NotEmpty(t, GetTraceID(EnsureTraceID(context.Background())))
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	WithComponent(logger, "parser").Info("component test")
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parser", entry["component"])

	buf.Reset()
	WithError(logger, os.ErrNotExist).Info("error test")
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Contains(t, entry["error"], "file does not exist")

	assert.Same(t, logger, WithError(logger, nil))
}
