package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"sportera/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{"", slog.LevelInfo, false},
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{"warn", slog.LevelWarn, false},
		{"warning", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := parseLogLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, level)
		})
	}
}

func TestNewLogger_JSONWithServiceName(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "sportera"

	var buf bytes.Buffer
	logger := newLogger(&buf, cfg, slog.LevelInfo)
	logger.Debug("hidden")
	logger.Info("hello", slog.Int("count", 2))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "sportera", entry["service"])
	assert.InDelta(t, 2, entry["count"], 0)
}

func TestNewLogger_Pretty(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Log.Pretty = true

	var buf bytes.Buffer
	newLogger(&buf, cfg, slog.LevelDebug).Debug("visible")

	assert.Contains(t, buf.String(), "msg=visible")
}

func TestNewLogger_RedactsSensitiveAttributes(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.Env = "test"

	var buf bytes.Buffer
	newLogger(&buf, cfg, slog.LevelInfo).Info("login",
		slog.String("email", "ana@example.com"),
		slog.String("Password", "hunter22"),
		slog.Group("request", slog.String("authorization", "Bearer abc.def.ghi")),
	)

	out := buf.String()
	assert.NotContains(t, out, "hunter22")
	assert.NotContains(t, out, "abc.def.ghi")
	assert.Contains(t, out, "ana@example.com")
	assert.Contains(t, out, `"env":"test"`)
	assert.Contains(t, out, redacted)
}
