package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/bnema/camview/internal/logging"
)

// captureContext returns a context whose logger writes JSON lines to buf.
func captureContext() (context.Context, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := logging.DefaultConfig()
	cfg.Level = zerolog.DebugLevel
	cfg.Format = logging.FormatJSON
	return logging.WithContext(context.Background(), logging.NewWithWriter(cfg, buf)), buf
}

type logLine struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

func logLines(t *testing.T, buf *bytes.Buffer) []logLine {
	t.Helper()

	var lines []logLine
	for _, raw := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if raw == "" {
			continue
		}
		var line logLine
		require.NoError(t, json.Unmarshal([]byte(raw), &line))
		lines = append(lines, line)
	}
	return lines
}

func messagesAt(t *testing.T, buf *bytes.Buffer, level string) []string {
	t.Helper()

	var msgs []string
	for _, line := range logLines(t, buf) {
		if line.Level == level {
			msgs = append(msgs, line.Message)
		}
	}
	return msgs
}
