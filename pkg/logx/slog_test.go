package logx_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"margin_engine/pkg/logx"
)

func TestParseLevel(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		input string
		level slog.Level
	}{
		{input: "debug", level: slog.LevelDebug},
		{input: " WARN ", level: slog.LevelWarn},
		{input: "warning", level: slog.LevelWarn},
		{input: "error", level: slog.LevelError},
		{input: "info", level: slog.LevelInfo},
		{input: "", level: slog.LevelInfo},
		{input: "verbose", level: slog.LevelInfo},
	}

	for _, tc := range testCases {
		rq.Equal(tc.level, logx.ParseLevel(tc.input), tc.input)
	}
}

func TestNewLogger(t *testing.T) {
	rq := require.New(t)

	var buf bytes.Buffer

	logger := logx.NewLogger(&buf, "warn", true)

	logger.Info("hidden")
	logger.Warn("shown", logx.Error(errors.New("boom")))

	rq.NotContains(buf.String(), "hidden")
	rq.Contains(buf.String(), "shown")
	rq.Contains(buf.String(), "boom")
}
