// Copyright 2024 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var v map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &v))
		out = append(out, v)
	}
	return out
}

func TestJSONLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	handler, err := NewSlogHandler(SlogConfig{DefaultLevel: slog.LevelDebug}, buf)
	require.NoError(t, err)

	r := slog.NewRecord(testTime, slog.LevelInfo, "Hello world", 0)
	require.NoError(t, handler.Handle(context.Background(), r))
	require.Equal(t, `{`+
		`"level":"info",`+
		`"time":"`+testTime.Format(time.RFC3339)+`",`+
		`"message":"Hello world"`+
		`}`+"\n", buf.String())
}

func TestMessageKey(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := New(buf, LogFormatJSON, "info", false)
	require.NoError(t, err)
	logger.Info("Hello world")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "message", messageKey)
	require.Equal(t, "Hello world", lines[0][messageKey])
}

func TestPlainLogging(t *testing.T) {
	buf := new(bytes.Buffer)
	handler, err := NewSlogHandler(SlogConfig{DefaultLevel: slog.LevelDebug}, ConsoleSlogWriter(buf, false))
	require.NoError(t, err)
	logger := slog.New(handler)

	logger.Info("Hello world", "seed", uint64(42))
	require.Contains(t, buf.String(), "INFO Hello world")
	require.Contains(t, buf.String(), "seed=42")
}

func TestLoggingCtxAttrs(t *testing.T) {
	buf := new(bytes.Buffer)
	handler, err := NewSlogHandler(SlogConfig{DefaultLevel: slog.LevelDebug}, buf)
	require.NoError(t, err)
	logger := slog.New(handler)

	ctx := With(context.Background(), "foo", "bar")
	logger.InfoContext(ctx, "Hello world")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "Hello world", lines[0][messageKey])
	require.Equal(t, "bar", lines[0]["foo"])
}

func TestModuleLevels(t *testing.T) {
	buf := new(bytes.Buffer)
	c, err := ParseLogLevel("info;replay=debug")
	require.NoError(t, err)
	handler, err := NewSlogHandler(c, buf)
	require.NoError(t, err)
	logger := slog.New(handler)

	logger.Debug("dropped")
	Module(logger, "replay").Debug("kept")
	Module(logger, "cli").Debug("dropped")
	Module(logger, "cli").Info("kept")

	lines := decodeLines(t, buf)
	require.Len(t, lines, 2)
	for _, line := range lines {
		require.Equal(t, "kept", line[messageKey])
	}
}

func TestGroups(t *testing.T) {
	buf := new(bytes.Buffer)
	handler, err := NewSlogHandler(SlogConfig{DefaultLevel: slog.LevelDebug}, buf)
	require.NoError(t, err)
	logger := slog.New(handler).WithGroup("draw").With("op", "next")

	logger.Info("Drew", slog.Group("value", "hi", 1), "count", 3)

	lines := decodeLines(t, buf)
	require.Len(t, lines, 1)
	require.Equal(t, "next", lines[0]["draw.op"])
	require.Equal(t, 1.0, lines[0]["draw.value.hi"])
	require.Equal(t, 3.0, lines[0]["draw.count"])
}

func TestParseLogLevel(t *testing.T) {
	cases := []struct {
		s       string
		def     slog.Level
		modules map[string]slog.Level
	}{
		{"", slog.LevelInfo, nil},
		{"debug", slog.LevelDebug, nil},
		{"error;replay=debug", slog.LevelError, map[string]slog.Level{"replay": slog.LevelDebug}},
		{"cli=warn;*=disabled", levelDisabled, map[string]slog.Level{"cli": slog.LevelWarn}},
	}

	for _, c := range cases {
		t.Run(c.s, func(t *testing.T) {
			cfg, err := ParseLogLevel(c.s)
			require.NoError(t, err)
			require.Equal(t, c.def, cfg.DefaultLevel)
			require.Equal(t, c.modules, cfg.ModuleLevels)
		})
	}

	_, err := ParseLogLevel("loud")
	require.Error(t, err)
}

func TestNew(t *testing.T) {
	buf := new(bytes.Buffer)
	logger, err := New(buf, "json", "warn", false)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("kept")
	require.Len(t, decodeLines(t, buf), 1)

	_, err = New(buf, "xml", "info", false)
	require.Error(t, err)
}

func TestTestLogger(t *testing.T) {
	NewTestLogger(t).Info("Hello from the test logger", "n", 1)
}
