package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandlerFormatsModuleAndAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, &slog.HandlerOptions{Level: slog.LevelDebug}))

	logger.Error("0:1(1): error: syntax error", slog.String("module", "shaders"), slog.String("stage", "vertex"))

	line := out.String()
	assert.Regexp(t, `^\d\d:\d\d:\d\d\.\d\d\d ERROR \[shaders\] 0:1\(1\): error: syntax error stage=vertex\n$`, line)
}

func TestHandlerWithAttrs(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, false, nil)).With(slog.String("module", "mlx"))

	logger.Info("window created", slog.Int("width", 800))
	logger.Debug("not shown")

	assert.Contains(t, out.String(), "INFO [mlx] window created width=800\n")
	assert.NotContains(t, out.String(), "not shown")
}

func TestHandlerColour(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(NewHandlerTo(&out, true, nil))

	logger.Warn("careful")
	assert.Contains(t, out.String(), "\033[93mWARN \033[0m")
}

func TestParseLevel(t *testing.T) {
	level, err := ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	level, err = ParseLevel("debug")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	_, err = ParseLevel("loud")
	assert.Error(t, err)
}
