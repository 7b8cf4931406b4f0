package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCfg = `
window:
  width: 800
  height: 600
  title: demo
  resizable: true
log_level: debug
metrics:
  bind: "127.0.0.1:9090"
`

func TestDecode(t *testing.T) {
	cfg, err := Decode(strings.NewReader(validCfg))
	require.NoError(t, err)

	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 600, cfg.Window.Height)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.True(t, cfg.Window.Resizable)
	assert.False(t, cfg.Window.StretchImage)
	assert.Equal(t, DefaultSwapInterval, cfg.Window.Interval())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "127.0.0.1:9090", cfg.Metrics.Bind)
}

func TestDecodeSwapInterval(t *testing.T) {
	cfg, err := Decode(strings.NewReader("window: {width: 1, height: 1, title: x, swap_interval: 0}"))
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Window.Interval())
}

func TestValidate(t *testing.T) {
	tests := map[string]string{
		"no window":       "log_level: info",
		"zero width":      "window: {width: 0, height: 600, title: demo}",
		"negative height": "window: {width: 800, height: -1, title: demo}",
		"empty title":     "window: {width: 800, height: 600}",
		"negative swap":   "window: {width: 800, height: 600, title: demo, swap_interval: -1}",
		"bad log level":   "window: {width: 800, height: 600, title: demo}\nlog_level: loud",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quadgl.yaml")
	require.NoError(t, os.WriteFile(path, []byte(validCfg), 0o644))

	cfg, err := Parse(path)
	require.NoError(t, err)
	assert.Contains(t, cfg.String(), `"demo" 800x600`)
	assert.Contains(t, cfg.String(), "127.0.0.1:9090")

	_, err = Parse(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
