package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	yaml "github.com/goccy/go-yaml"
	"github.com/quadgl/quadgl/lib/log"
)

type Config struct {
	Window   *WindowCfg
	LogLevel string      `yaml:"log_level"`
	Metrics  *MetricsCfg `yaml:"metrics"`
}

type WindowCfg struct {
	Width        int
	Height       int
	Title        string
	Resizable    bool
	SwapInterval *int `yaml:"swap_interval"`
	StretchImage bool `yaml:"stretch_image"`
}

type MetricsCfg struct {
	Bind string
}

const DefaultSwapInterval = 1

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	cfg, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func Decode(r io.Reader) (*Config, error) {
	m := yaml.NewDecoder(r)
	cfg := &Config{}
	err := m.Decode(cfg)
	if err != nil {
		return nil, err
	}
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Window == nil {
		return fmt.Errorf("a window section should be defined")
	}
	if err := c.Window.Validate(); err != nil {
		return fmt.Errorf("window is invalid: %w", err)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Metrics != nil && c.Metrics.Bind == "" {
		return fmt.Errorf("metrics.bind must be set when metrics is configured")
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width <= 0 {
		return fmt.Errorf("width must be positive, got %d", w.Width)
	}
	if w.Height <= 0 {
		return fmt.Errorf("height must be positive, got %d", w.Height)
	}
	if w.Title == "" {
		return fmt.Errorf("title must not be empty")
	}
	if w.SwapInterval != nil && *w.SwapInterval < 0 {
		return fmt.Errorf("swap_interval cannot be negative")
	}
	return nil
}

// Interval returns the configured swap interval, or DefaultSwapInterval.
func (w *WindowCfg) Interval() int {
	if w.SwapInterval == nil {
		return DefaultSwapInterval
	}
	return *w.SwapInterval
}

func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d\n", c.Window.Title, c.Window.Width, c.Window.Height))
	b.WriteString(fmt.Sprintf("  resizable: %t, swap interval: %d, stretch image: %t\n",
		c.Window.Resizable, c.Window.Interval(), c.Window.StretchImage))

	if c.Metrics != nil {
		b.WriteString("\nMetrics:\n")
		b.WriteString(fmt.Sprintf("  %s\n", c.Metrics.Bind))
	}

	return b.String()
}
