package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/quadgl/quadgl/lib/config"
	qlog "github.com/quadgl/quadgl/lib/log"
	"github.com/quadgl/quadgl/lib/metrics"
	"github.com/quadgl/quadgl/lib/mlx"
	"github.com/quadgl/quadgl/lib/platform"
	"github.com/quadgl/quadgl/lib/platform/glfwplatform"
	"github.com/quadgl/quadgl/lib/platform/glplatform"
)

func init() {
	// The OpenGL stuff must be in one thread
	runtime.LockOSThread()
}

func main() {
	configPtr := flag.String("config", "", "YAML config file; overrides the window flags")
	watchPtr := flag.Bool("watch", false, "Apply title and size changes when the config file is written")
	titlePtr := flag.String("title", "quadgl", "Window title")
	widthPtr := flag.Int("width", 800, "Width of the window")
	heightPtr := flag.Int("height", 600, "Height of the window")
	resizablePtr := flag.Bool("resizable", true, "Allow the window to be resized")
	swapPtr := flag.Int("swap-interval", config.DefaultSwapInterval, "Screen refreshes between buffer swaps")
	logLevelPtr := flag.String("log-level", "info", "debug, info, warn or error")
	metricsPtr := flag.String("metrics", "", "Serve prometheus metrics on this address")
	flag.Parse()

	cfg := &config.Config{
		Window: &config.WindowCfg{
			Width:        *widthPtr,
			Height:       *heightPtr,
			Title:        *titlePtr,
			Resizable:    *resizablePtr,
			SwapInterval: swapPtr,
		},
		LogLevel: *logLevelPtr,
	}
	if *metricsPtr != "" {
		cfg.Metrics = &config.MetricsCfg{Bind: *metricsPtr}
	}
	if *configPtr != "" {
		var err error
		cfg, err = config.Parse(*configPtr)
		if err != nil {
			log.Fatal(err)
		}
	} else if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	level, err := qlog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	qlog.Setup(level)

	if cfg.Metrics != nil {
		go serveMetrics(cfg.Metrics.Bind)
	}

	p := platform.Platform{Windowing: glfwplatform.Shared(), GL: glplatform.New()}
	m, err := mlx.Init(p,
		cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.Resizable,
		mlx.WithSwapInterval(cfg.Window.Interval()),
		mlx.WithStretchImage(cfg.Window.StretchImage),
	)
	if err != nil {
		slog.Error(fmt.Sprintf("could not open window: %s", err), slog.String("module", "main"))
		os.Exit(1)
	}
	defer m.Terminate()

	m.SetResizeHook(func(width, height int) {
		slog.Debug(fmt.Sprintf("resized to %dx%d", width, height), slog.String("module", "main"))
	})

	reloads := make(chan *config.Config, 1)
	if *watchPtr && *configPtr != "" {
		go watchConfig(*configPtr, reloads)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var lastReport time.Time
	err = m.Loop(ctx, func(dt time.Duration) {
		select {
		case c := <-reloads:
			applyConfig(m, c)
		default:
		}

		if time.Since(lastReport) > 5*time.Second {
			lastReport = time.Now()
			s := m.Stats()
			slog.Debug(fmt.Sprintf("%d fps, %d frames, up %.0fs", s.FPS, s.Frames, s.Uptime), slog.String("module", "main"))
		}
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		slog.Error(err.Error(), slog.String("module", "main"))
	}
}

func serveMetrics(bind string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	slog.Info(fmt.Sprintf("serving metrics on %s", bind), slog.String("module", "metrics"))
	if err := http.ListenAndServe(bind, mux); err != nil {
		slog.Error(fmt.Sprintf("metrics server stopped: %s", err), slog.String("module", "metrics"))
	}
}

// applyConfig runs on the render thread; GLFW window calls are not allowed
// anywhere else.
func applyConfig(m *mlx.MLX, c *config.Config) {
	w := m.Window()
	w.SetTitle(c.Window.Title)
	if c.Window.Width != m.Width() || c.Window.Height != m.Height() {
		w.SetSize(c.Window.Width, c.Window.Height)
	}
	slog.Info("applied config change", slog.String("module", "main"))
}
