//go:build !linux

package main

import (
	"log/slog"

	"github.com/quadgl/quadgl/lib/config"
)

func watchConfig(path string, reloads chan *config.Config) {
	slog.Warn("config watching needs inotify and is only available on linux", slog.String("module", "config"))
}
