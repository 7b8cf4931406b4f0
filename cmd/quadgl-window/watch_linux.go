package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/jhenstridge/go-inotify"
	"github.com/quadgl/quadgl/lib/config"
)

func watchConfig(path string, reloads chan *config.Config) {
	watcher, err := inotify.NewWatcher()
	if err != nil {
		slog.Error(fmt.Sprintf("Could not create inotify watcher: %s", err), slog.String("module", "config"))
		return
	}
	defer func(watcher *inotify.Watcher) {
		err := watcher.Close()
		if err != nil {
			return
		}
	}(watcher)

	_, err = watcher.Watch(path)
	if err != nil {
		slog.Error(fmt.Sprintf("Could not start inotify watcher: %s", err), slog.String("module", "config"))
		return
	}

	for ev := range watcher.Event {
		if ev.Mask&inotify.IN_CLOSE_WRITE == 0 {
			continue
		}
		slog.Debug("Reloading config due to inotify event", slog.String("module", "config"))
		time.Sleep(100 * time.Millisecond)

		cfg, err := config.Parse(path)
		if err != nil {
			slog.Error(fmt.Sprintf("Ignoring config change: %s", err), slog.String("module", "config"))
			continue
		}
		// only the latest change matters
		select {
		case <-reloads:
		default:
		}
		reloads <- cfg
	}
}
