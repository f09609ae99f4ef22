package main

import (
	"context"
	"log/slog"

	"github.com/Garsondee/Raycaster/internal/config"
)

// watchConfig reloads the config file named by each change event and hands
// the result to out, replacing any reload the game has not picked up yet.
// Files that fail to load are logged and skipped.
func watchConfig(ctx context.Context, events <-chan string, errs <-chan error, out chan config.Config, logger *slog.Logger) {
	for {
		select {
		case <-ctx.Done():
			return
		case path, ok := <-events:
			if !ok {
				return
			}
			cfg, err := config.Load(path)
			if err != nil {
				logger.Warn("config reload failed", "path", path, "error", err)
				continue
			}
			select {
			case <-out:
			default:
			}
			out <- cfg
			logger.Debug("config reloaded", "path", path)
		case err, ok := <-errs:
			if !ok {
				errs = nil
				continue
			}
			logger.Warn("config watcher error", "error", err)
		}
	}
}
