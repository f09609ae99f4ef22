package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Raycaster/internal/config"
	"github.com/Garsondee/Raycaster/internal/game"
	"github.com/Garsondee/Raycaster/internal/screen"
)

func main() {
	var configPath string
	var watch bool
	var logLevel string
	var dumpConfig bool

	flag.StringVar(&configPath, "config", "", "YAML config overriding the built-in defaults")
	flag.BoolVar(&watch, "watch", false, "reload tunables when the -config file changes")
	flag.StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
	flag.BoolVar(&dumpConfig, "dump-config", false, "print the effective config as YAML and exit")
	flag.Parse()

	logger, err := newLogger(logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}
	slog.SetDefault(logger)

	if err := run(configPath, watch, dumpConfig, logger); err != nil {
		logger.Error("raycaster exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("-log-level: %w", err)
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})), nil
}

func run(configPath string, watch, dumpConfig bool, logger *slog.Logger) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if dumpConfig {
		out, err := config.Encode(cfg)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(out)
		return err
	}

	session, err := game.NewSession(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	opts := []screen.Option{screen.WithLogger(logger)}
	if watch {
		if configPath == "" {
			return fmt.Errorf("-watch needs -config")
		}
		w, err := config.NewWatcher(configPath)
		if err != nil {
			return fmt.Errorf("watch %s: %w", configPath, err)
		}
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		reloads := make(chan config.Config, 1)
		go watchConfig(ctx, w.Events, w.Errors, reloads, logger)
		opts = append(opts, screen.WithReloads(reloads))
		logger.Info("watching config", "path", configPath)
	}

	ebiten.SetTPS(cfg.TickRate)
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowTitle(screen.Title(session))
	if err := ebiten.RunGame(screen.New(session, opts...)); err != nil {
		return err
	}
	sl := session.SimLog()
	logger.Info("goodbye",
		"summary", session.Summary(),
		"fires", sl.CountCategory("player", "fire"),
		"bumps", sl.CountCategory("player", "bump"),
		"contacts", sl.CountCategory("enemy", "contact"))
	logger.Debug("event log\n" + sl.Format())
	return nil
}
