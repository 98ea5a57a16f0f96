package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"pitchdeck/internal/config"
	"pitchdeck/internal/deck"
	"pitchdeck/internal/eventbus"
	"pitchdeck/internal/logging"
)

// defaultDeckPaths are tried in order when no deck argument is given
var defaultDeckPaths = []string{"slides.md", "slides"}

// resolveDeckPath picks the deck argument or the first existing default
func resolveDeckPath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	for _, p := range defaultDeckPaths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("no deck given and neither slides.md nor slides/ exists")
}

// localConfigPath is the per-deck config file next to a deck file, or
// inside a directory deck
func localConfigPath(deckPath string) string {
	dir := deckPath
	if info, err := os.Stat(deckPath); err != nil || !info.IsDir() {
		dir = filepath.Dir(deckPath)
	}
	return filepath.Join(dir, config.LocalFileName)
}

// loadConfig reads the per-deck config when present, the user config
// otherwise. A missing user config yields the defaults.
func loadConfig(opts *rootOptions, deckPath string, bus eventbus.EventBus, logger *zap.Logger) (*config.Config, error) {
	if deckPath != "" {
		local := localConfigPath(deckPath)
		cfg, err := config.NewConfigServiceWithBus(local, bus).LoadFromPath(local)
		if err == nil {
			logger.Info("loaded deck config", zap.String("path", local))
			return cfg, nil
		}
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, err
		}
	}

	svc := config.NewConfigServiceWithBus(opts.configPath, bus)
	cfg, err := svc.Load()
	if err != nil {
		return nil, err
	}
	logger.Info("loaded config", zap.String("path", svc.Path()))
	return cfg, nil
}

// applyOverrides layers deck front matter and then explicitly set flags
// over the loaded config
func applyOverrides(cfg *config.Config, meta deck.Meta, opts *rootOptions, flags *pflag.FlagSet) error {
	if meta.Pagination != "" {
		cfg.UI.Pagination = meta.Pagination
	}
	if meta.Theme != "" {
		cfg.UI.Theme = meta.Theme
	}

	if flags != nil {
		if flags.Changed("pagination") {
			cfg.UI.Pagination = opts.pagination
		}
		if flags.Changed("theme") {
			cfg.UI.Theme = opts.theme
		}
		if flags.Changed("watch") {
			cfg.Deck.Watch = opts.watch
		}
		if flags.Changed("no-fullscreen") && opts.noFullscreen {
			cfg.UI.StartFullscreen = false
		}
	}
	return cfg.Validate()
}

func newLogger(opts *rootOptions) (*zap.Logger, error) {
	return logging.New(logging.Options{Path: opts.logFile, Verbose: opts.verbose})
}
