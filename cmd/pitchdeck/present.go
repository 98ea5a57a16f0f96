package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"pitchdeck/internal/deck"
	"pitchdeck/internal/eventbus"
	"pitchdeck/internal/pagination"
	"pitchdeck/internal/render"
	"pitchdeck/internal/ui"
	"pitchdeck/internal/watch"
)

func runPresent(cmd *cobra.Command, opts *rootOptions, args []string) error {
	deckPath, err := resolveDeckPath(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(opts)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New(logger)
	defer bus.Close()

	cfg, err := loadConfig(opts, deckPath, bus, logger)
	if err != nil {
		return err
	}

	loadOpts := deck.LoadOptions{Pattern: cfg.Deck.Pattern}
	d, err := deck.Load(deckPath, loadOpts)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, d.Meta, opts, cmd.Flags()); err != nil {
		return err
	}
	logger.Info("deck loaded",
		zap.String("path", deckPath),
		zap.Int("slides", d.Len()),
		zap.String("pagination", cfg.UI.Pagination),
	)

	renderer, err := render.New(render.Options{
		Style:  cfg.UI.Theme,
		Width:  cfg.UI.WordWrap,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	pager, err := pagination.New(cfg.UI.Pagination, pagination.DefaultStyles())
	if err != nil {
		return err
	}

	model, err := ui.NewModel(ui.Options{
		Config:     cfg,
		Deck:       d,
		Renderer:   renderer,
		Pagination: pager,
		Bus:        bus,
		Logger:     logger,
		Fullscreen: ui.TerminalFullscreen{Out: os.Stdout},
		Reload: func() (*deck.Deck, error) {
			return deck.Load(deckPath, loadOpts)
		},
		StartSlide: opts.start,
	})
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithContext(ctx), tea.WithMouseAllMotion())

	// Forward file changes to the UI
	bus.Subscribe(eventbus.EventDeckChanged, func(e eventbus.DomainEvent) {
		p.Send(ui.EventMsg{Event: e})
	})
	bus.Subscribe(eventbus.EventSlideChanged, func(e eventbus.DomainEvent) {
		if ev, ok := e.(eventbus.SlideChangedEvent); ok {
			logger.Debug("slide shown",
				zap.Int("from", ev.From.Index),
				zap.Int("to", ev.To.Index),
				zap.String("title", ev.To.Title),
			)
		}
	})

	if cfg.Deck.Watch {
		w, err := watch.New(deckPath, cfg.Deck.Pattern, bus, logger)
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		defer w.Stop()
	}

	logger.Info("starting presenter")
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		logger.Error("presenter failed", zap.Error(err))
		return fmt.Errorf("error running presenter: %w", err)
	}
	logger.Info("presenter exited")
	return nil
}
