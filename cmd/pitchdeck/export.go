package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"pitchdeck/internal/config"
	"pitchdeck/internal/deck"
	"pitchdeck/internal/icons"
	"pitchdeck/internal/render"
)

type exportOptions struct {
	output  string
	theme   string
	width   int
	workers int
}

func newExportCmd(root *rootOptions) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [deck]",
		Short: "Render every slide into a plain text handout",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			deckPath, err := resolveDeckPath(args)
			if err != nil {
				return err
			}
			logger, err := newLogger(root)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			cfg, err := loadConfig(root, deckPath, nil, logger)
			if err != nil {
				return err
			}
			d, err := deck.Load(deckPath, deck.LoadOptions{Pattern: cfg.Deck.Pattern})
			if err != nil {
				return err
			}

			if err := applyExportOverrides(cfg, d.Meta, opts, cmd.Flags()); err != nil {
				return err
			}

			r, err := render.New(render.Options{Style: cfg.UI.Theme, Width: opts.width, Logger: logger})
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(d.Len(),
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("Rendering slides"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			pages, err := r.RenderAll(cmd.Context(), d.Slides, opts.workers, func() { _ = bar.Add(1) })
			if err != nil {
				return err
			}
			_ = bar.Finish()

			if opts.output == "" || opts.output == "-" {
				err = writeHandout(cmd.OutOrStdout(), d, pages)
			} else {
				err = writeHandoutFile(opts.output, d, pages)
			}
			if err != nil {
				return fmt.Errorf("failed to write handout: %w", err)
			}
			logger.Info("deck exported", zap.String("output", opts.output), zap.Int("slides", d.Len()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "-", "output file, - for stdout")
	cmd.Flags().StringVar(&opts.theme, "theme", "", "markdown theme, overrides config and front matter")
	cmd.Flags().IntVar(&opts.width, "width", 80, "wrap column")
	cmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "parallel renderers")
	return cmd
}

// applyExportOverrides layers front matter and the export flags over cfg
func applyExportOverrides(cfg *config.Config, meta deck.Meta, opts *exportOptions, flags *pflag.FlagSet) error {
	if err := applyOverrides(cfg, meta, &rootOptions{}, nil); err != nil {
		return err
	}
	if flags != nil && flags.Changed("theme") {
		cfg.UI.Theme = opts.theme
	}
	return cfg.Validate()
}

func writeHandoutFile(path string, d *deck.Deck, pages []string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", path, cerr)
		}
	}()
	return writeHandout(f, d, pages)
}

// writeHandout writes one section per slide, headed by its number and title
func writeHandout(w io.Writer, d *deck.Deck, pages []string) error {
	if _, err := fmt.Fprintf(w, "%s\n\n", d.Title); err != nil {
		return err
	}
	for i, page := range pages {
		s := d.Slides[i]
		header := fmt.Sprintf("── %d / %d · %s ", s.Index, d.Len(), s.Title)
		if _, err := fmt.Fprintf(w, "%s\n%s\n\n", header, icons.Expand(strings.TrimLeft(page, "\n"))); err != nil {
			return err
		}
	}
	return nil
}
