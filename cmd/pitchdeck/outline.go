package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"pitchdeck/internal/deck"
)

func newOutlineCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "outline [deck]",
		Short: "Print the numbered slide titles of a deck",
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
			return writeOutline(cmd.OutOrStdout(), d)
		},
	}
}

func writeOutline(w io.Writer, d *deck.Deck) error {
	header := d.Title
	if d.Author != "" {
		header += " by " + d.Author
	}
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	width := len(fmt.Sprint(d.Len()))
	for _, s := range d.Slides {
		if _, err := fmt.Fprintf(w, "%*d. %s\n", width, s.Index, s.Title); err != nil {
			return err
		}
	}
	return nil
}
