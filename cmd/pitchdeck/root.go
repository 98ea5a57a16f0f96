package main

import (
	"strings"

	"github.com/spf13/cobra"

	"pitchdeck/internal/pagination"
)

// rootOptions holds the flags of the present command
type rootOptions struct {
	configPath   string
	pagination   string
	theme        string
	watch        bool
	noFullscreen bool
	logFile      string
	verbose      bool
	start        int
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "pitchdeck [deck]",
		Short: "Present markdown slide decks in the terminal",
		Long: `pitchdeck presents a markdown deck in the terminal. A deck is either a
single file with slides separated by "---" lines, or a directory with one
markdown file per slide. Without an argument slides.md or slides/ in the
current directory is used.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPresent(cmd, opts, args)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/pitchdeck/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "log file (default in the user cache directory)")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cmd.Flags().StringVar(&opts.pagination, "pagination", "", "pagination style: "+strings.Join(pagination.Names(), ", "))
	cmd.Flags().StringVar(&opts.theme, "theme", "", `markdown theme: a glamour style name, a JSON style path or "auto"`)
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "reload the deck when its files change")
	cmd.Flags().BoolVar(&opts.noFullscreen, "no-fullscreen", false, "stay on the main screen")
	cmd.Flags().IntVarP(&opts.start, "start", "s", 1, "slide to start on")

	cmd.AddCommand(newOutlineCmd(opts))
	cmd.AddCommand(newExportCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	return cmd
}
