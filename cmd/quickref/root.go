package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/quickref/internal/version"
	"github.com/arthur-debert/quickref/pkg/logging"
)

// rootFlags holds the flag values of the root command.
type rootFlags struct {
	list         bool
	renderFile   string
	platforms    []string
	language     string
	update       bool
	noAutoUpdate bool
	clearCache   bool
	raw          bool
	pager        bool
	colorWhen    string
	quiet        bool
	showPaths    bool
	seedConfig   bool
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity int
		flags     rootFlags
	)

	rootCmd := &cobra.Command{
		Use:     "quickref [command]",
		Short:   "A fast cheat sheet viewer for the command line",
		Long: `quickref shows concise example-driven help pages for console commands,
looked up in a local page cache with support for per-platform variants,
translations and user-defined override pages.`,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging based on verbosity
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, &flags)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v",
		"Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")

	rootCmd.Flags().BoolVarP(&flags.list, "list", "l", false,
		"List all commands in the page cache")
	rootCmd.Flags().StringVarP(&flags.renderFile, "render", "f", "",
		"Render a specific page file instead of looking one up")
	rootCmd.Flags().StringArrayVarP(&flags.platforms, "platform", "p", nil,
		"Platforms to search, in preference order (linux, macos, windows, ...)")
	rootCmd.Flags().StringVarP(&flags.language, "language", "L", "",
		"Override the page language")
	rootCmd.Flags().BoolVarP(&flags.update, "update", "u", false,
		"Update the local page cache")
	rootCmd.Flags().BoolVar(&flags.noAutoUpdate, "no-auto-update", false,
		"Skip the automatic cache update for this run")
	rootCmd.Flags().BoolVarP(&flags.clearCache, "clear-cache", "c", false,
		"Delete the local page cache")
	rootCmd.Flags().BoolVarP(&flags.raw, "raw", "r", false,
		"Print the raw page markup instead of rendering it")
	rootCmd.Flags().BoolVar(&flags.pager, "pager", false,
		"Pipe the page through a pager")
	rootCmd.Flags().StringVar(&flags.colorWhen, "color", "auto",
		"When to use colored output (always, auto, never)")
	rootCmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false,
		"Suppress informational messages")
	rootCmd.Flags().BoolVar(&flags.showPaths, "show-paths", false,
		"Show the directories used by quickref")
	rootCmd.Flags().BoolVar(&flags.seedConfig, "seed-config", false,
		"Write a default configuration file")

	rootCmd.SetVersionTemplate(fmt.Sprintf("quickref %s (commit %s, built %s)\n",
		version.Version, version.Commit, version.Date))

	return rootCmd
}
