package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/quickref/pkg/cache"
	"github.com/arthur-debert/quickref/pkg/config"
	"github.com/arthur-debert/quickref/pkg/errors"
	"github.com/arthur-debert/quickref/pkg/markup"
	"github.com/arthur-debert/quickref/pkg/pages"
	"github.com/arthur-debert/quickref/pkg/paths"
	"github.com/arthur-debert/quickref/pkg/render"
	"github.com/arthur-debert/quickref/pkg/ui"
)

// run dispatches the root command: maintenance actions first, then
// page lookup and rendering.
func run(cmd *cobra.Command, args []string, flags *rootFlags) error {
	colorMode, err := ui.ParseColorMode(flags.colorWhen)
	if err != nil {
		return err
	}

	// The config dir never depends on the config file, so paths can
	// be computed twice: once to find config.toml, once with the
	// cache-dir override applied.
	bootstrapPaths, err := paths.New("")
	if err != nil {
		return err
	}
	cfg, err := config.Load(bootstrapPaths.ConfigFile())
	if err != nil {
		return err
	}
	pth, err := paths.New(cfg.Directories.CacheDir)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	styled := ui.StylesEnabled(colorMode, os.Stdout)
	msgs := ui.NewMessages(cmd.ErrOrStderr(), ui.StylesEnabled(colorMode, os.Stderr), flags.quiet)

	switch {
	case flags.seedConfig:
		if err := config.Seed(pth.ConfigFile()); err != nil {
			msgs.Error("%v", err)
			return err
		}
		msgs.Info("Successfully created seed config file here: %s", pth.ConfigFile())
		return nil

	case flags.showPaths:
		fmt.Fprint(out, pth.Describe(cfg.Directories.CustomPagesDir))
		return nil

	case flags.clearCache:
		if err := cache.Clear(pth.PagesDir()); err != nil {
			msgs.Error("%v", err)
			return err
		}
		msgs.Info("Successfully deleted cache.")
		return nil
	}

	if flags.update {
		if err := updateCache(&cfg, pth, msgs, flags.quiet); err != nil {
			return err
		}
		if len(args) == 0 && !flags.list && flags.renderFile == "" {
			return nil
		}
	}

	store, err := buildStore(&cfg, pth, flags)
	if err != nil {
		msgs.Error("%v", err)
		return err
	}

	switch {
	case flags.list:
		return listPages(out, store, &cfg, styled, msgs)

	case flags.renderFile != "":
		lookup := &pages.Lookup{PagePath: flags.renderFile}
		return showPage(out, lookup, &cfg, styled, flags, msgs)
	}

	if len(args) == 0 {
		_ = cmd.Help()
		return fmt.Errorf("no command specified")
	}

	// Multi-word commands like "git log" map onto dash-joined pages
	name := strings.ToLower(strings.Join(args, "-"))

	if err := ensureFreshCache(&cfg, pth, msgs, flags); err != nil {
		return err
	}

	lookup, err := store.Resolve(name)
	if err != nil {
		msgs.Error("%v", err)
		return err
	}
	if lookup == nil {
		msgs.Error("Page `%s` not found in cache.\nTry updating with `quickref --update`, or submit a pull request to:\nhttps://github.com/tldr-pages/tldr", name)
		return errors.Newf(errors.ErrNotFound, "page %q not found", name)
	}

	return showPage(out, lookup, &cfg, styled, flags, msgs)
}

// buildStore assembles the page store from config, flags and the
// environment.
func buildStore(cfg *config.Config, pth *paths.Paths, flags *rootFlags) (*pages.Store, error) {
	var platforms []pages.Platform
	for _, raw := range flags.platforms {
		p, err := pages.ParsePlatform(raw)
		if err != nil {
			return nil, err
		}
		platforms = append(platforms, p)
	}
	if len(platforms) == 0 {
		platforms = []pages.Platform{pages.DetectPlatform()}
	}

	var languages []pages.Language
	if flags.language != "" {
		languages = []pages.Language{pages.Language(flags.language)}
	} else {
		languages = pages.LanguagesFromEnv(os.Getenv("LANG"), os.Getenv("LANGUAGE"))
	}

	customDir := paths.ExpandHome(cfg.Directories.CustomPagesDir)
	return pages.NewStore(pth.PagesDir(), customDir, platforms, languages), nil
}

// ensureFreshCache warns about or refreshes an ageing cache and
// reports a missing one.
func ensureFreshCache(cfg *config.Config, pth *paths.Paths, msgs *ui.Messages, flags *rootFlags) error {
	age, ok := cache.Age(pth.PagesDir())
	if !ok {
		msgs.Error("Page cache not found. Please run `quickref --update`.")
		return errors.New(errors.ErrCacheMissing, "page cache not found")
	}

	if cfg.Updates.AutoUpdate && !flags.noAutoUpdate && !flags.update {
		interval := time.Duration(cfg.Updates.AutoUpdateIntervalHours) * time.Hour
		if age > interval {
			return updateCache(cfg, pth, msgs, flags.quiet)
		}
	}

	if age > cache.StaleAfter {
		msgs.Warning("The local page cache is older than %d days. Consider running `quickref --update`.",
			int(cache.StaleAfter.Hours()/24))
	}
	return nil
}

// updateCache downloads a fresh page archive, with a spinner when
// messages are not suppressed.
func updateCache(cfg *config.Config, pth *paths.Paths, msgs *ui.Messages, quiet bool) error {
	updater := &cache.Updater{URL: cfg.Updates.ArchiveURL, PagesDir: pth.PagesDir()}

	if quiet {
		if err := updater.Update(); err != nil {
			msgs.Error("%v", err)
			return err
		}
		return nil
	}

	spinner, _ := pterm.DefaultSpinner.Start("Updating page cache...")
	if err := updater.Update(); err != nil {
		if spinner != nil {
			spinner.Fail("Cache update failed")
		}
		msgs.Error("%v", err)
		return err
	}
	if spinner != nil {
		spinner.Success("Page cache updated.")
	}
	return nil
}

// listPages prints every known command name, one per line. The
// command-name style record is applied when styles are enabled.
func listPages(out io.Writer, store *pages.Store, cfg *config.Config, styled bool, msgs *ui.Messages) error {
	names, err := store.List()
	if err != nil {
		msgs.Error("%v", err)
		return err
	}

	nameStyle := cfg.Style.CommandName.Lipgloss()
	for _, name := range names {
		if styled {
			fmt.Fprintln(out, nameStyle.Render(name))
		} else {
			fmt.Fprintln(out, name)
		}
	}
	return nil
}

// showPage streams the resolved page to the output, raw or rendered,
// optionally through the pager.
func showPage(out io.Writer, lookup *pages.Lookup, cfg *config.Config, styled bool, flags *rootFlags, msgs *ui.Messages) error {
	reader, err := lookup.Reader()
	if err != nil {
		msgs.Error("%v", err)
		return err
	}
	defer reader.Close()

	var pager *ui.Pager
	if flags.pager || cfg.Display.UsePager {
		pager, out = ui.StartPager(os.Stdout)
	}

	if flags.raw {
		_, err = io.Copy(out, reader)
	} else {
		renderer := render.New(out, cfg.StyleSheet(styled), cfg.Display.Compact)
		err = renderer.RenderAll(markup.NewScanner(reader))
	}

	if waitErr := pager.Wait(); waitErr != nil && err == nil {
		err = waitErr
	}
	if err != nil {
		msgs.Error("%v", err)
	}
	return err
}
