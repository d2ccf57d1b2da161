// Package config loads and represents the quickref configuration.
// Configuration is layered: built-in defaults, then config.toml, then
// QUICKREF_* environment variables.
package config

import (
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	qerrors "github.com/arthur-debert/quickref/pkg/errors"
)

// EnvPrefix is the prefix for configuration environment variables.
// A double underscore separates sections from keys, e.g.
// QUICKREF_DISPLAY__COMPACT=true.
const EnvPrefix = "QUICKREF_"

// StyleConfig holds the five independent style records. The records
// have no relationship beyond being looked up by line classification.
type StyleConfig struct {
	CommandName     Style `koanf:"command_name" toml:"command_name"`
	Description     Style `koanf:"description" toml:"description"`
	ExampleText     Style `koanf:"example_text" toml:"example_text"`
	ExampleCode     Style `koanf:"example_code" toml:"example_code"`
	ExampleVariable Style `koanf:"example_variable" toml:"example_variable"`
}

// DisplayConfig controls how pages are shown.
type DisplayConfig struct {
	// Compact drops the decorative blank lines between sections
	Compact bool `koanf:"compact" toml:"compact"`

	// UsePager pipes output through the pager by default
	UsePager bool `koanf:"use_pager" toml:"use_pager"`
}

// DirectoriesConfig overrides page locations.
type DirectoriesConfig struct {
	// CacheDir overrides the XDG cache directory
	CacheDir string `koanf:"cache_dir" toml:"cache_dir"`

	// CustomPagesDir is the flat directory holding .page.md and
	// .patch.md user overrides. Empty disables custom pages.
	CustomPagesDir string `koanf:"custom_pages_dir" toml:"custom_pages_dir"`
}

// UpdatesConfig controls the cache update mechanism.
type UpdatesConfig struct {
	AutoUpdate bool `koanf:"auto_update" toml:"auto_update"`

	// AutoUpdateIntervalHours is the cache age after which an
	// automatic update is triggered
	AutoUpdateIntervalHours int `koanf:"auto_update_interval_hours" toml:"auto_update_interval_hours"`

	// ArchiveURL is where the page archive is downloaded from
	ArchiveURL string `koanf:"archive_url" toml:"archive_url"`
}

// Config is the resolved quickref configuration.
type Config struct {
	Style       StyleConfig       `koanf:"style" toml:"style"`
	Display     DisplayConfig     `koanf:"display" toml:"display"`
	Directories DirectoriesConfig `koanf:"directories" toml:"directories"`
	Updates     UpdatesConfig     `koanf:"updates" toml:"updates"`
}

// DefaultArchiveURL is the upstream page archive.
const DefaultArchiveURL = "https://github.com/tldr-pages/tldr/archive/refs/heads/main.tar.gz"

// Default returns the built-in configuration, mirroring the classic
// color scheme: green example text, cyan code, underlined variables.
func Default() Config {
	return Config{
		Style: StyleConfig{
			CommandName:     Style{Foreground: ColorCyan},
			ExampleText:     Style{Foreground: ColorGreen},
			ExampleCode:     Style{Foreground: ColorCyan},
			ExampleVariable: Style{Foreground: ColorCyan, Underline: true},
		},
		Updates: UpdatesConfig{
			AutoUpdate:              false,
			AutoUpdateIntervalHours: 720,
			ArchiveURL:              DefaultArchiveURL,
		},
	}
}

// Load reads the configuration file at path (skipped when absent) and
// the environment on top of the defaults.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return Config{}, qerrors.Wrapf(err, qerrors.ErrConfigParse,
				"failed to parse config file").WithDetail("path", path)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, qerrors.Wrapf(err, qerrors.ErrConfigLoad,
			"failed to read config file").WithDetail("path", path)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return Config{}, qerrors.Wrap(err, qerrors.ErrConfigLoad,
			"failed to load environment configuration")
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, qerrors.Wrap(err, qerrors.ErrConfigParse,
			"failed to decode configuration")
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// envKey maps QUICKREF_DISPLAY__COMPACT to display.compact. The
// double underscore keeps single underscores available for key names
// like custom_pages_dir.
func envKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	return strings.ReplaceAll(strings.ToLower(s), "__", ".")
}

func (c *Config) validate() error {
	for _, s := range []Style{
		c.Style.CommandName, c.Style.Description, c.Style.ExampleText,
		c.Style.ExampleCode, c.Style.ExampleVariable,
	} {
		if err := s.validate(); err != nil {
			return err
		}
	}
	if c.Updates.AutoUpdateIntervalHours < 0 {
		return qerrors.New(qerrors.ErrConfigValid,
			"updates.auto_update_interval_hours must not be negative")
	}
	return nil
}
