// Package paths provides centralized path handling for quickref.
// It implements XDG Base Directory specification compliance and
// provides a consistent API for all path operations in the codebase.
package paths

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/quickref/pkg/errors"
)

// Environment variable names
const (
	// EnvCacheDir overrides the XDG cache directory for quickref
	EnvCacheDir = "QUICKREF_CACHE_DIR"

	// EnvConfigDir overrides the XDG config directory for quickref
	EnvConfigDir = "QUICKREF_CONFIG_DIR"
)

// Directory and file names used inside the cache and config dirs.
// These are not user-configurable; user-facing paths belong in
// pkg/config instead.
const (
	// AppDirName is the directory name for quickref-specific files
	AppDirName = "quickref"

	// ConfigFileName is the name of the configuration file
	ConfigFileName = "config.toml"

	// PagesDirName is the subdirectory of the cache that holds the
	// extracted page archive
	PagesDirName = "tldr-pages"
)

// Source describes why a certain path (config dir, cache dir) was
// chosen. Shown by --show-paths.
type Source int

const (
	// SourceOsConvention means the path follows the OS convention (XDG)
	SourceOsConvention Source = iota
	// SourceEnvVar means the path was set via a QUICKREF_* env variable
	SourceEnvVar
	// SourceConfigVar means the path was set in the config file
	SourceConfigVar
)

func (s Source) String() string {
	switch s {
	case SourceOsConvention:
		return "OS convention"
	case SourceEnvVar:
		return "env variable"
	case SourceConfigVar:
		return "config file variable"
	default:
		return "unknown"
	}
}

// Paths provides centralized path management for quickref
type Paths struct {
	cacheDir     string
	cacheSource  Source
	configDir    string
	configSource Source
}

// New determines the cache and config directories from the
// environment, falling back to the XDG base directories. An optional
// non-empty cacheOverride (from the config file) takes precedence
// over the XDG fallback but not over the env variable.
func New(cacheOverride string) (*Paths, error) {
	p := &Paths{}

	switch {
	case os.Getenv(EnvCacheDir) != "":
		p.cacheDir = ExpandHome(os.Getenv(EnvCacheDir))
		p.cacheSource = SourceEnvVar
	case cacheOverride != "":
		p.cacheDir = ExpandHome(cacheOverride)
		p.cacheSource = SourceConfigVar
	default:
		p.cacheDir = filepath.Join(xdg.CacheHome, AppDirName)
		p.cacheSource = SourceOsConvention
	}

	if env := os.Getenv(EnvConfigDir); env != "" {
		p.configDir = ExpandHome(env)
		p.configSource = SourceEnvVar
	} else {
		p.configDir = filepath.Join(xdg.ConfigHome, AppDirName)
		p.configSource = SourceOsConvention
	}

	for _, dir := range []string{p.cacheDir, p.configDir} {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileAccess,
				"failed to get absolute path for %s", dir)
		}
		if dir == p.cacheDir {
			p.cacheDir = abs
		} else {
			p.configDir = abs
		}
	}

	return p, nil
}

// CacheDir returns the root of the page cache
func (p *Paths) CacheDir() string {
	return p.cacheDir
}

// CacheDirSource returns why the cache dir was chosen
func (p *Paths) CacheDirSource() Source {
	return p.cacheSource
}

// PagesDir returns the directory holding the extracted page archive
func (p *Paths) PagesDir() string {
	return filepath.Join(p.cacheDir, PagesDirName)
}

// ConfigDir returns the quickref config directory
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// ConfigDirSource returns why the config dir was chosen
func (p *Paths) ConfigDirSource() Source {
	return p.configSource
}

// ConfigFile returns the path to config.toml. The file is not
// guaranteed to exist.
func (p *Paths) ConfigFile() string {
	return filepath.Join(p.configDir, ConfigFileName)
}

// ExpandHome expands a leading ~ to the user's home directory
func ExpandHome(path string) string {
	if path == "~" || len(path) >= 2 && path[:2] == "~/" {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if path == "~" {
			return home
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Describe returns a human-readable listing of all paths and their
// provenance, one per line.
func (p *Paths) Describe(customPagesDir string) string {
	out := fmt.Sprintf("Config dir:       %s (%s)\n", p.configDir, p.configSource)
	out += fmt.Sprintf("Config file:      %s\n", p.ConfigFile())
	out += fmt.Sprintf("Cache dir:        %s (%s)\n", p.cacheDir, p.cacheSource)
	out += fmt.Sprintf("Pages dir:        %s\n", p.PagesDir())
	if customPagesDir != "" {
		out += fmt.Sprintf("Custom pages dir: %s\n", customPagesDir)
	}
	return out
}
