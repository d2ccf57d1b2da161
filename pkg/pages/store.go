// Package pages implements the page store layout and the resolution
// of command names to cheat sheet page files.
//
// The store is modelled as a value: a root path plus preference
// lists. Every lookup recomputes the search path from scratch, so
// there is no mutable cursor state to go stale between invocations.
package pages

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/arthur-debert/quickref/pkg/errors"
	"github.com/arthur-debert/quickref/pkg/logging"
)

// Suffixes of files in the custom pages directory. A .page.md file
// fully replaces a store page, a .patch.md file is appended to one.
const (
	pageSuffix        = ".md"
	customPageSuffix  = ".page.md"
	customPatchSuffix = ".patch.md"
)

// Store describes where pages live and in which order candidate
// locations are searched. It performs read-only traversal only.
type Store struct {
	// Root is the directory containing the per-language page
	// directories ("pages", "pages.fr", ...).
	Root string

	// CustomDir is the flat directory holding user overrides. Empty
	// means no custom pages are configured.
	CustomDir string

	// Platforms is the platform preference list, most preferred first.
	Platforms []Platform

	// Languages is the language preference list, most preferred first.
	Languages []Language
}

// NewStore builds a Store with normalized preference lists: duplicates
// are dropped (first occurrence wins), PlatformCommon and the default
// language are appended as final fallbacks when absent.
func NewStore(root, customDir string, platforms []Platform, languages []Language) *Store {
	ps := make([]Platform, 0, len(platforms)+1)
	for _, p := range platforms {
		if !containsPlatform(ps, p) {
			ps = append(ps, p)
		}
	}
	if !containsPlatform(ps, PlatformCommon) {
		ps = append(ps, PlatformCommon)
	}

	return &Store{
		Root:      root,
		CustomDir: customDir,
		Platforms: ps,
		Languages: normalizeLanguages(languages),
	}
}

// Resolve finds the best-matching page for a command name. The result
// is nil when no location matches; that is not an error. An error is
// returned only when the store root exists but cannot serve as a page
// directory.
//
// Search order:
//  1. A custom <name>.page.md wins outright and never carries a patch.
//  2. Otherwise platforms are iterated in preference order, and for
//     each platform every language is tried before moving on. The
//     first (platform, language) hit wins, with a custom
//     <name>.patch.md attached when one exists.
func (s *Store) Resolve(name string) (*Lookup, error) {
	logger := logging.GetLogger("pages")
	name = strings.ToLower(name)

	if err := s.checkRoot(); err != nil {
		return nil, err
	}

	if s.CustomDir != "" {
		custom := filepath.Join(s.CustomDir, name+customPageSuffix)
		if isFile(custom) {
			logger.Debug().Str("path", custom).Msg("Custom page found")
			return &Lookup{PagePath: custom, Custom: true}, nil
		}
	}

	patchPath := ""
	if s.CustomDir != "" {
		patch := filepath.Join(s.CustomDir, name+customPatchSuffix)
		if isFile(patch) {
			patchPath = patch
		}
	}

	// Platform is the outer loop: an explicit platform ranking
	// dominates the language preference.
	for _, platform := range s.Platforms {
		for _, language := range s.Languages {
			page := filepath.Join(s.Root, language.Dir(), string(platform), name+pageSuffix)
			if isFile(page) {
				logger.Debug().
					Str("path", page).
					Str("platform", string(platform)).
					Str("language", string(language)).
					Msg("Page found")
				return &Lookup{PagePath: page, PatchPath: patchPath}, nil
			}
		}
	}

	return nil, nil
}

// List returns the names of all commands that Resolve could find, for
// every (language, platform) pair in the preference lists and the
// custom directory, deduplicated and sorted. Provenance is not
// preserved; only presence matters.
func (s *Store) List() ([]string, error) {
	if err := s.checkRoot(); err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})

	for _, language := range s.Languages {
		for _, platform := range s.Platforms {
			dir := filepath.Join(s.Root, language.Dir(), string(platform))
			collectNames(dir, pageSuffix, seen)
		}
	}
	if s.CustomDir != "" {
		collectNames(s.CustomDir, customPageSuffix, seen)
		collectNames(s.CustomDir, customPatchSuffix, seen)
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// checkRoot verifies that the configured root, if present at all, is
// a readable directory. A missing root is fine (empty store); a root
// that exists but is not a directory indicates cache corruption.
func (s *Store) checkRoot() error {
	info, err := os.Stat(s.Root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrCacheCorrupt,
			"cannot access page store").WithDetail("path", s.Root)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrCacheCorrupt,
			"page store root is not a directory").WithDetail("path", s.Root)
	}
	return nil
}

// collectNames adds every file in dir ending with suffix to seen,
// with the suffix stripped. Missing or unreadable directories are
// silently skipped.
func collectNames(dir, suffix string, seen map[string]struct{}) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		// .page.md must not be double-counted as plain .md
		if suffix == pageSuffix &&
			(strings.HasSuffix(name, customPageSuffix) || strings.HasSuffix(name, customPatchSuffix)) {
			continue
		}
		if strings.HasSuffix(name, suffix) {
			seen[strings.TrimSuffix(name, suffix)] = struct{}{}
		}
	}
}

func containsPlatform(platforms []Platform, p Platform) bool {
	for _, x := range platforms {
		if x == p {
			return true
		}
	}
	return false
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
