// Package cache maintains the local page archive: downloading,
// extracting, ageing and clearing it. The page store itself is read
// by pkg/pages; this package is the only writer.
package cache

import (
	"archive/tar"
	"compress/gzip"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/arthur-debert/quickref/pkg/errors"
	"github.com/arthur-debert/quickref/pkg/logging"
)

// StaleAfter is the cache age after which a staleness warning is
// shown.
const StaleAfter = 30 * 24 * time.Hour

// Updater downloads the page archive and unpacks it into the pages
// directory.
type Updater struct {
	// URL of the gzipped tar archive of the upstream page repository
	URL string

	// PagesDir is the directory the per-language page directories are
	// extracted into
	PagesDir string

	// Client defaults to a proxy-aware client with a timeout
	Client *http.Client
}

func (u *Updater) client() *http.Client {
	if u.Client != nil {
		return u.Client
	}
	return &http.Client{Timeout: 3 * time.Minute}
}

// Update downloads and extracts the archive. The new pages are
// unpacked next to the live directory first and swapped in afterwards
// so a failed download never destroys a working cache.
func (u *Updater) Update() error {
	logger := logging.GetLogger("cache")

	resp, err := u.client().Get(u.URL)
	if err != nil {
		return errors.Wrapf(err, errors.ErrUpdateDownload,
			"could not download page archive").WithDetail("url", u.URL)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return errors.Newf(errors.ErrUpdateDownload,
			"could not download page archive: HTTP %d", resp.StatusCode).
			WithDetail("url", u.URL)
	}

	staging := u.PagesDir + ".part"
	if err := os.RemoveAll(staging); err != nil {
		return errors.Wrap(err, errors.ErrUpdateExtract, "could not clean staging directory")
	}
	if err := extractPages(resp.Body, staging); err != nil {
		os.RemoveAll(staging)
		return err
	}

	if err := os.RemoveAll(u.PagesDir); err != nil {
		return errors.Wrapf(err, errors.ErrUpdateExtract,
			"could not remove old pages").WithDetail("path", u.PagesDir)
	}
	if err := os.Rename(staging, u.PagesDir); err != nil {
		return errors.Wrap(err, errors.ErrUpdateExtract, "could not activate new pages")
	}

	logger.Info().Str("dir", u.PagesDir).Msg("Page cache updated")
	return nil
}

// extractPages unpacks every page file from the gzipped tarball into
// dest. Archive entries are laid out as
// <repo>-<branch>/pages[.lang]/<platform>/<command>.md; the leading
// repository component is stripped and everything outside page
// directories is skipped.
func extractPages(r io.Reader, dest string) error {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return errors.Wrap(err, errors.ErrUpdateExtract, "archive is not gzip compressed")
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrUpdateExtract, "could not read archive")
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		rel, ok := pageRelPath(hdr.Name)
		if !ok {
			continue
		}

		target := filepath.Join(dest, rel)
		if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
			return errors.Wrapf(err, errors.ErrDirCreate,
				"could not create page directory").WithDetail("path", filepath.Dir(target))
		}
		out, err := os.Create(target)
		if err != nil {
			return errors.Wrapf(err, errors.ErrUpdateExtract,
				"could not create page file").WithDetail("path", target)
		}
		if _, err := io.Copy(out, tr); err != nil {
			out.Close()
			return errors.Wrapf(err, errors.ErrUpdateExtract,
				"could not write page file").WithDetail("path", target)
		}
		if err := out.Close(); err != nil {
			return errors.Wrapf(err, errors.ErrUpdateExtract,
				"could not write page file").WithDetail("path", target)
		}
	}
}

// pageRelPath maps an archive entry name to a path relative to the
// pages directory, reporting false for entries that are not page
// files. Entry names are normalized to guard against path traversal.
func pageRelPath(name string) (string, bool) {
	clean := filepath.Clean(strings.TrimPrefix(name, "./"))
	parts := strings.Split(clean, "/")
	// <repo>/<pages-dir>/<platform>/<command>.md
	if len(parts) != 4 {
		return "", false
	}
	for _, p := range parts {
		if p == ".." || p == "" {
			return "", false
		}
	}
	if parts[1] != "pages" && !strings.HasPrefix(parts[1], "pages.") {
		return "", false
	}
	if !strings.HasSuffix(parts[3], ".md") {
		return "", false
	}
	return filepath.Join(parts[1], parts[2], parts[3]), true
}

// Age returns how long ago the pages directory was last updated. The
// second return value is false when no cache exists.
func Age(pagesDir string) (time.Duration, bool) {
	info, err := os.Stat(pagesDir)
	if err != nil {
		return 0, false
	}
	return time.Since(info.ModTime()), true
}

// Clear removes the extracted pages. A missing directory is not an
// error; a pages path that is not a directory is.
func Clear(pagesDir string) error {
	info, err := os.Stat(pagesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrapf(err, errors.ErrFileAccess,
			"could not access cache").WithDetail("path", pagesDir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrCacheCorrupt,
			"cache path is not a directory").WithDetail("path", pagesDir)
	}
	if err := os.RemoveAll(pagesDir); err != nil {
		return errors.Wrapf(err, errors.ErrFileAccess,
			"could not remove cache directory").WithDetail("path", pagesDir)
	}
	return nil
}
