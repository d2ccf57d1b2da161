package pages

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/quickref/pkg/errors"
)

// Lookup is the immutable result of resolving a command name: the
// path to the chosen page and, for store pages, an optional patch to
// append. A patch is never attached to a custom replacement page.
type Lookup struct {
	// PagePath is the absolute path of the primary page content.
	PagePath string

	// PatchPath is the path of a patch fragment to append, or empty.
	PatchPath string

	// Custom reports whether PagePath is a user-authored full
	// replacement rather than a store page.
	Custom bool
}

// Paths returns the page path followed by the patch path, if any.
func (l *Lookup) Paths() []string {
	if l.PatchPath == "" {
		return []string{l.PagePath}
	}
	return []string{l.PagePath, l.PatchPath}
}

// Reader opens the page content as a single sequential stream. When a
// patch is attached, the stream is the page bytes, one injected
// newline, then the patch bytes, so the patch always starts on a
// fresh line. A resolved file that cannot be opened indicates cache
// corruption and is a hard error.
func (l *Lookup) Reader() (io.ReadCloser, error) {
	page, err := os.Open(l.PagePath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrCacheCorrupt,
			"could not open resolved page").WithDetail("path", l.PagePath)
	}

	if l.PatchPath == "" {
		return page, nil
	}

	patch, err := os.Open(l.PatchPath)
	if err != nil {
		page.Close()
		return nil, errors.Wrapf(err, errors.ErrCacheCorrupt,
			"could not open resolved patch").WithDetail("path", l.PatchPath)
	}

	return &multiFileReader{
		Reader:  io.MultiReader(page, strings.NewReader("\n"), patch),
		closers: []io.Closer{page, patch},
	}, nil
}

// multiFileReader closes all underlying files when the concatenated
// stream is closed.
type multiFileReader struct {
	io.Reader
	closers []io.Closer
}

func (m *multiFileReader) Close() error {
	var first error
	for _, c := range m.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}
