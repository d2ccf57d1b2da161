package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/quickref/pkg/markup"
)

// renderPage renders raw page content with unstyled output.
func renderPage(t *testing.T, page string, compact bool) string {
	t.Helper()
	var buf strings.Builder
	r := New(&buf, StyleSheet{}, compact)
	require.NoError(t, r.RenderAll(markup.NewScanner(strings.NewReader(page))))
	return buf.String()
}

func TestRenderAll(t *testing.T) {
	page := "# foo\n\n> does foo\n\n- runs foo:\n\n`foo {{bar}}`\n"
	got := renderPage(t, page, false)

	want := "\n" + // blank after dropped title
		"  does foo\n" +
		"\n" +
		"  - runs foo:\n" +
		"\n" +
		"  foo bar\n" +
		"\n" // terminating break
	assert.Equal(t, want, got)
}

func TestRenderAllCompact(t *testing.T) {
	page := "# foo\n\n> does foo\n\n- runs foo:\n\n`foo {{bar}}`\n"
	got := renderPage(t, page, true)

	want := "  does foo\n" +
		"  - runs foo:\n" +
		"  foo bar\n" +
		"\n"
	assert.Equal(t, want, got)
}

func TestRenderBothDialectsIdentically(t *testing.T) {
	markers := "# tar\n\n> archive utility\n\n- extract:\n\n`tar xf {{file}}`\n"
	indented := "tar\n===\n\n> archive utility\n\nextract:\n\n    tar xf {{file}}\n"

	assert.Equal(t, renderPage(t, markers, false), renderPage(t, indented, false))
}

func TestRenderIsIdempotent(t *testing.T) {
	page := "# foo\n\n> does foo\n\n`foo {{bar}}`\n"
	assert.Equal(t, renderPage(t, page, false), renderPage(t, page, false))
}

func TestRenderDropsOtherLines(t *testing.T) {
	page := "# foo\nmalformed noise\n> real description\n"
	got := renderPage(t, page, false)
	assert.Equal(t, "  real description\n\n", got)
}

func TestRenderPageWithPatchContent(t *testing.T) {
	// Page plus appended patch, as produced by the lookup reader
	page := "# foo\n\n`foo`\n\n- patched line:\n\n`patched`\n"
	got := renderPage(t, page, false)

	want := "\n" +
		"  foo\n" +
		"\n" +
		"  - patched line:\n" +
		"\n" +
		"  patched\n" +
		"\n"
	assert.Equal(t, want, got)
}
