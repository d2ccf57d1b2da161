package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv points quickref at a fresh cache and config location and
// returns the cache dir.
func testEnv(t *testing.T) string {
	t.Helper()
	cacheDir := t.TempDir()
	t.Setenv("QUICKREF_CACHE_DIR", cacheDir)
	t.Setenv("QUICKREF_CONFIG_DIR", t.TempDir())
	t.Setenv("XDG_STATE_HOME", t.TempDir())
	t.Setenv("LANG", "")
	t.Setenv("LANGUAGE", "")
	t.Setenv("NO_COLOR", "1")
	return cacheDir
}

// writeCachePage adds a page to the extracted cache.
func writeCachePage(t *testing.T, cacheDir string, rel, content string) {
	t.Helper()
	path := filepath.Join(cacheDir, "tldr-pages", rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

// execute runs the root command with args, returning stdout, stderr
// and the execution error.
func execute(args ...string) (string, string, error) {
	cmd := NewRootCmd()
	var stdout, stderr strings.Builder
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestShowPage(t *testing.T) {
	cacheDir := testEnv(t)
	writeCachePage(t, cacheDir, "pages/common/foo.md",
		"# foo\n\n> does foo\n\n- runs foo:\n\n`foo {{bar}}`\n")

	stdout, _, err := execute("foo", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, stdout, "  does foo\n")
	assert.Contains(t, stdout, "  - runs foo:\n")
	assert.Contains(t, stdout, "  foo bar\n")
}

func TestShowPageMultiWordCommand(t *testing.T) {
	cacheDir := testEnv(t)
	writeCachePage(t, cacheDir, "pages/common/git-log.md",
		"# git log\n\n> shows history\n")

	stdout, _, err := execute("git", "log", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "shows history")
}

func TestPageNotFound(t *testing.T) {
	cacheDir := testEnv(t)
	writeCachePage(t, cacheDir, "pages/common/foo.md", "# foo\n")

	_, stderr, err := execute("baz", "--color", "never")
	require.Error(t, err)
	assert.Contains(t, stderr, "not found")
}

func TestMissingCache(t *testing.T) {
	testEnv(t)

	_, stderr, err := execute("foo", "--color", "never")
	require.Error(t, err)
	assert.Contains(t, stderr, "--update")
}

func TestRawOutput(t *testing.T) {
	cacheDir := testEnv(t)
	raw := "# foo\n\n> does foo\n\n`foo {{bar}}`\n"
	writeCachePage(t, cacheDir, "pages/common/foo.md", raw)

	stdout, _, err := execute("foo", "--raw", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, raw, stdout)
}

func TestListPages(t *testing.T) {
	cacheDir := testEnv(t)
	writeCachePage(t, cacheDir, "pages/common/foo.md", "# foo\n")
	writeCachePage(t, cacheDir, "pages/common/bar.md", "# bar\n")

	stdout, _, err := execute("--list", "--color", "never")
	require.NoError(t, err)
	assert.Equal(t, "bar\nfoo\n", stdout)
}

func TestRenderFile(t *testing.T) {
	testEnv(t)
	page := filepath.Join(t.TempDir(), "own.md")
	require.NoError(t, os.WriteFile(page,
		[]byte("# own\n\n> a local page\n"), 0644))

	stdout, _, err := execute("--render", page, "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "a local page")
}

func TestPlatformFlag(t *testing.T) {
	cacheDir := testEnv(t)
	writeCachePage(t, cacheDir, "pages/windows/dir.md", "# dir\n\n> lists files\n")

	stdout, _, err := execute("dir", "--platform", "windows", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "lists files")

	_, _, err = execute("dir", "--platform", "beos")
	require.Error(t, err)
}

func TestLanguageFlag(t *testing.T) {
	cacheDir := testEnv(t)
	writeCachePage(t, cacheDir, "pages.fr/common/foo.md", "# foo\n\n> fait foo\n")
	writeCachePage(t, cacheDir, "pages/common/foo.md", "# foo\n\n> does foo\n")

	stdout, _, err := execute("foo", "--language", "fr", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "fait foo")
}

func TestCustomPatchApplied(t *testing.T) {
	cacheDir := testEnv(t)
	customDir := t.TempDir()
	writeCachePage(t, cacheDir, "pages/common/foo.md", "# foo\n\n`foo`\n")
	require.NoError(t, os.WriteFile(filepath.Join(customDir, "foo.patch.md"),
		[]byte("- patched line:\n\n`patched`\n"), 0644))
	t.Setenv("QUICKREF_DIRECTORIES__CUSTOM_PAGES_DIR", customDir)

	stdout, _, err := execute("foo", "--color", "never")
	require.NoError(t, err)
	assert.Contains(t, stdout, "  foo\n")
	assert.Contains(t, stdout, "  - patched line:\n")
	assert.Contains(t, stdout, "  patched\n")
}

func TestShowPaths(t *testing.T) {
	cacheDir := testEnv(t)

	stdout, _, err := execute("--show-paths")
	require.NoError(t, err)
	assert.Contains(t, stdout, cacheDir)
	assert.Contains(t, stdout, "env variable")
}

func TestSeedConfig(t *testing.T) {
	testEnv(t)

	_, stderr, err := execute("--seed-config")
	require.NoError(t, err)
	assert.Contains(t, stderr, "config.toml")

	// Seeding twice must fail
	_, _, err = execute("--seed-config")
	require.Error(t, err)
}

func TestClearCache(t *testing.T) {
	cacheDir := testEnv(t)
	writeCachePage(t, cacheDir, "pages/common/foo.md", "# foo\n")

	_, _, err := execute("--clear-cache")
	require.NoError(t, err)
	assert.NoDirExists(t, filepath.Join(cacheDir, "tldr-pages"))
}

func TestNoCommand(t *testing.T) {
	testEnv(t)

	_, _, err := execute("--color", "never")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no command specified")
}
