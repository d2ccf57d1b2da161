package paths

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv(EnvCacheDir, "")
	t.Setenv(EnvConfigDir, "")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")

	p, err := New("")
	require.NoError(t, err)

	// adrg/xdg snapshots env at init, so only check provenance and shape
	assert.Equal(t, SourceOsConvention, p.CacheDirSource())
	assert.Equal(t, SourceOsConvention, p.ConfigDirSource())
	assert.True(t, strings.HasSuffix(p.CacheDir(), AppDirName))
	assert.True(t, strings.HasSuffix(p.ConfigDir(), AppDirName))
}

func TestNewEnvOverride(t *testing.T) {
	tempDir := t.TempDir()
	t.Setenv(EnvCacheDir, tempDir)

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, tempDir, p.CacheDir())
	assert.Equal(t, SourceEnvVar, p.CacheDirSource())
	assert.Equal(t, filepath.Join(tempDir, PagesDirName), p.PagesDir())
}

func TestNewConfigOverride(t *testing.T) {
	t.Setenv(EnvCacheDir, "")
	tempDir := t.TempDir()

	p, err := New(tempDir)
	require.NoError(t, err)

	assert.Equal(t, tempDir, p.CacheDir())
	assert.Equal(t, SourceConfigVar, p.CacheDirSource())
}

func TestEnvBeatsConfig(t *testing.T) {
	envDir := t.TempDir()
	cfgDir := t.TempDir()
	t.Setenv(EnvCacheDir, envDir)

	p, err := New(cfgDir)
	require.NoError(t, err)

	assert.Equal(t, envDir, p.CacheDir())
	assert.Equal(t, SourceEnvVar, p.CacheDirSource())
}

func TestConfigFile(t *testing.T) {
	t.Setenv(EnvConfigDir, "/etc/quickref")

	p, err := New("")
	require.NoError(t, err)

	assert.Equal(t, "/etc/quickref/config.toml", p.ConfigFile())
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "pages"), ExpandHome("~/pages"))
	assert.Equal(t, home, ExpandHome("~"))
	assert.Equal(t, "/abs/path", ExpandHome("/abs/path"))
	assert.Equal(t, "relative", ExpandHome("relative"))
}

func TestSourceString(t *testing.T) {
	assert.Equal(t, "OS convention", SourceOsConvention.String())
	assert.Equal(t, "env variable", SourceEnvVar.String())
	assert.Equal(t, "config file variable", SourceConfigVar.String())
}

func TestDescribe(t *testing.T) {
	t.Setenv(EnvCacheDir, "/var/cache/quickref")
	t.Setenv(EnvConfigDir, "/etc/quickref")

	p, err := New("")
	require.NoError(t, err)

	desc := p.Describe("/home/u/.local/share/quickref/pages")
	assert.Contains(t, desc, "/var/cache/quickref")
	assert.Contains(t, desc, "env variable")
	assert.Contains(t, desc, "Custom pages dir")
}
