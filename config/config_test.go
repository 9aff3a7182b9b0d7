package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	t.Setenv("INDEX_PATH", "")
	t.Setenv("MAKAMDEX_INDEX_DIR", "")

	assert := assert.New(t)
	assert.Equal(":8080", ServeAddr())
	assert.Equal("makamdex-metadata", MetadataTable())
	assert.Equal(1, Workers())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("MAKAMDEX_WORKERS", "4")
	t.Setenv("MEDIA_PATH", "/data/symbtr")

	assert := assert.New(t)
	assert.Equal(4, Workers())
	assert.Equal("/data/symbtr", CorpusDir())
}

func TestLegacyIndexPath(t *testing.T) {
	t.Setenv("MAKAMDEX_INDEX_DIR", "")
	t.Setenv("INDEX_PATH", "/tmp/idx")
	assert.Equal(t, "/tmp/idx", IndexDir())
}

func TestLoadDotEnv(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	require.NoError(t, Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MAKAMDEX_SERVE_ADDR=:9999\n"), 0644))
	defer os.Unsetenv("MAKAMDEX_SERVE_ADDR")
	require.NoError(t, Load())
	assert.Equal(t, ":9999", ServeAddr())
}
