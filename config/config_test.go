package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := unmarshal(v)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8734", cfg.Server.Addr)
	assert.Equal(t, "runlens.db", cfg.Database.Path)
	assert.Equal(t, 500, cfg.Domains.RefreshDebounceMS)
	assert.False(t, cfg.Log.JSON)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runlens.toml")
	content := `
[server]
addr = "0.0.0.0:9000"

[database]
path = "/var/lib/runlens/exec.db"

[domains]
refresh_debounce_ms = 250

[log]
json = true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:9000", cfg.Server.Addr)
	assert.Equal(t, "/var/lib/runlens/exec.db", cfg.Database.Path)
	assert.Equal(t, 250, cfg.Domains.RefreshDebounceMS)
	assert.True(t, cfg.Log.JSON)
}

func TestLoadFromFile_PartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "runlens.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \"127.0.0.1:8000\"\n"), 0o644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Addr)
	assert.Equal(t, "runlens.db", cfg.Database.Path)
	assert.Equal(t, 500, cfg.Domains.RefreshDebounceMS)
}

func TestLoadFromFile_Missing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
