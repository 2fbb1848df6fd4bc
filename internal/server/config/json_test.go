package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, data string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(data), 0o600))
	return p
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	path := writeTempFile(t, dir, "bridge.json", `{
		// control port
		"listen": "127.0.0.1:4100",
		"key": "from-json",
		"db_driver": "postgres",
		"interval": "2m",
		"debug": true,
	}`)

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"cmd", "-c", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "127.0.0.1:4100", cfg.ListenAddr)
		assert.Equal(t, "from-json", cfg.Key)
		assert.Equal(t, "postgres", cfg.DatabaseDriver)
		assert.Equal(t, 2*time.Minute, cfg.SyncInterval)
		assert.True(t, cfg.Debug)
		// untouched fields keep defaults
		assert.Equal(t, "db.sqlite", cfg.DatabaseDSN)
		assert.Equal(t, "bin/trojan-go", cfg.TrojanBinary)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"cmd", "-k", "x"}

		cfg := &Config{}
		cfg.LoadDefaults()
		want := *cfg
		parseJson(cfg)

		assert.Equal(t, want, *cfg)
	})

	t.Run("missing file → panics", func(t *testing.T) {
		os.Args = []string{"cmd", "--config", filepath.Join(dir, "nope.json")}
		require.Panics(t, func() { parseJson(&Config{}) })
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := writeTempFile(t, dir, "bad.json", `{"listen": `)
		os.Args = []string{"cmd", "--config=" + bad}
		require.Panics(t, func() { parseJson(&Config{}) })
	})
}

func TestLoadConfig_FlagsOverrideJSON(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	path := writeTempFile(t, t.TempDir(), "bridge.json", `{"key": "from-json", "listen": "127.0.0.1:4100"}`)
	os.Args = []string{"cmd", "-c", path, "-k", "from-flag"}

	cfg := LoadConfig()

	assert.Equal(t, "from-flag", cfg.Key)
	assert.Equal(t, "127.0.0.1:4100", cfg.ListenAddr)
	assert.Equal(t, 60*time.Second, cfg.SyncInterval)
}
