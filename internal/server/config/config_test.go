package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, "0.0.0.0:4001", cfg.ListenAddr)
	assert.Equal(t, "bin/trojan-go", cfg.TrojanBinary)
	assert.Equal(t, "sqlite", cfg.DatabaseDriver)
	assert.Equal(t, "db.sqlite", cfg.DatabaseDSN)
	assert.Equal(t, "fake-website/public", cfg.FakeWebsiteRoot)
	assert.Equal(t, 60*time.Second, cfg.SyncInterval)
	assert.Equal(t, 20*1024*1024, cfg.MaxMessageSize)
	assert.Empty(t, cfg.Key)
	assert.Empty(t, cfg.APIAddr)
	assert.False(t, cfg.Debug)
}

func validConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.Key = "secret"
	cfg.APIAddr = "127.0.0.1:10000"
	return cfg
}

func TestValidate(t *testing.T) {
	t.Run("ok", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(c *Config)
		errMsg string
	}{
		{"missing key", func(c *Config) { c.Key = "" }, "key is required"},
		{"bad driver", func(c *Config) { c.DatabaseDriver = "mysql" }, "unsupported db driver"},
		{"zero interval", func(c *Config) { c.SyncInterval = 0 }, "sync interval"},
		{"zero message size", func(c *Config) { c.MaxMessageSize = 0 }, "max message size"},
		{"no api source", func(c *Config) { c.APIAddr = "" }, "either api address or trojan-go config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidate_ResolvesAPIFromTrojanConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  enabled: true\n  api-addr: 127.0.0.1\n  api-port: 10000\n"), 0o600))

	cfg := validConfig()
	cfg.APIAddr = ""
	cfg.TrojanConfig = path

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:10000", cfg.APIAddr)
}

func TestValidate_ExplicitAPIWins(t *testing.T) {
	cfg := validConfig()
	cfg.TrojanConfig = filepath.Join(t.TempDir(), "missing.yaml")

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "127.0.0.1:10000", cfg.APIAddr)
}
