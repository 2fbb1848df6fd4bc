// Package config handles configuration for the server component,
// including defaults, JSON overlay, and command-line flags.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/common"
)

// Config holds runtime settings for the bridge.
//
// Fields:
//   - ListenAddr: bind address of the ssmgr control protocol.
//   - Key: shared secret used to authenticate request frames.
//   - APIAddr: trojan-go API address; derived from TrojanConfig when empty.
//   - TrojanConfig / TrojanBinary: when TrojanConfig is set, trojan-go is
//     started as a child process with that config.
//   - DatabaseDriver / DatabaseDSN: ledger backend ("sqlite" or "postgres").
//   - FakeWebsite / FakeWebsiteRoot: optional decoy site address and files.
//   - MetricsAddr: optional Prometheus endpoint address.
//   - SyncInterval: reconciliation period.
//   - MaxMessageSize: gRPC send/receive ceiling in bytes.
type Config struct {
	ListenAddr      string
	Key             string
	APIAddr         string
	TrojanConfig    string
	TrojanBinary    string
	DatabaseDriver  string
	DatabaseDSN     string
	FakeWebsite     string
	FakeWebsiteRoot string
	MetricsAddr     string
	SyncInterval    time.Duration
	MaxMessageSize  int
	Debug           bool
}

// LoadDefaults populates Config with defaults matching a single-host setup.
func (c *Config) LoadDefaults() {
	c.ListenAddr = common.DefaultListenAddr
	c.TrojanBinary = "bin/trojan-go"
	c.DatabaseDriver = "sqlite"
	c.DatabaseDSN = "db.sqlite"
	c.FakeWebsiteRoot = "fake-website/public"
	c.SyncInterval = 60 * time.Second
	c.MaxMessageSize = common.DefaultMaxMessageSize
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks required settings and resolves APIAddr from the trojan-go
// config when it was not given explicitly.
func (c *Config) Validate() error {
	if c.Key == "" {
		return errors.New("key is required")
	}
	switch c.DatabaseDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported db driver %q", c.DatabaseDriver)
	}
	if c.SyncInterval <= 0 {
		return fmt.Errorf("sync interval must be positive, got %s", c.SyncInterval)
	}
	if c.MaxMessageSize <= 0 {
		return fmt.Errorf("max message size must be positive, got %d", c.MaxMessageSize)
	}

	if c.APIAddr == "" {
		if c.TrojanConfig == "" {
			return errors.New("either api address or trojan-go config is required")
		}
		addr, err := ReadTrojanAPIAddr(c.TrojanConfig)
		if err != nil {
			return err
		}
		c.APIAddr = addr
	}
	return nil
}
