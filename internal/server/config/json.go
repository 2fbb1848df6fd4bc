package config

import (
	"encoding/json"
	"os"

	"github.com/tidwall/jsonc"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/flagx"
	"github.com/dmitrijs2005/ssmgrtrojan/internal/timex"
)

// JsonConfig is the on-disk form of Config. Comments and trailing commas are
// allowed; durations accept "60s" or integer nanoseconds.
type JsonConfig struct {
	ListenAddr      string         `json:"listen"`
	Key             string         `json:"key"`
	APIAddr         string         `json:"api"`
	TrojanConfig    string         `json:"trojan_config"`
	TrojanBinary    string         `json:"trojan_bin"`
	DatabaseDriver  string         `json:"db_driver"`
	DatabaseDSN     string         `json:"db"`
	FakeWebsite     string         `json:"fake_website"`
	FakeWebsiteRoot string         `json:"fake_website_root"`
	MetricsAddr     string         `json:"metrics"`
	SyncInterval    timex.Duration `json:"interval"`
	MaxMessageSize  int            `json:"max_message_size"`
	Debug           bool           `json:"debug"`
}

// parseJson overlays values from the file named by -c/--config. Fields
// missing from the file keep their current value. An unreadable or invalid
// file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(jsonc.ToJSON(file), c); err != nil {
		panic(err)
	}

	setString(&config.ListenAddr, c.ListenAddr)
	setString(&config.Key, c.Key)
	setString(&config.APIAddr, c.APIAddr)
	setString(&config.TrojanConfig, c.TrojanConfig)
	setString(&config.TrojanBinary, c.TrojanBinary)
	setString(&config.DatabaseDriver, c.DatabaseDriver)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.FakeWebsite, c.FakeWebsite)
	setString(&config.FakeWebsiteRoot, c.FakeWebsiteRoot)
	setString(&config.MetricsAddr, c.MetricsAddr)
	if c.SyncInterval.Duration != 0 {
		config.SyncInterval = c.SyncInterval.Duration
	}
	if c.MaxMessageSize != 0 {
		config.MaxMessageSize = c.MaxMessageSize
	}
	config.Debug = config.Debug || c.Debug
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
