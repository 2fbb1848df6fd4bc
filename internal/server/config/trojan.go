package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// trojanConfig is the part of a trojan-go config describing its API service.
// trojan-go spells the keys with underscores in JSON and dashes in YAML.
type trojanConfig struct {
	API struct {
		Enabled bool   `json:"enabled" yaml:"enabled"`
		Addr    string `json:"api_addr" yaml:"api-addr"`
		Port    int    `json:"api_port" yaml:"api-port"`
	} `json:"api" yaml:"api"`
}

// ReadTrojanAPIAddr returns host:port of the API service configured in the
// trojan-go config at path. YAML is used for .yaml/.yml files, JSON (with
// comments) otherwise.
func ReadTrojanAPIAddr(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read trojan-go config: %w", err)
	}

	var tc trojanConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &tc)
	default:
		err = json.Unmarshal(jsonc.ToJSON(b), &tc)
	}
	if err != nil {
		return "", fmt.Errorf("parse trojan-go config %s: %w", path, err)
	}

	if !tc.API.Enabled {
		return "", errors.New("trojan-go config does not enable the api service")
	}
	if tc.API.Port <= 0 {
		return "", errors.New("trojan-go config has no api port")
	}

	host := tc.API.Addr
	if host == "" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, strconv.Itoa(tc.API.Port)), nil
}
