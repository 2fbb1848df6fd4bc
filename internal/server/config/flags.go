package config

import (
	"os"

	"github.com/spf13/pflag"

	"github.com/dmitrijs2005/ssmgrtrojan/internal/flagx"
)

var knownFlags = []string{
	"-l", "--listen",
	"-k", "--key",
	"--api",
	"--trojan-config",
	"--trojan-bin",
	"--db-driver",
	"--db",
	"--fake-website",
	"--fake-website-root",
	"--metrics",
	"--interval",
	"--max-message-size",
	"-d", "--debug",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-l, --listen string          control protocol address (default 0.0.0.0:4001)
//	-k, --key string             shared secret
//	    --api string             trojan-go API address (host:port)
//	    --trojan-config string   trojan-go config; starts trojan-go when set
//	    --trojan-bin string      trojan-go binary
//	    --db-driver string       sqlite or postgres
//	    --db string              database DSN or sqlite file
//	    --fake-website string    decoy website address
//	    --fake-website-root dir  decoy website files
//	    --metrics string         Prometheus endpoint address
//	    --interval duration      reconciliation interval
//	    --max-message-size int   gRPC message ceiling in bytes
//	-d, --debug                  debug logging
//
// os.Args is filtered with flagx.FilterArgs first, so -c/--config and
// anything unknown never reach this flag set.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], knownFlags, "-d", "--debug")

	fs := pflag.NewFlagSet("main", pflag.ContinueOnError)

	fs.StringVarP(&config.ListenAddr, "listen", "l", config.ListenAddr, "address and port of the control protocol")
	fs.StringVarP(&config.Key, "key", "k", config.Key, "shared secret")
	fs.StringVar(&config.APIAddr, "api", config.APIAddr, "trojan-go API address")
	fs.StringVar(&config.TrojanConfig, "trojan-config", config.TrojanConfig, "trojan-go config file")
	fs.StringVar(&config.TrojanBinary, "trojan-bin", config.TrojanBinary, "trojan-go binary")
	fs.StringVar(&config.DatabaseDriver, "db-driver", config.DatabaseDriver, "database driver (sqlite, postgres)")
	fs.StringVar(&config.DatabaseDSN, "db", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.FakeWebsite, "fake-website", config.FakeWebsite, "decoy website address")
	fs.StringVar(&config.FakeWebsiteRoot, "fake-website-root", config.FakeWebsiteRoot, "decoy website root directory")
	fs.StringVar(&config.MetricsAddr, "metrics", config.MetricsAddr, "metrics endpoint address")
	fs.DurationVar(&config.SyncInterval, "interval", config.SyncInterval, "reconciliation interval")
	fs.IntVar(&config.MaxMessageSize, "max-message-size", config.MaxMessageSize, "gRPC max message size in bytes")
	fs.BoolVarP(&config.Debug, "debug", "d", config.Debug, "debug logging")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
