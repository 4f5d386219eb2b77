package config

import (
	"flag"
	"time"
)

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-u API base URL
//	-k API anon key
//	-d local SQLite database path
//	-c/-config json file path with configs
//	-request-timeout outbound request timeout (e.g., "15s")
//	-sync-interval background re-sync interval (e.g., "5m")
//	-probe-interval connectivity probe interval (e.g., "10s")
//	-probe-address host:port dialed by the connectivity probe
func ParseFlags() *StructuredConfig {
	var baseURL string
	var anonKey string
	var databasePath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var syncInterval time.Duration
	var probeInterval time.Duration
	var probeAddress string

	flag.StringVar(&baseURL, "u", "", "API base URL")
	flag.StringVar(&anonKey, "k", "", "API anon key")
	flag.StringVar(&databasePath, "d", "", "Local SQLite database path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 15s)")
	flag.DurationVar(&syncInterval, "sync-interval", 0, "Background re-sync interval (e.g., 5m)")
	flag.DurationVar(&probeInterval, "probe-interval", 0, "Connectivity probe interval (e.g., 10s)")
	flag.StringVar(&probeAddress, "probe-address", "", "Connectivity probe host:port")

	flag.Parse()

	return &StructuredConfig{
		API: API{
			BaseURL:        baseURL,
			AnonKey:        anonKey,
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databasePath,
			},
		},
		Workers: Workers{
			SyncInterval:  syncInterval,
			ProbeInterval: probeInterval,
			ProbeAddress:  probeAddress,
		},
		JSONFilePath: jsonConfigPath,
	}
}
