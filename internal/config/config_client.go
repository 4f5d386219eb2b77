package config

import (
	"fmt"
	"time"
)

// ClientAPI holds network settings used by the remote gateway.
type ClientAPI struct {
	// BaseURL is the root URL of the hosted backend.
	BaseURL string
	// AnonKey is the public API key attached to every request.
	AnonKey string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientDB contains local cache database settings.
type ClientDB struct {
	// DSN is the SQLite file path used for the offline cache.
	DSN string
}

// ClientStorage groups local storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains background worker settings.
type ClientWorkers struct {
	// SyncInterval defines how often the background sync job should run.
	SyncInterval time.Duration
	// ProbeInterval defines how often connectivity is probed.
	ProbeInterval time.Duration
	// ProbeAddress is the host:port dialed by the connectivity probe.
	ProbeAddress string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// API contains remote gateway addresses and timeouts.
	API ClientAPI
	// Storage contains local cache settings.
	Storage ClientStorage
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields
// relevant to the client runtime, applies defaults for optional durations,
// and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		API: ClientAPI{
			BaseURL:        cfg.API.BaseURL,
			AnonKey:        cfg.API.AnonKey,
			RequestTimeout: cfg.API.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			SyncInterval:  cfg.Workers.SyncInterval,
			ProbeInterval: cfg.Workers.ProbeInterval,
			ProbeAddress:  cfg.Workers.ProbeAddress,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.API.RequestTimeout == 0 {
		cfg.API.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = "offline-rates.db"
	}
	if cfg.Workers.SyncInterval == 0 {
		cfg.Workers.SyncInterval = 5 * time.Minute
	}
	if cfg.Workers.ProbeInterval == 0 {
		cfg.Workers.ProbeInterval = 10 * time.Second
	}
	if cfg.Workers.ProbeAddress == "" {
		cfg.Workers.ProbeAddress = "1.1.1.1:443"
	}
}
