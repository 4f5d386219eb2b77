package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Durations in JSON are strings valid for time.ParseDuration (e.g. "15s").
	jsonBody := `{
		"api": {
			"base_url": "https://catalog.example.co",
			"anon_key": "anon_key_value",
			"request_timeout": "15s"
		},
		"storage": {
			"db": { "database_path": "/var/data/offline-rates.db" }
		},
		"workers": {
			"sync_interval": "5m",
			"probe_interval": "10s",
			"probe_address": "catalog.example.co:443"
		}
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "https://catalog.example.co", cfg.API.BaseURL)
	assert.Equal(t, "anon_key_value", cfg.API.AnonKey)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
	assert.Equal(t, "/var/data/offline-rates.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 5*time.Minute, cfg.Workers.SyncInterval)
	assert.Equal(t, 10*time.Second, cfg.Workers.ProbeInterval)
	assert.Equal(t, "catalog.example.co:443", cfg.Workers.ProbeAddress)
}

func TestParseJSON_NumericDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	// Numeric durations are interpreted as nanoseconds.
	jsonBody := `{"api": {"request_timeout": 15000000000}}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	assert.Equal(t, 15*time.Second, cfg.API.RequestTimeout)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON("/definitely/not/there.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedBody(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")
	require.NoError(t, os.WriteFile(p, []byte("{not json"), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ClientConfig
		wantErr error
	}{
		{
			name: "valid",
			cfg: ClientConfig{
				API:     ClientAPI{BaseURL: "https://x", RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "cache.db"}},
				Workers: ClientWorkers{SyncInterval: time.Minute, ProbeInterval: time.Second},
			},
			wantErr: nil,
		},
		{
			name: "empty dsn",
			cfg: ClientConfig{
				API:     ClientAPI{BaseURL: "https://x", RequestTimeout: time.Second},
				Workers: ClientWorkers{SyncInterval: time.Minute, ProbeInterval: time.Second},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "in-memory dsn rejected",
			cfg: ClientConfig{
				API:     ClientAPI{BaseURL: "https://x", RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: ":memory:"}},
				Workers: ClientWorkers{SyncInterval: time.Minute, ProbeInterval: time.Second},
			},
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name: "missing base url",
			cfg: ClientConfig{
				API:     ClientAPI{RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "cache.db"}},
				Workers: ClientWorkers{SyncInterval: time.Minute, ProbeInterval: time.Second},
			},
			wantErr: ErrInvalidAPIConfigs,
		},
		{
			name: "zero sync interval",
			cfg: ClientConfig{
				API:     ClientAPI{BaseURL: "https://x", RequestTimeout: time.Second},
				Storage: ClientStorage{DB: ClientDB{DSN: "cache.db"}},
				Workers: ClientWorkers{ProbeInterval: time.Second},
			},
			wantErr: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
