package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Defaults(t *testing.T) {
	cfg, err := New(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "https://v2.nimiqwatch.com", cfg.Nimiq.Endpoint)
	assert.Equal(t, "NQ97+H1NR+S3X0+CVFQ+VJ9Y+9A0Y+FRQN+Q6EU+D0PL", cfg.Nimiq.Address)
	assert.Equal(t, 15*time.Second, cfg.Nimiq.Timeout)
	assert.Equal(t, "https://api.coingecko.com", cfg.CoinGecko.Endpoint)
	assert.Equal(t, "nimiq-2", cfg.CoinGecko.AssetID)
	assert.Equal(t, 300, cfg.Poller.FetchInterval)
	assert.Equal(t, 5*time.Minute, cfg.Poller.Interval())
	assert.Equal(t, 8000, cfg.Metrics.GetMetricsPort())
}

func TestConfig_EnvOverrides(t *testing.T) {
	t.Setenv("NIMIQ_ADDRESS", "NQ11+TEST+ADDR")
	t.Setenv("FETCH_INTERVAL", "60")

	cfg, err := New(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)

	assert.Equal(t, "NQ11+TEST+ADDR", cfg.Nimiq.Address)
	assert.Equal(t, 60, cfg.Poller.FetchInterval)
	assert.Equal(t, time.Minute, cfg.Poller.Interval())
}

func TestConfig_File(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	content := `
nimiq:
  endpoint: https://nimiq.example.com
  address: NQ42+FILE+ADDR
  timeout: 5s
coingecko:
  asset-id: nimiq-2
poller:
  fetch-interval: 30
metrics:
  port: 9100
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(content), 0o600))

	cfg, err := New(cfgPath)
	require.NoError(t, err)

	assert.Equal(t, "https://nimiq.example.com", cfg.Nimiq.Endpoint)
	assert.Equal(t, "NQ42+FILE+ADDR", cfg.Nimiq.Address)
	assert.Equal(t, 5*time.Second, cfg.Nimiq.Timeout)
	assert.Equal(t, 30, cfg.Poller.FetchInterval)
	assert.Equal(t, 9100, cfg.Metrics.GetMetricsPort())
	// untouched sections keep their defaults
	assert.Equal(t, "https://api.coingecko.com", cfg.CoinGecko.Endpoint)
}

func TestConfig_InvalidInterval(t *testing.T) {
	t.Setenv("FETCH_INTERVAL", "-5")

	_, err := New(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch-interval must be positive")
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Nimiq: NimiqConfig{
				Endpoint: "https://v2.nimiqwatch.com",
				Address:  "NQ42",
				Timeout:  15 * time.Second,
			},
			CoinGecko: CoinGeckoConfig{
				Endpoint: "https://api.coingecko.com",
				AssetID:  "nimiq-2",
				Timeout:  15 * time.Second,
			},
			Poller:  PollerConfig{FetchInterval: 300},
			Metrics: MetricsConfig{Host: "0.0.0.0", Port: 8000},
		}
	}

	t.Run("all fields set", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("missing address", func(t *testing.T) {
		cfg := valid()
		cfg.Nimiq.Address = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "address is required")
	})

	t.Run("missing asset id", func(t *testing.T) {
		cfg := valid()
		cfg.CoinGecko.AssetID = ""
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "asset id is required")
	})

	t.Run("invalid metrics port", func(t *testing.T) {
		cfg := valid()
		cfg.Metrics.Port = 0
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "metrics port")
	})
}
