package config

import (
	"fmt"
	"time"
)

const (
	defaultCoinGeckoEndpoint = "https://api.coingecko.com"
	defaultCoinGeckoAssetID  = "nimiq-2"
	defaultCoinGeckoTimeout  = 15 * time.Second
)

type CoinGeckoConfig struct {
	// Endpoint is the base URL of the CoinGecko API, without a trailing slash.
	Endpoint string `mapstructure:"endpoint"`
	// AssetID is the CoinGecko identifier of the priced asset.
	AssetID string        `mapstructure:"asset-id"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (cfg *CoinGeckoConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("CoinGecko endpoint is required")
	}
	if cfg.AssetID == "" {
		return fmt.Errorf("CoinGecko asset id is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("CoinGecko timeout must be positive")
	}

	return nil
}
