package config

import (
	"fmt"
	"time"
)

const (
	defaultNimiqEndpoint = "https://v2.nimiqwatch.com"
	defaultNimiqAddress  = "NQ97+H1NR+S3X0+CVFQ+VJ9Y+9A0Y+FRQN+Q6EU+D0PL"
	defaultNimiqTimeout  = 15 * time.Second
)

type NimiqConfig struct {
	// Endpoint is the base URL of the Nimiq Watch API, without a trailing slash.
	Endpoint string `mapstructure:"endpoint"`
	// Address is the pre-staking registration address being watched.
	Address string        `mapstructure:"address"`
	Timeout time.Duration `mapstructure:"timeout"`
}

func (cfg *NimiqConfig) Validate() error {
	if cfg.Endpoint == "" {
		return fmt.Errorf("Nimiq Watch endpoint is required")
	}
	if cfg.Address == "" {
		return fmt.Errorf("Nimiq registration address is required")
	}
	if cfg.Timeout <= 0 {
		return fmt.Errorf("Nimiq Watch timeout must be positive")
	}

	return nil
}
