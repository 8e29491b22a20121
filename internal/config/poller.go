package config

import (
	"errors"
	"time"
)

// defaultFetchInterval matches the 5 minute interval the exporter has used
// since its first release.
const defaultFetchInterval = 300

type PollerConfig struct {
	// FetchInterval is the scrape period in seconds.
	FetchInterval int `mapstructure:"fetch-interval"`
}

func (cfg *PollerConfig) Validate() error {
	if cfg.FetchInterval <= 0 {
		return errors.New("fetch-interval must be positive")
	}

	return nil
}

func (cfg *PollerConfig) Interval() time.Duration {
	return time.Duration(cfg.FetchInterval) * time.Second
}
