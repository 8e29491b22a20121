package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

type Config struct {
	Nimiq     NimiqConfig     `mapstructure:"nimiq"`
	CoinGecko CoinGeckoConfig `mapstructure:"coingecko"`
	Poller    PollerConfig    `mapstructure:"poller"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
}

func (cfg *Config) Validate() error {
	if err := cfg.Nimiq.Validate(); err != nil {
		return err
	}
	if err := cfg.CoinGecko.Validate(); err != nil {
		return err
	}
	if err := cfg.Poller.Validate(); err != nil {
		return err
	}
	if err := cfg.Metrics.Validate(); err != nil {
		return err
	}

	return nil
}

// New loads the configuration from the given file, applying defaults and
// environment overrides. A missing config file is not an error: the exporter
// then runs entirely on defaults and environment variables.
func New(cfgPath string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(cfgPath)

	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", cfgPath, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("nimiq.endpoint", defaultNimiqEndpoint)
	v.SetDefault("nimiq.address", defaultNimiqAddress)
	v.SetDefault("nimiq.timeout", defaultNimiqTimeout)
	v.SetDefault("coingecko.endpoint", defaultCoinGeckoEndpoint)
	v.SetDefault("coingecko.asset-id", defaultCoinGeckoAssetID)
	v.SetDefault("coingecko.timeout", defaultCoinGeckoTimeout)
	v.SetDefault("poller.fetch-interval", defaultFetchInterval)
	v.SetDefault("metrics.host", defaultMetricsHost)
	v.SetDefault("metrics.port", defaultMetricsPort)
}

// bindEnv wires the two environment variables the exporter has always
// honored: NIMIQ_ADDRESS and FETCH_INTERVAL (seconds).
func bindEnv(v *viper.Viper) error {
	if err := v.BindEnv("nimiq.address", "NIMIQ_ADDRESS"); err != nil {
		return fmt.Errorf("failed to bind NIMIQ_ADDRESS: %w", err)
	}
	if err := v.BindEnv("poller.fetch-interval", "FETCH_INTERVAL"); err != nil {
		return fmt.Errorf("failed to bind FETCH_INTERVAL: %w", err)
	}

	return nil
}
