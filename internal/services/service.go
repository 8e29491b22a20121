package services

import (
	"context"

	"github.com/Beardsoft/pre-stake-watcher/internal/clients/coingeckoclient"
	"github.com/Beardsoft/pre-stake-watcher/internal/clients/nimiqclient"
	"github.com/Beardsoft/pre-stake-watcher/internal/config"
	"github.com/Beardsoft/pre-stake-watcher/internal/observability/metrics"
)

type Service struct {
	cfg          *config.Config
	nimiq        nimiqclient.NimiqInterface
	coingecko    coingeckoclient.CoinGeckoInterface
	stakeMetrics *metrics.StakeMetrics
}

func NewService(
	cfg *config.Config,
	nimiq nimiqclient.NimiqInterface,
	coingecko coingeckoclient.CoinGeckoInterface,
	stakeMetrics *metrics.StakeMetrics,
) *Service {
	return &Service{
		cfg:          cfg,
		nimiq:        nimiq,
		coingecko:    coingecko,
		stakeMetrics: stakeMetrics,
	}
}

// Run starts the stake watcher and blocks until the context is cancelled.
func (s *Service) Run(ctx context.Context) {
	s.StartStakeWatcher(ctx)
}
