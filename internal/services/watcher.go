package services

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/Beardsoft/pre-stake-watcher/internal/observability/metrics"
	"github.com/Beardsoft/pre-stake-watcher/internal/utils/poller"
)

// StartStakeWatcher runs the scrape loop: one cycle immediately, then one per
// configured interval, until the context is cancelled. Cycles never overlap
// and upstream failures never stop the loop.
func (s *Service) StartStakeWatcher(ctx context.Context) {
	log.Ctx(ctx).Info().
		Str("address", s.cfg.Nimiq.Address).
		Dur("fetch_interval", s.cfg.Poller.Interval()).
		Msg("Starting pre-staking watcher")

	stakeWatcher := poller.NewPoller(
		s.cfg.Poller.Interval(),
		metrics.RecordPollerDuration("stake", s.scrapeCycle),
	)
	stakeWatcher.Start(ctx)
}

// scrapeCycle performs one fetch-transform-expose pass. The registration and
// price fetches fail independently; either failure is logged and leaves the
// affected gauges at their previous values.
func (s *Service) scrapeCycle(ctx context.Context) error {
	log := log.Ctx(ctx)

	log.Info().Msg("Scraping data")

	registration, err := s.nimiq.GetRegistration(ctx, s.cfg.Nimiq.Address)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch registration data")
	} else if err := s.processRegistration(ctx, registration); err != nil {
		log.Error().Err(err).Msg("Failed to process registration data")
	}

	price, err := s.coingecko.GetNimiqPrice(ctx)
	switch {
	case err != nil:
		log.Error().Err(err).Msg("Failed to fetch Nimiq price")
	case price == nil:
		log.Info().Msg("No Nimiq price available")
	default:
		s.stakeMetrics.SetCurrentNimiqPrice(*price)
		log.Info().Float64("price_usd", *price).Msg("Updated current Nimiq price")
	}

	log.Info().
		Dur("fetch_interval", s.cfg.Poller.Interval()).
		Msg("Next scrape scheduled")

	// failures are handled per fetch above so the poller keeps running
	return nil
}
