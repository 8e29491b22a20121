package services

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/Beardsoft/pre-stake-watcher/internal/types"
)

// processRegistration validates one registration response and writes the
// derived gauges. The write is all-or-nothing per cycle: a single malformed
// entry aborts the update so aggregates are never computed from partial
// data. An empty or absent staker list leaves every gauge untouched.
func (s *Service) processRegistration(ctx context.Context, registration *types.RegistrationResponse) error {
	log := log.Ctx(ctx)

	if registration == nil || len(registration.Stakers) == 0 {
		log.Info().Msg("No stakers found in the registration data")
		return nil
	}

	stakers, err := registration.Validate()
	if err != nil {
		return fmt.Errorf("registration data contains malformed entries: %w", err)
	}

	totals, err := types.Aggregate(stakers)
	if err != nil {
		return fmt.Errorf("failed to aggregate stakes: %w", err)
	}

	s.stakeMetrics.SetTotalStakers(totals.StakerCount)
	for _, staker := range stakers {
		s.stakeMetrics.SetStakerStake(staker.Address, staker.Stake)
	}
	s.stakeMetrics.SetTotalStake(totals.TotalStake)

	log.Info().
		Float64("total_stake", totals.TotalStake).
		Int("staker_count", totals.StakerCount).
		Msg("Updated stake totals")
	log.Info().
		Float64("highest_stake", totals.HighestStake).
		Float64("lowest_stake", totals.LowestStake).
		Msg("Stake extremes")

	return nil
}
