package types

import (
	"fmt"
)

// RegistrationResponse is the body returned by the Nimiq Watch pre-staking
// registration API. The stakers list may be absent or empty, which means
// there is nothing to report for this cycle.
type RegistrationResponse struct {
	Stakers []StakerEntry `json:"stakers"`
}

// StakerEntry is a single staker record. Both fields are pointers so a
// missing field can be told apart from a zero value during validation.
type StakerEntry struct {
	Address *string  `json:"address"`
	Stake   *float64 `json:"stake"`
}

// Staker is a fully validated staker record.
type Staker struct {
	Address string
	Stake   float64
}

// Validate checks that every entry carries both required fields and returns
// the concrete records. A single malformed entry fails the whole response so
// that aggregates are never computed from partial data.
func (r *RegistrationResponse) Validate() ([]Staker, error) {
	stakers := make([]Staker, 0, len(r.Stakers))
	for i, entry := range r.Stakers {
		if entry.Address == nil {
			return nil, NewErrorf(MalformedEntryError, "staker entry %d is missing address", i)
		}
		if entry.Stake == nil {
			return nil, NewErrorf(MalformedEntryError, "staker entry %d (%s) is missing stake", i, *entry.Address)
		}
		stakers = append(stakers, Staker{
			Address: *entry.Address,
			Stake:   *entry.Stake,
		})
	}
	return stakers, nil
}

// StakeTotals are the aggregates derived from one validated response.
type StakeTotals struct {
	TotalStake   float64
	StakerCount  int
	HighestStake float64
	LowestStake  float64
}

// Aggregate computes the stake totals and extremes for a non-empty list of
// validated stakers.
func Aggregate(stakers []Staker) (StakeTotals, error) {
	if len(stakers) == 0 {
		return StakeTotals{}, fmt.Errorf("cannot aggregate empty staker list")
	}

	totals := StakeTotals{
		StakerCount:  len(stakers),
		HighestStake: stakers[0].Stake,
		LowestStake:  stakers[0].Stake,
	}
	for _, staker := range stakers {
		totals.TotalStake += staker.Stake
		if staker.Stake > totals.HighestStake {
			totals.HighestStake = staker.Stake
		}
		if staker.Stake < totals.LowestStake {
			totals.LowestStake = staker.Stake
		}
	}
	return totals, nil
}
