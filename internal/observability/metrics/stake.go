package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// StakeMetrics holds the exported pre-staking gauges. It is constructed once
// at startup and shared between the stake watcher (writes) and the metrics
// endpoint (reads); the underlying prometheus gauges make every per-slot
// update atomic, so no additional locking is needed.
type StakeMetrics struct {
	totalStake        prometheus.Gauge
	stakerStake       *prometheus.GaugeVec
	totalStakers      prometheus.Gauge
	currentNimiqPrice prometheus.Gauge
}

func NewStakeMetrics(registerer prometheus.Registerer) *StakeMetrics {
	m := &StakeMetrics{
		totalStake: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "total_stake",
				Help: "Total stake of all stakers",
			},
		),
		stakerStake: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "staker_stake",
				Help: "Stake amount for each staker",
			},
			[]string{"staker_address"},
		),
		totalStakers: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "total_stakers",
				Help: "Total number of stakers",
			},
		),
		currentNimiqPrice: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "current_nimiq_price",
				Help: "Current Nimiq price in USD",
			},
		),
	}

	registerer.MustRegister(
		m.totalStake,
		m.stakerStake,
		m.totalStakers,
		m.currentNimiqPrice,
	)

	return m
}

func (m *StakeMetrics) SetTotalStake(value float64) {
	m.totalStake.Set(value)
}

// SetStakerStake updates the gauge for a single staker address. Series for
// addresses absent from later responses are not pruned; they keep their last
// value until the address reappears.
func (m *StakeMetrics) SetStakerStake(address string, value float64) {
	m.stakerStake.WithLabelValues(address).Set(value)
}

func (m *StakeMetrics) SetTotalStakers(count int) {
	m.totalStakers.Set(float64(count))
}

func (m *StakeMetrics) SetCurrentNimiqPrice(value float64) {
	m.currentNimiqPrice.Set(value)
}
