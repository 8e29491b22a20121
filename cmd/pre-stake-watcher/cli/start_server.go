package cli

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Beardsoft/pre-stake-watcher/internal/clients/coingeckoclient"
	"github.com/Beardsoft/pre-stake-watcher/internal/clients/nimiqclient"
	"github.com/Beardsoft/pre-stake-watcher/internal/config"
	"github.com/Beardsoft/pre-stake-watcher/internal/observability/metrics"
	"github.com/Beardsoft/pre-stake-watcher/internal/observability/tracing"
	"github.com/Beardsoft/pre-stake-watcher/internal/services"
)

func StartServerCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "start-server",
		Short: "Starts the Nimiq pre-staking exporter",
		Args:  cobra.ExactArgs(0),
		RunE:  startServer,
	}

	return cmd
}

func startServer(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ctx = tracing.InjectTraceID(ctx)
	log := log.Ctx(ctx)

	// load config
	cfgPath := GetConfigPath()
	cfg, err := config.New(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg(fmt.Sprintf("error while loading config file: %s", cfgPath))
	}

	nimiqClient := nimiqclient.NewClient(&cfg.Nimiq)
	coingeckoClient := coingeckoclient.NewClient(&cfg.CoinGecko)

	// initialize metrics with the metrics port from config
	metricsPort := cfg.Metrics.GetMetricsPort()
	metrics.Init(metricsPort)
	stakeMetrics := metrics.NewStakeMetrics(prometheus.DefaultRegisterer)

	service := services.NewService(cfg, nimiqClient, coingeckoClient, stakeMetrics)

	service.Run(ctx)
	return nil
}
