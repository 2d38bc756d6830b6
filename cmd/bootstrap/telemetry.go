package bootstrap

import (
	"context"
	"log/slog"

	"github.com/atomospherebrand-bot/relese/internal/infra/metrics"
	"github.com/atomospherebrand-bot/relese/internal/infra/telemetry"
	"github.com/atomospherebrand-bot/relese/internal/pkg/config"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Provide(
		func() *metrics.Metrics { return metrics.New(prometheus.DefaultRegisterer) },
	),
	fx.Invoke(StartTracing),
)

func StartTracing(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) {
	var shutdown func(context.Context) error
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			var err error
			shutdown, err = telemetry.Setup(ctx, cfg.Telemetry)
			if err != nil {
				return err
			}
			if cfg.Telemetry.Enabled {
				logger.Info("tracing enabled", "endpoint", cfg.Telemetry.OTLPEndpoint, "service", cfg.Telemetry.ServiceName)
			}
			return nil
		},
		OnStop: func(ctx context.Context) error {
			if shutdown == nil {
				return nil
			}
			return shutdown(ctx)
		},
	})
}
