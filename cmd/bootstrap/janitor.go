package bootstrap

import (
	"context"
	"log/slog"

	"travel-booking/internal/pkg/config"
	"travel-booking/internal/usecase"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/fx"
)

var JanitorModule = fx.Module("janitor",
	fx.Invoke(StartJanitor),
)

// StartJanitor schedules the periodic expired-hold sweep for the lifetime of
// the process.
func StartJanitor(lc fx.Lifecycle, janitor *usecase.Janitor, cfg config.Config, logger *slog.Logger) error {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return err
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(cfg.Janitor.SweepInterval),
		gocron.NewTask(func() {
			if _, err := janitor.Sweep(context.Background()); err != nil {
				logger.Error("janitor sweep failed", slog.String("error", err.Error()))
			}
		}),
	)
	if err != nil {
		return err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			scheduler.Start()
			logger.Info("janitor scheduler started",
				slog.Duration("interval", cfg.Janitor.SweepInterval),
				slog.Int("batch_size", cfg.Janitor.BatchSize),
			)
			return nil
		},
		OnStop: func(_ context.Context) error {
			return scheduler.Shutdown()
		},
	})
	return nil
}
