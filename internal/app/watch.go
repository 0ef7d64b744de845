package app

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"spread-alerts/internal/scheduler"
	"spread-alerts/internal/spread"
)

// Watch recomputes one market's spread at every aligned interval and logs
// it, until interrupted.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	svc := a.newService()

	sched := scheduler.New(scheduler.Options{
		Interval:     a.Config.Watch.Interval,
		AlignToStart: a.Config.Watch.AlignToBucket,
		StartupDelay: a.Config.Watch.StartupDelay,
	}, a.Logger)

	a.Logger.Info().
		Str("market", opts.MarketID).
		Dur("interval", a.Config.Watch.Interval).
		Msg("watching market spread")

	err := sched.Run(ctx, func(ctx context.Context, tick time.Time) error {
		value, err := svc.Spread(ctx, opts.MarketID)
		if err != nil {
			classified := spread.Classify(err)
			a.Logger.Warn().
				Str("market", opts.MarketID).
				Str("code", string(classified.Code)).
				Err(err).
				Msg("spread unavailable")
			return nil
		}

		a.Logger.Info().
			Time("tick", tick).
			Str("market", opts.MarketID).
			Str("spread", value.String()).
			Msg("spread sampled")
		return nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
