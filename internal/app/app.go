package app

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"spread-alerts/internal/alert"
	"spread-alerts/internal/buda"
	"spread-alerts/internal/config"
	"spread-alerts/internal/server"
	"spread-alerts/internal/service"
	"spread-alerts/internal/spread"
)

// App aggregates configuration and shared dependencies for the CLI commands.
type App struct {
	Config *config.Config
	Logger zerolog.Logger
}

// NewApp constructs a new application handle.
func NewApp(cfg *config.Config, logger zerolog.Logger) *App {
	return &App{Config: cfg, Logger: logger.With().Str("component", "app").Logger()}
}

func (a *App) newClient() *buda.Client {
	return buda.NewClient(buda.ClientOptions{
		BaseURL:   a.Config.Buda.BaseURL,
		Timeout:   a.Config.Buda.RequestTimeout,
		UserAgent: a.Config.Buda.UserAgent,
	}, a.Logger)
}

func (a *App) newService() *service.Service {
	client := a.newClient()
	calc := spread.NewCalculator(client, a.Logger)
	aggregator := spread.NewAggregator(client, calc, a.Config.Markets.ExcludeSuffix, a.Logger)
	registry := alert.NewRegistry()
	evaluator := alert.NewEvaluator(registry, calc, a.Logger)
	return service.New(calc, aggregator, registry, evaluator, a.Logger)
}

// Serve runs the HTTP API until interrupted, then shuts down gracefully.
func (a *App) Serve(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	srv := server.New(a.newService(), a.Logger)

	httpServer := &http.Server{
		Addr:              a.Config.Server.ListenAddr,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: a.Config.Server.ReadHeaderTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()

	a.Logger.Info().Str("addr", a.Config.Server.ListenAddr).Msg("http server listening")

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	a.Logger.Info().Msg("shutting down http server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), a.Config.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	a.Logger.Info().Msg("http server stopped")
	return nil
}

// ExportOptions hold parameters for exporting the aggregated snapshot.
type ExportOptions struct {
	PNGPath string
	CSVPath string
}

// WatchOptions configure the watch command.
type WatchOptions struct {
	MarketID string
}
