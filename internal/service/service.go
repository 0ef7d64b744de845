package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"spread-alerts/internal/alert"
	"spread-alerts/internal/spread"
)

// Service exposes the core operations: spread for one market, the aggregated
// snapshot, and alert registration/evaluation. Alert type and threshold
// strings are validated here, at the boundary.
type Service struct {
	calc       *spread.Calculator
	aggregator *spread.Aggregator
	registry   *alert.Registry
	evaluator  *alert.Evaluator
	logger     zerolog.Logger
}

// New constructs the service.
func New(calc *spread.Calculator, aggregator *spread.Aggregator, registry *alert.Registry, evaluator *alert.Evaluator, logger zerolog.Logger) *Service {
	return &Service{
		calc:       calc,
		aggregator: aggregator,
		registry:   registry,
		evaluator:  evaluator,
		logger:     logger.With().Str("component", "service").Logger(),
	}
}

// Spread computes the current spread for one market.
func (s *Service) Spread(ctx context.Context, marketID string) (decimal.Decimal, error) {
	return s.calc.Compute(ctx, marketID)
}

// AllSpreads computes the spread of every eligible market, in catalogue
// order. A single failure aborts the whole snapshot.
func (s *Service) AllSpreads(ctx context.Context) ([]spread.MarketSpread, error) {
	return s.aggregator.All(ctx)
}

// SetAlert validates and stores a threshold for (marketID, alertType).
// Validation order matters: an invalid type or value is rejected before any
// remote call; computing the spread once afterwards doubles as a
// market-liveness check.
func (s *Service) SetAlert(ctx context.Context, marketID, value, alertType string) error {
	typ, err := alert.ParseType(alertType)
	if err != nil {
		return err
	}
	if err := alert.ValidateThreshold(value); err != nil {
		return err
	}
	if _, err := s.calc.Compute(ctx, marketID); err != nil {
		return err
	}

	s.registry.Set(marketID, typ, value)
	s.logger.Info().
		Str("market", marketID).
		Str("type", typ.String()).
		Str("threshold", value).
		Msg("alert stored")
	return nil
}

// EvaluateAlert checks the stored alert for (marketID, alertType) against
// the market's current spread.
func (s *Service) EvaluateAlert(ctx context.Context, marketID, alertType string) (alert.Verdict, error) {
	typ, err := alert.ParseType(alertType)
	if err != nil {
		return alert.VerdictNotTriggered, err
	}
	return s.evaluator.Evaluate(ctx, marketID, typ)
}
