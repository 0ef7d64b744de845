package alert

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"spread-alerts/internal/spread"
)

// Verdict is the outcome of one alert evaluation.
type Verdict int

const (
	// VerdictNotTriggered means the stored condition does not hold right now.
	VerdictNotTriggered Verdict = iota
	// VerdictGreater means a GREATER alert fired.
	VerdictGreater
	// VerdictLess means a LESS alert fired.
	VerdictLess
)

func (v Verdict) String() string {
	switch v {
	case VerdictGreater:
		return "Greater"
	case VerdictLess:
		return "Less"
	default:
		return "No alert"
	}
}

// Triggered reports whether the verdict fired.
func (v Verdict) Triggered() bool { return v != VerdictNotTriggered }

// Evaluator compares live spreads against stored thresholds. Evaluation is
// stateless: it never mutates the registry, so the same alert can trigger
// on every call.
type Evaluator struct {
	registry *Registry
	calc     *spread.Calculator
	logger   zerolog.Logger
}

// NewEvaluator constructs an Evaluator over a registry and a calculator.
func NewEvaluator(registry *Registry, calc *spread.Calculator, logger zerolog.Logger) *Evaluator {
	return &Evaluator{
		registry: registry,
		calc:     calc,
		logger:   logger.With().Str("component", "alert_evaluator").Logger(),
	}
}

// Evaluate recomputes the market's spread and compares it to the stored
// threshold. Comparison is strict: a spread exactly equal to the threshold
// never triggers, for either alert type.
func (e *Evaluator) Evaluate(ctx context.Context, marketID string, typ Type) (Verdict, error) {
	stored, ok := e.registry.Get(marketID, typ)
	if !ok {
		return VerdictNotTriggered, spread.AlertNotFound()
	}

	current, err := e.calc.Compute(ctx, marketID)
	if err != nil {
		return VerdictNotTriggered, err
	}

	threshold, err := decimal.NewFromString(stored)
	if err != nil {
		return VerdictNotTriggered, spread.Internal(fmt.Errorf("stored threshold %q: %w", stored, err))
	}

	verdict := VerdictNotTriggered
	switch {
	case typ == TypeGreater && current.GreaterThan(threshold):
		verdict = VerdictGreater
	case typ == TypeLess && current.LessThan(threshold):
		verdict = VerdictLess
	}

	e.logger.Debug().
		Str("market", marketID).
		Str("type", typ.String()).
		Str("spread", current.String()).
		Str("threshold", threshold.String()).
		Str("verdict", verdict.String()).
		Msg("alert evaluated")
	return verdict, nil
}
