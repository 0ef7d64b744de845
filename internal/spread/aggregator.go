package spread

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
)

// Market is one entry of the exchange's market catalogue.
type Market struct {
	ID string
}

// MarketLister retrieves the full market catalogue from the exchange.
type MarketLister interface {
	Markets(ctx context.Context) ([]Market, error)
}

// MarketSpread is the spread of one market within an aggregated snapshot.
type MarketSpread struct {
	Market string `json:"market"`
	Spread string `json:"spread"`
}

// Aggregator computes spreads across every eligible market in the catalogue.
type Aggregator struct {
	markets       MarketLister
	calc          *Calculator
	excludeSuffix string
	logger        zerolog.Logger
}

// NewAggregator constructs an Aggregator. Markets whose id ends in
// excludeSuffix (case-sensitive) are skipped; an empty suffix disables the
// filter.
func NewAggregator(markets MarketLister, calc *Calculator, excludeSuffix string, logger zerolog.Logger) *Aggregator {
	return &Aggregator{
		markets:       markets,
		calc:          calc,
		excludeSuffix: excludeSuffix,
		logger:        logger.With().Str("component", "spread_aggregator").Logger(),
	}
}

// All computes the spread for every eligible market, in catalogue order,
// sequentially. The first failure aborts the whole aggregation: callers get
// either a complete snapshot or a single error, never a partial list.
func (a *Aggregator) All(ctx context.Context) ([]MarketSpread, error) {
	catalogue, err := a.markets.Markets(ctx)
	if err != nil {
		return nil, Classify(err)
	}

	results := make([]MarketSpread, 0, len(catalogue))
	for _, market := range catalogue {
		if a.excludeSuffix != "" && strings.HasSuffix(market.ID, a.excludeSuffix) {
			continue
		}

		value, err := a.calc.Compute(ctx, market.ID)
		if err != nil {
			a.logger.Warn().Err(err).Str("market", market.ID).Msg("aggregation aborted")
			return nil, err
		}
		results = append(results, MarketSpread{Market: market.ID, Spread: value.String()})
	}

	return results, nil
}
