package spread

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// OrderBookSource retrieves the raw order book for one market from the
// exchange.
type OrderBookSource interface {
	OrderBook(ctx context.Context, marketID string) (RawOrderBook, error)
}

// Calculator computes the bid/ask spread for a single market.
type Calculator struct {
	source OrderBookSource
	logger zerolog.Logger
}

// NewCalculator constructs a Calculator over an order-book source.
func NewCalculator(source OrderBookSource, logger zerolog.Logger) *Calculator {
	return &Calculator{
		source: source,
		logger: logger.With().Str("component", "spread_calculator").Logger(),
	}
}

// Compute fetches and normalizes the market's order book and returns
// lowest ask minus highest bid, exactly.
func (c *Calculator) Compute(ctx context.Context, marketID string) (decimal.Decimal, error) {
	raw, err := c.source.OrderBook(ctx, marketID)
	if err != nil {
		return decimal.Decimal{}, Classify(err)
	}

	book, err := Normalize(raw)
	if err != nil {
		return decimal.Decimal{}, err
	}

	value := book.BestAsk().Price.Sub(book.BestBid().Price)
	c.logger.Debug().
		Str("market", marketID).
		Str("spread", value.String()).
		Msg("spread computed")
	return value, nil
}
