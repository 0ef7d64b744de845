package spread

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"
)

// RawOrderBook is the order book as the exchange reports it: each level a
// [price, amount] pair of strings.
type RawOrderBook struct {
	Asks [][]string
	Bids [][]string
}

// PriceLevel is one normalized order-book level. Amount is kept opaque; only
// the price ever enters arithmetic.
type PriceLevel struct {
	Price  decimal.Decimal
	Amount string
}

// OrderBook holds normalized levels: asks ascending, bids descending.
type OrderBook struct {
	Asks []PriceLevel
	Bids []PriceLevel
}

// BestAsk returns the lowest ask.
func (b OrderBook) BestAsk() PriceLevel { return b.Asks[0] }

// BestBid returns the highest bid.
func (b OrderBook) BestBid() PriceLevel { return b.Bids[0] }

// Normalize parses every price exactly and sorts both sides. The sort is
// stable so equal-priced levels keep their reported order. An empty side
// yields an insufficient-data error.
func Normalize(raw RawOrderBook) (OrderBook, error) {
	if len(raw.Asks) == 0 || len(raw.Bids) == 0 {
		return OrderBook{}, InsufficientData()
	}

	asks, err := parseLevels(raw.Asks)
	if err != nil {
		return OrderBook{}, Internal(fmt.Errorf("parse asks: %w", err))
	}
	bids, err := parseLevels(raw.Bids)
	if err != nil {
		return OrderBook{}, Internal(fmt.Errorf("parse bids: %w", err))
	}

	sort.SliceStable(asks, func(i, j int) bool {
		return asks[i].Price.Cmp(asks[j].Price) < 0
	})
	sort.SliceStable(bids, func(i, j int) bool {
		return bids[i].Price.Cmp(bids[j].Price) > 0
	})

	return OrderBook{Asks: asks, Bids: bids}, nil
}

func parseLevels(raw [][]string) ([]PriceLevel, error) {
	levels := make([]PriceLevel, 0, len(raw))
	for i, pair := range raw {
		if len(pair) < 2 {
			return nil, fmt.Errorf("level %d: want [price, amount], got %d fields", i, len(pair))
		}
		price, err := decimal.NewFromString(pair[0])
		if err != nil {
			return nil, fmt.Errorf("level %d: price %q: %w", i, pair[0], err)
		}
		levels = append(levels, PriceLevel{Price: price, Amount: pair[1]})
	}
	return levels, nil
}
