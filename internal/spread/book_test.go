package spread

import (
	"errors"
	"testing"
)

func TestNormalizeSortsSides(t *testing.T) {
	raw := RawOrderBook{
		Asks: [][]string{
			{"40929777.0", "0.3"},
			{"40889760.0", "0.1"},
			{"40920534.0", "0.2"},
		},
		Bids: [][]string{
			{"40580980.0", "0.3"},
			{"40582992.0", "0.1"},
			{"40580992.0", "0.2"},
		},
	}

	book, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if got := book.BestAsk().Price.String(); got != "40889760" {
		t.Fatalf("best ask should be lowest, got %s", got)
	}
	if got := book.BestBid().Price.String(); got != "40582992" {
		t.Fatalf("best bid should be highest, got %s", got)
	}
	for i := 1; i < len(book.Asks); i++ {
		if book.Asks[i-1].Price.Cmp(book.Asks[i].Price) > 0 {
			t.Fatalf("asks not ascending at %d", i)
		}
	}
	for i := 1; i < len(book.Bids); i++ {
		if book.Bids[i-1].Price.Cmp(book.Bids[i].Price) < 0 {
			t.Fatalf("bids not descending at %d", i)
		}
	}
}

func TestNormalizeExactComparisonBeyondFloatPrecision(t *testing.T) {
	// These two prices are indistinguishable as float64.
	raw := RawOrderBook{
		Asks: [][]string{
			{"40929777.00000000002", "0.1"},
			{"40929777.00000000001", "0.1"},
		},
		Bids: [][]string{{"1", "0.1"}},
	}

	book, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if got := book.BestAsk().Price.String(); got != "40929777.00000000001" {
		t.Fatalf("ask ordering lost precision, best ask %s", got)
	}
}

func TestNormalizeStableOnEqualPrices(t *testing.T) {
	raw := RawOrderBook{
		Asks: [][]string{
			{"100.0", "first"},
			{"100", "second"},
			{"99", "cheapest"},
		},
		Bids: [][]string{{"1", "0.1"}},
	}

	book, err := Normalize(raw)
	if err != nil {
		t.Fatalf("normalize failed: %v", err)
	}

	if book.Asks[1].Amount != "first" || book.Asks[2].Amount != "second" {
		t.Fatalf("equal-priced levels reordered: %v", book.Asks)
	}
}

func TestNormalizeEmptySides(t *testing.T) {
	cases := []struct {
		name string
		raw  RawOrderBook
	}{
		{"empty asks", RawOrderBook{Bids: [][]string{{"1", "1"}}}},
		{"empty bids", RawOrderBook{Asks: [][]string{{"1", "1"}}}},
		{"both empty", RawOrderBook{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.raw)
			var e *Error
			if !errors.As(err, &e) || e.Code != CodeInsufficientData {
				t.Fatalf("want insufficient_data, got %v", err)
			}
		})
	}
}

func TestNormalizeMalformedLevels(t *testing.T) {
	cases := []struct {
		name string
		raw  RawOrderBook
	}{
		{"bad price", RawOrderBook{
			Asks: [][]string{{"not-a-number", "1"}},
			Bids: [][]string{{"1", "1"}},
		}},
		{"short pair", RawOrderBook{
			Asks: [][]string{{"1"}},
			Bids: [][]string{{"1", "1"}},
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.raw)
			var e *Error
			if !errors.As(err, &e) || e.Code != CodeInternal {
				t.Fatalf("want internal error, got %v", err)
			}
		})
	}
}
