package alert

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"spread-alerts/internal/spread"
)

// fixedSource serves the order book from the spread-calculation scenario:
// best ask 40889760.0, best bid 40582992.0, spread 306768.
type fixedSource struct {
	err error
}

func (s *fixedSource) OrderBook(context.Context, string) (spread.RawOrderBook, error) {
	if s.err != nil {
		return spread.RawOrderBook{}, s.err
	}
	return spread.RawOrderBook{
		Asks: [][]string{
			{"40889760.0", "0.2"},
			{"40920534.0", "0.1"},
			{"40929767.0", "1.1"},
			{"40929777.0", "0.05"},
		},
		Bids: [][]string{
			{"40582992.0", "0.3"},
			{"40580992.0", "0.04"},
			{"40580980.0", "2.0"},
		},
	}, nil
}

func newEvaluator(source spread.OrderBookSource) (*Registry, *Evaluator) {
	registry := NewRegistry()
	calc := spread.NewCalculator(source, zerolog.Nop())
	return registry, NewEvaluator(registry, calc, zerolog.Nop())
}

func TestEvaluateUnknownAlert(t *testing.T) {
	_, evaluator := newEvaluator(&fixedSource{})

	_, err := evaluator.Evaluate(context.Background(), "BTC-CLP", TypeLess)
	var e *spread.Error
	if !errors.As(err, &e) || e.Code != spread.CodeAlertNotFound {
		t.Fatalf("want alert_not_found, got %v", err)
	}
}

func TestEvaluateVerdicts(t *testing.T) {
	cases := []struct {
		name      string
		typ       Type
		threshold string
		want      Verdict
	}{
		{"less not triggered", TypeLess, "1", VerdictNotTriggered},
		{"less triggered", TypeLess, "406768", VerdictLess},
		{"greater triggered", TypeGreater, "1", VerdictGreater},
		{"greater not triggered", TypeGreater, "406768", VerdictNotTriggered},
		{"greater equal never triggers", TypeGreater, "306768", VerdictNotTriggered},
		{"less equal never triggers", TypeLess, "306768", VerdictNotTriggered},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			registry, evaluator := newEvaluator(&fixedSource{})
			registry.Set("BTC-CLP", tc.typ, tc.threshold)

			verdict, err := evaluator.Evaluate(context.Background(), "BTC-CLP", tc.typ)
			if err != nil {
				t.Fatalf("evaluate failed: %v", err)
			}
			if verdict != tc.want {
				t.Fatalf("want %s, got %s", tc.want, verdict)
			}
		})
	}
}

func TestEvaluateRepeatable(t *testing.T) {
	registry, evaluator := newEvaluator(&fixedSource{})
	registry.Set("BTC-CLP", TypeLess, "406768")

	for i := 0; i < 3; i++ {
		verdict, err := evaluator.Evaluate(context.Background(), "BTC-CLP", TypeLess)
		if err != nil {
			t.Fatalf("evaluation %d failed: %v", i, err)
		}
		if verdict != VerdictLess {
			t.Fatalf("evaluation %d: alert must keep triggering, got %s", i, verdict)
		}
	}

	if value, ok := registry.Get("BTC-CLP", TypeLess); !ok || value != "406768" {
		t.Fatalf("evaluation must not mutate the registry, got %q %v", value, ok)
	}
}

func TestEvaluatePropagatesSpreadErrors(t *testing.T) {
	registry, evaluator := newEvaluator(&fixedSource{
		err: spread.RemoteUnavailable(503, errors.New("maintenance")),
	})
	registry.Set("BTC-CLP", TypeLess, "1")

	_, err := evaluator.Evaluate(context.Background(), "BTC-CLP", TypeLess)
	var e *spread.Error
	if !errors.As(err, &e) || e.Code != spread.CodeRemoteUnavailable || e.UpstreamStatus != 503 {
		t.Fatalf("spread errors must pass through unchanged, got %v", err)
	}
}
