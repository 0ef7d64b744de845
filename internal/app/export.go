package app

import (
	"context"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	chart "github.com/wcharczuk/go-chart/v2"

	"spread-alerts/internal/spread"
)

// Export writes the current aggregated spread snapshot as CSV and/or a PNG
// bar chart. CSV keeps the exact decimal strings; the chart necessarily
// renders float approximations.
func (a *App) Export(ctx context.Context, opts ExportOptions) error {
	if opts.CSVPath == "" && opts.PNGPath == "" {
		return errors.New("at least one of --csv or --png must be provided")
	}

	results, err := a.newService().AllSpreads(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		a.Logger.Info().Msg("no eligible markets to export")
		return nil
	}

	a.Logger.Info().Int("markets", len(results)).Msg("exporting spread snapshot")

	if opts.CSVPath != "" {
		if err := writeSpreadsCSV(opts.CSVPath, results); err != nil {
			return err
		}
	}

	if opts.PNGPath != "" {
		if err := writeSpreadsPNG(opts.PNGPath, results); err != nil {
			return err
		}
	}

	return nil
}

func writeSpreadsCSV(path string, results []spread.MarketSpread) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if err := writer.Write([]string{"market", "spread"}); err != nil {
		return err
	}
	for _, entry := range results {
		if err := writer.Write([]string{entry.Market, entry.Spread}); err != nil {
			return err
		}
	}

	return writer.Error()
}

func writeSpreadsPNG(path string, results []spread.MarketSpread) error {
	if err := ensureDir(path); err != nil {
		return err
	}

	bars := make([]chart.Value, 0, len(results))
	for _, entry := range results {
		value, err := decimal.NewFromString(entry.Spread)
		if err != nil {
			return err
		}
		bars = append(bars, chart.Value{
			Label: entry.Market,
			Value: value.InexactFloat64(),
		})
	}

	graph := chart.BarChart{
		Title:    "Spread per market",
		Width:    1280,
		Height:   720,
		BarWidth: 40,
		XAxis: chart.Style{
			TextRotationDegrees: 45,
		},
		Bars: bars,
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return graph.Render(chart.PNG, file)
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
