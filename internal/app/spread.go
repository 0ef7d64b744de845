package app

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
)

// Spread prints the current spread for one market.
func (a *App) Spread(ctx context.Context, marketID string) error {
	value, err := a.newService().Spread(ctx, marketID)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "%s\t%s\n", marketID, value.String())
	return nil
}

// AllSpreads prints the aggregated spread snapshot as a table.
func (a *App) AllSpreads(ctx context.Context) error {
	results, err := a.newService().AllSpreads(ctx)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		fmt.Fprintln(os.Stdout, "no eligible markets")
		return nil
	}

	writer := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "Market\tSpread")
	for _, entry := range results {
		fmt.Fprintf(writer, "%s\t%s\n", entry.Market, entry.Spread)
	}
	return writer.Flush()
}
