package cli

import (
	"github.com/spf13/cobra"

	"spread-alerts/internal/app"
)

var watchCmd = &cobra.Command{
	Use:   "watch <market>",
	Short: "Periodically recompute and log one market's spread",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return getApp().Watch(cmd.Context(), app.WatchOptions{MarketID: args[0]})
	},
}
