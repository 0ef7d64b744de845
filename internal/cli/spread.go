package cli

import (
	"github.com/spf13/cobra"
)

var spreadCmd = &cobra.Command{
	Use:   "spread [market]",
	Short: "Print the current spread for one market, or all eligible markets",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			return getApp().Spread(cmd.Context(), args[0])
		}
		return getApp().AllSpreads(cmd.Context())
	},
}
