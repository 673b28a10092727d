package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/folio/internal/router"
)

func newRouteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "route [fragment]",
		Short: "Show which view a URL fragment selects",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var fragment string
			if len(args) > 0 {
				fragment = args[0]
			}
			state := router.NewState(fragment)
			route := state.Route()
			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", state.Fragment(), route, route.Title())
			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(newRouteCmd())
}
