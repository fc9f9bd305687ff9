// Stats command summarizes the catalog.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfd/shelf/pkg/types"
)

func newStatsCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show catalog statistics",
		Long: `Stats prints the product count and the aggregate stock value
(sum of price times stock over the whole catalog).

Example:
  shelf stats
  shelf stats --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, closer, err := st.openModel()
			if err != nil {
				return err
			}
			defer closer()

			stats := model.Stats()
			if st.jsonMode {
				return printJSON(cmd.OutOrStdout(), stats)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Products:    %d\n", stats.Total)
			fmt.Fprintf(cmd.OutOrStdout(), "Total value: %s %s\n", types.CurrencyPrefix, stats.TotalValue)
			return nil
		},
	}
}
