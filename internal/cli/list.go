// List command queries the catalog.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shelfd/shelf/pkg/types"
)

func newListCmd(st *state) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List products, newest first",
		Long: `List prints the catalog in stored order (newest first).

Use --search to filter by a case-insensitive substring of name or category.

Example:
  shelf list
  shelf list --search teclado
  shelf list --search eletronicos --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, closer, err := st.openModel()
			if err != nil {
				return err
			}
			defer closer()

			model.SetSearchTerm(search)
			products := model.FilteredProducts()

			if st.jsonMode {
				if products == nil {
					products = []types.Product{}
				}
				return printJSON(cmd.OutOrStdout(), products)
			}
			printProductTable(cmd.OutOrStdout(), products)
			return nil
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name or category substring")
	return cmd
}
