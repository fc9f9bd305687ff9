// Add command creates a new product.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/shelfd/shelf/pkg/types"
)

func newAddCmd(st *state) *cobra.Command {
	var (
		name     string
		price    string
		category string
		stock    string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a product to the catalog",
		Long: `Add creates a new product and persists the catalog.

Example:
  shelf add --name "Widget" --price 9.99 --category eletronicos --stock 3
  shelf add --name "Camiseta" --price 29.90 --category roupas --stock 10 --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The model stores whatever it is handed; the front end is the
			// validating layer, so enforce the form rules here.
			if err := validateAddFlags(name, price, category, stock); err != nil {
				return err
			}

			model, closer, err := st.openModel()
			if err != nil {
				return err
			}
			defer closer()

			p := model.AddProduct(types.ProductInput{
				Name:     name,
				Price:    price,
				Category: category,
				Stock:    stock,
			})

			if st.jsonMode {
				return printJSON(cmd.OutOrStdout(), p)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added product %q (id %d)\n", p.Name, p.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "product name (required)")
	cmd.Flags().StringVar(&price, "price", "", "unit price, decimal (required)")
	cmd.Flags().StringVar(&category, "category", "", "category slug: "+strings.Join(types.Categories(), ", ")+" (required)")
	cmd.Flags().StringVar(&stock, "stock", "", "stock count, integer (required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("price")
	_ = cmd.MarkFlagRequired("category")
	_ = cmd.MarkFlagRequired("stock")

	return cmd
}

// validateAddFlags applies the same first-violation rules the interactive
// form enforces: non-empty trimmed name, positive price, selected category,
// non-negative stock.
func validateAddFlags(name, price, category, stock string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("--name must not be empty")
	}
	if v, err := strconv.ParseFloat(strings.TrimSpace(price), 64); err != nil || v <= 0 {
		return fmt.Errorf("--price must be a decimal greater than zero, got %q", price)
	}
	if category == "" {
		return fmt.Errorf("--category must not be empty")
	}
	if v, err := strconv.Atoi(strings.TrimSpace(stock)); err != nil || v < 0 {
		return fmt.Errorf("--stock must be a non-negative integer, got %q", stock)
	}
	return nil
}
