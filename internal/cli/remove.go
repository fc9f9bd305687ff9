// Remove command deletes a product by id.
package cli

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

func newRemoveCmd(st *state) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a product from the catalog",
		Long: `Remove deletes the product with the given id and persists the catalog.

Removal asks for confirmation unless --yes is passed. An id that does not
exist is a no-op, not an error.

Example:
  shelf remove 1700000000001
  shelf remove 1700000000001 --yes`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid product id %q", args[0])
			}

			if !yes && !confirm(cmd, fmt.Sprintf("Remove product %d? [y/N]: ", id)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
				return nil
			}

			model, closer, err := st.openModel()
			if err != nil {
				return err
			}
			defer closer()

			if !model.RemoveProduct(id) {
				// Absent ids are a silent no-op; nothing was touched.
				fmt.Fprintf(cmd.OutOrStdout(), "No product with id %d.\n", id)
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed product %d.\n", id)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

// confirm prompts on the command's input stream and reports whether the user
// answered yes.
func confirm(cmd *cobra.Command, prompt string) bool {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes" || answer == "s" || answer == "sim"
}
