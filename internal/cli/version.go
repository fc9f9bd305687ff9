// Version command for the shelf CLI.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shelfd/shelf/pkg/shelf"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the shelf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "shelf", shelf.Version)
		},
	}
}
