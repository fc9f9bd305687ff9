// UI command launches the interactive terminal interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/shelfd/shelf/internal/inventory"
	"github.com/shelfd/shelf/internal/journal"
	"github.com/shelfd/shelf/internal/tui"
)

func newUICmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive catalog UI",
		Long: `UI opens the full-screen terminal interface: add products through the
form, search as you type, and remove entries with a guarded delete.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			model, closer, err := st.openModel()
			if err != nil {
				return err
			}
			defer closer()

			dataDir, err := st.resolveDataDir()
			if err != nil {
				return err
			}
			jrnl, err := journal.Open(dataDir)
			if err != nil {
				jrnl = nil
			}
			return runUI(model, jrnl)
		},
	}
}

// runUI is swapped out in tests to avoid opening a real terminal program.
var runUI = func(model *inventory.Model, jrnl *journal.Journal) error {
	return tui.Run(model, jrnl)
}
