// Init command bootstraps shelf storage.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newInitCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize shelf configuration and storage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// PersistentPreRunE already created the config dir and a default
			// config.yaml; opening the model creates the data dir.
			configDir, err := st.resolveConfigDir()
			if err != nil {
				return fmt.Errorf("resolve config dir: %w", err)
			}
			dataDir, err := st.resolveDataDir()
			if err != nil {
				return fmt.Errorf("resolve data dir: %w", err)
			}

			_, closer, err := st.openModel()
			if err != nil {
				return err
			}
			defer closer()

			fmt.Fprintln(cmd.OutOrStdout(), "Shelf initialized successfully")
			fmt.Fprintln(cmd.OutOrStdout(), "  config:", configDir)
			fmt.Fprintln(cmd.OutOrStdout(), "  data:  ", dataDir)
			return nil
		},
	}
}
