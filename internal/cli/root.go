// Package cli implements the shelf command-line interface: a scripting front
// end over the same product model the interactive UI drives.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/shelfd/shelf/pkg/shelf"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// state holds global flag values and the loaded configuration, shared by all
// subcommands of one root command instance.
type state struct {
	configDir string
	dataDir   string
	jsonMode  bool

	// Loaded from config.yaml by the root PersistentPreRunE.
	cfgBackend string
	cfgDataDir string
}

// NewRootCmd creates the top-level "shelf" command with global flags and all
// subcommands registered.
func NewRootCmd() *cobra.Command {
	st := &state{}

	root := &cobra.Command{
		Use:     "shelf",
		Short:   "Shelf is a local-first product inventory manager",
		Long:    "Shelf manages a small catalog of products persisted in local storage:\nadd, remove, search, and summary statistics, from the terminal or an\ninteractive UI.",
		Version: shelf.Version,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			configDir, err := st.resolveConfigDir()
			if err != nil {
				return err
			}
			cfg, err := loadConfig(configDir)
			if err != nil {
				return err
			}
			st.cfgBackend = cfg.GetString(cfgKeyBackend)
			st.cfgDataDir = cfg.GetString(cfgKeyDataDir)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&st.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&st.dataDir, "data-dir", "", "data directory (default: $(CWD)/.shelf-db)")
	root.PersistentFlags().BoolVar(&st.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(st))
	root.AddCommand(newAddCmd(st))
	root.AddCommand(newRemoveCmd(st))
	root.AddCommand(newListCmd(st))
	root.AddCommand(newStatsCmd(st))
	root.AddCommand(newUICmd(st))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "shelf:", err)
		os.Exit(exitUserError)
	}
}
