// Package commands defines the taskboard command line.
package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it without a subcommand
// starts the server.
func NewRootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:           "taskboard",
		Short:         "A small task tracker with an HTML UI and JSON API",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServer(cmd.Context(), configFile)
		},
	}
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file path (default: search ./config.yaml, $HOME/.taskboard, /etc/taskboard)")

	// Add subcommands
	rootCmd.AddCommand(
		NewStartCommand(&configFile),
		NewVersionCommand(),
	)

	return rootCmd
}
