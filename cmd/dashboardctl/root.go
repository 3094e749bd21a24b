package main

import (
	"recovery-dashboard/internal/core/logger"

	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var logLevel string

	root := &cobra.Command{
		Use:   "dashboardctl",
		Short: "Build recovery dashboards from order exports",
		Long: `dashboardctl runs the recovery pipeline over a CSV/TSV order export
and prints the normalized records and dashboard projections.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init("development", logLevel)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level (debug, info, warn, error)")
	root.AddCommand(newProcessCmd())
	return root
}
