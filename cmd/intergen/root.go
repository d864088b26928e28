package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "intergen",
		Short:         "Random interaction generator",
		Long:          "intergen samples distinct random interactions over a signature of lifelines and messages.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	root.AddCommand(newGenerateCmd())
	return root
}
