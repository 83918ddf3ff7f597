// Package cli provides the command-line interface for the docweave tool.
package cli

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docweave",
		Short: "Weave module documentation out of inner source comments",
	}

	rootCmd.AddCommand(newExtractCommand())
	rootCmd.AddCommand(newCombineCommand())
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}

// Execute creates and runs the root command.
func Execute() error {
	return newRootCommand().Execute()
}
