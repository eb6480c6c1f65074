package cmd

import "github.com/spf13/cobra"

var rootCmd = &cobra.Command{
	Use:   "parsekit-debug",
	Short: "Run a parsekit example grammar against stdin",
	Long: `parsekit-debug is a small operational tool for exercising the
library's worked example grammars interactively.

It is not a grammar-definition language of its own: the grammars it
runs are the ones already built in the examples package, selected by
name with the run subcommand.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
