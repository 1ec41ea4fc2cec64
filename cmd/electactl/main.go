// Command electactl maintains the canonical course catalog: it merges
// the tabular sources into the cached canonical file the API server
// can load directly, and inspects the result.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "electactl",
	Short:         "Manage the Electa course catalog",
	Long:          "electactl merges the semester, slot and category source tables into the canonical course catalog used by the Electa API server.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
