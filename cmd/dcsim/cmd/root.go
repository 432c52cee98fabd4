package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "dcsim",
	Short: "dcsim - DC steady-state solver for sandbox schematics",
	Long: `dcsim solves the DC steady state of a schematic: node voltages,
branch currents, per-element power and multimeter readings, including
LED threshold behavior and micro:bit pin sources.

Examples:
  dcsim solve circuit.json            # Solve and print per-element results
  dcsim solve --debug circuit.json    # Trace partitioning and iterations
  dcsim solve --sparse circuit.json   # Force the sparse LU backend`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable solve tracing")
}
