package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "biotope",
		Short: "Headless Galapagos finch simulation",
		Long: `biotope runs the Galapagos finch simulation without a window.

Finches on a torus grid clean each other (or don't) according to their
strategy, age, die and breed. The commands here compute rounds, compare
strategies over many seeds and query recorded statistics.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML run configuration")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug or trace (overrides config)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or console (overrides config)")
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON")

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(),
		newSweepCmd(),
		newStrategiesCmd(),
		newConfigCmd(),
		newHistoryCmd(),
		newChartCmd(),
	)
	return rootCmd
}
