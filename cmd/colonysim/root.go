package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"colonysim/internal/logging"
)

var rootVerbose bool

var rootCmd = &cobra.Command{
	Use:   "colonysim",
	Short: "Cockroach colony treatment simulator",
	Long: "colonysim simulates the population dynamics of a Blattella germanica " +
		"colony under a slow-acting insecticide treatment.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger := logging.New(rootVerbose)
		cmd.SetContext(logging.NewContext(cmd.Context(), logger))
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(sweepCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(dashboardCmd)
}
