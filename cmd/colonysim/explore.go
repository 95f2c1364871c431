package main

import (
	"os"

	"github.com/spf13/cobra"

	"colonysim/internal/config"
	"colonysim/internal/sim"
	"colonysim/internal/tui"
)

var (
	exploreConfigPath string
	exploreSchemaPath string
	exploreLogFile    string
)

var exploreCmd = &cobra.Command{
	Use:   "explore",
	Short: "Interactive parameter dashboard",
	Long: "explore opens a terminal dashboard with adjustable parameter sliders; " +
		"every change re-runs the simulation and redraws the trajectory.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(exploreConfigPath, exploreSchemaPath)
		if err != nil {
			return err
		}
		params := cfg.Parameters()

		// Writers only receive runs the user explicitly saves from the TUI.
		// Plain STDOUT output would fight the TUI for the terminal, so runs
		// are discarded unless a sink (DB or log file) is configured.
		var (
			writer        sim.RecordWriter
			summaryWriter sim.SummaryWriter
			cleanup       = func() {}
		)
		if os.Getenv("GREPTIMEDB_ENDPOINT") != "" || exploreLogFile != "" {
			writer, summaryWriter, cleanup, err = newWriters(params, false, false, exploreLogFile)
			if err != nil {
				return err
			}
		}
		defer cleanup()

		engine := sim.NewEngine(cfg.Biology)
		runner := sim.NewRunner(engine, params, writer, summaryWriter)
		return tui.Run(engine, runner, params, cfg.Scenario)
	},
}

func init() {
	exploreCmd.Flags().StringVar(&exploreConfigPath, "config", "config/simulation.yaml", "Path to simulation configuration YAML")
	exploreCmd.Flags().StringVar(&exploreSchemaPath, "schema", "schemas/simulation.cue", "Path to CUE schema file")
	exploreCmd.Flags().StringVar(&exploreLogFile, "log-file", "", "Path to export saved runs as JSONL")
}
