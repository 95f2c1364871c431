package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"colonysim/internal/admin"
	"colonysim/internal/chart"
	"colonysim/internal/config"
	"colonysim/internal/logging"
	"colonysim/internal/sim"
)

var (
	simPrintOnly  bool
	simColor      bool
	simConfigPath string
	simSchemaPath string
	simLogFile    string
	simServe      bool
	simServeAddr  string
	simChart      bool
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run one simulation from the configuration file",
	Long: "simulate computes the daily population trajectory for the configured " +
		"parameter set and writes the series plus a run summary to the configured outputs.",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := logging.FromContext(cmd.Context())

		cfg, err := config.Load(simConfigPath, simSchemaPath)
		if err != nil {
			return err
		}
		params := cfg.Parameters()

		writer, summaryWriter, cleanup, err := newWriters(params, simPrintOnly, simColor, simLogFile)
		if err != nil {
			return err
		}
		defer cleanup()

		runner := sim.NewRunner(sim.NewEngine(cfg.Biology), params, writer, summaryWriter)
		summary, err := runner.Run(cfg.Scenario)
		if err != nil {
			return err
		}
		logger.Info("run complete",
			"run_id", summary.RunID,
			"scenario", summary.Scenario,
			"eliminated", summary.Elimination.Reached,
			"elimination_day", summary.Elimination.Day,
			"final_population", summary.FinalPopulation)

		if simChart {
			if records, _, ok := runner.Snapshot(); ok {
				fmt.Println(chart.Render(records, params.InitialPopulation, 80, 16))
			}
		}

		if !simServe {
			return nil
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		srv := admin.NewServer(runner)
		go func() {
			log.Printf("[Main] Admin UI listening on %s", simServeAddr)
			if err := srv.Start(ctx, simServeAddr); err != nil && err != http.ErrServerClosed {
				log.Fatalf("Admin server failed: %v", err)
			}
		}()

		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs

		cancel()
		log.Println("[Main] Colony simulation stopped.")
		return nil
	},
}

func init() {
	simulateCmd.Flags().BoolVar(&simPrintOnly, "print-only", false, "Print output to STDOUT instead of writing to DB")
	simulateCmd.Flags().BoolVar(&simColor, "color", false, "Human-friendly colorized STDOUT output")
	simulateCmd.Flags().StringVar(&simConfigPath, "config", "config/simulation.yaml", "Path to simulation configuration YAML")
	simulateCmd.Flags().StringVar(&simSchemaPath, "schema", "schemas/simulation.cue", "Path to CUE schema file")
	simulateCmd.Flags().StringVar(&simLogFile, "log-file", "", "Path to export the run as JSONL")
	simulateCmd.Flags().BoolVar(&simChart, "chart", false, "Print an ASCII trajectory chart after the run")
	simulateCmd.Flags().BoolVar(&simServe, "serve", false, "Keep running and expose the admin UI")
	simulateCmd.Flags().StringVar(&simServeAddr, "addr", ":8080", "Admin UI listen address")
}
