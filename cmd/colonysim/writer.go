package main

import (
	"os"

	"colonysim/internal/model"
	"colonysim/internal/sim"
)

// newWriters sets up record and summary writers based on flags and env vars.
// It returns the writers and a cleanup function to close any resources.
func newWriters(params model.Parameters, printOnly, color bool, logFile string) (sim.RecordWriter, sim.SummaryWriter, func(), error) {
	cleanup := func() {}

	writer, summaryWriter, err := baseWriters(params, printOnly, color)
	if err != nil {
		return nil, nil, nil, err
	}
	if logFile == "" {
		return writer, summaryWriter, cleanup, nil
	}

	fw, err := sim.NewFileWriter(logFile, logFile+".runs")
	if err != nil {
		return nil, nil, nil, err
	}
	mw := sim.NewMultiWriter(
		[]sim.RecordWriter{writer, fw},
		[]sim.SummaryWriter{summaryWriter, fw},
	)
	cleanup = func() { fw.Close() }
	return mw, mw, cleanup, nil
}

// baseWriters chooses the underlying writers based on the printOnly flag and
// env vars (GreptimeDB when GREPTIMEDB_ENDPOINT is set, STDOUT otherwise).
func baseWriters(params model.Parameters, printOnly, color bool) (sim.RecordWriter, sim.SummaryWriter, error) {
	if printOnly || os.Getenv("GREPTIMEDB_ENDPOINT") == "" {
		if color {
			cw := sim.NewColorStdoutWriter(params)
			return cw, cw, nil
		}
		sw := &sim.StdoutWriter{}
		return sw, sw, nil
	}

	endpoint := os.Getenv("GREPTIMEDB_ENDPOINT")
	database := os.Getenv("GREPTIMEDB_DATABASE")
	if database == "" {
		database = "public"
	}
	w, err := sim.NewGreptimeDBWriter(endpoint, database,
		os.Getenv("GREPTIMEDB_TABLE"), os.Getenv("COLONY_RUN_TABLE"))
	if err != nil {
		return nil, nil, err
	}
	return w, w, nil
}
