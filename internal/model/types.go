// Core simulation types with greptime tags
package model

import (
	"os"
	"time"
)

// EliminationFraction is the share of the initial population below which the
// colony counts as functionally eliminated.
const EliminationFraction = 0.05

// Parameters is the immutable input of one simulation run.
type Parameters struct {
	TemperatureC      float64 `yaml:"temperature_c" json:"temperature_c"`
	HumidityPct       float64 `yaml:"humidity_pct" json:"humidity_pct"`
	Immigration       float64 `yaml:"immigration" json:"immigration"`
	InitialPopulation float64 `yaml:"initial_population" json:"initial_population"`
	Potency           float64 `yaml:"potency" json:"potency"`
	FeedingDelayDays  int     `yaml:"feeding_delay_days" json:"feeding_delay_days"`
	HorizonDays       int     `yaml:"horizon_days" json:"horizon_days"`
}

// Phase labels derived from the elimination threshold.
const (
	PhaseActive     = "active"
	PhaseEliminated = "eliminated"
)

// DailyRecord is one day of the simulated trajectory.
type DailyRecord struct {
	RunID        string    `json:"run_id"`        // TAG
	Scenario     string    `json:"scenario"`      // TAG
	Day          int       `json:"day"`           // FIELD
	Population   float64   `json:"population"`    // FIELD
	KillFraction float64   `json:"kill_fraction"` // FIELD
	Phase        string    `json:"phase"`         // FIELD
	Timestamp    time.Time `json:"ts"`            // TIME INDEX
}

// EliminationResult reports whether and when the trajectory first dropped
// below the elimination threshold.
type EliminationResult struct {
	Reached bool `json:"reached"`
	Day     int  `json:"day"`
}

// RunSummary is the per-run summary row written next to the daily series.
type RunSummary struct {
	RunID           string            `json:"run_id"`   // TAG
	Scenario        string            `json:"scenario"` // TAG
	Params          Parameters        `json:"params"`
	FinalPopulation float64           `json:"final_population"`
	Elimination     EliminationResult `json:"elimination"`
	Timestamp       time.Time         `json:"ts"` // TIME INDEX
}

// PopulationTableName holds the table name used when writing daily records to
// GreptimeDB. It defaults to "colony_population" but can be overridden via the
// GREPTIMEDB_TABLE environment variable.
var PopulationTableName = func() string {
	if env := os.Getenv("GREPTIMEDB_TABLE"); env != "" {
		return env
	}
	return "colony_population"
}()

func (DailyRecord) TableName() string {
	return PopulationTableName
}

// RunTableName holds the table name for run summaries, overridable via the
// COLONY_RUN_TABLE environment variable.
var RunTableName = func() string {
	if env := os.Getenv("COLONY_RUN_TABLE"); env != "" {
		return env
	}
	return "colony_runs"
}()

func (RunSummary) TableName() string {
	return RunTableName
}

// PhaseFor classifies a population value against the elimination threshold of
// the given initial population.
func PhaseFor(population, initial float64) string {
	if population < EliminationFraction*initial {
		return PhaseEliminated
	}
	return PhaseActive
}
