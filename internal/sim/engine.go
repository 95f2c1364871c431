// Engine computing the daily colony population recurrence
package sim

import (
	"fmt"
	"math"
	"time"

	"colonysim/internal/model"
)

// InvalidParamError reports which parameter failed validation and why.
type InvalidParamError struct {
	Field  string
	Reason string
}

func (e *InvalidParamError) Error() string {
	return fmt.Sprintf("invalid parameter %s: %s", e.Field, e.Reason)
}

// Biology holds the environmental response constants of the colony. The
// defaults describe Blattella germanica: reproduction peaks at 30 °C / 70 % RH
// and falls off linearly towards the band edges.
type Biology struct {
	GrowthRate      float64 `yaml:"growth_rate"`
	TempOptimumC    float64 `yaml:"temp_optimum_c"`
	TempToleranceC  float64 `yaml:"temp_tolerance_c"`
	HumOptimumPct   float64 `yaml:"hum_optimum_pct"`
	HumTolerancePct float64 `yaml:"hum_tolerance_pct"`
}

// DefaultBiology returns the stock response constants.
func DefaultBiology() Biology {
	return Biology{
		GrowthRate:      0.06,
		TempOptimumC:    30,
		TempToleranceC:  20,
		HumOptimumPct:   70,
		HumTolerancePct: 40,
	}
}

// Populations below this floor snap to zero so the multiplicative model can
// actually reach the absorbing state.
const extinctionFloor = 1e-9

// Engine runs the deterministic daily recurrence. It is stateless apart from
// its biology constants; Run is a pure function of its parameters.
type Engine struct {
	bio Biology
}

// NewEngine creates an engine with the given biology. Zero-valued fields fall
// back to the defaults.
func NewEngine(bio Biology) *Engine {
	def := DefaultBiology()
	if bio.GrowthRate == 0 {
		bio.GrowthRate = def.GrowthRate
	}
	if bio.TempToleranceC == 0 {
		bio.TempOptimumC = def.TempOptimumC
		bio.TempToleranceC = def.TempToleranceC
	}
	if bio.HumTolerancePct == 0 {
		bio.HumOptimumPct = def.HumOptimumPct
		bio.HumTolerancePct = def.HumTolerancePct
	}
	return &Engine{bio: bio}
}

// Validate checks the preconditions of Run.
func Validate(p model.Parameters) error {
	check := func(field string, v float64) *InvalidParamError {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &InvalidParamError{Field: field, Reason: "must be finite"}
		}
		return nil
	}
	if err := check("temperature_c", p.TemperatureC); err != nil {
		return err
	}
	if err := check("humidity_pct", p.HumidityPct); err != nil {
		return err
	}
	if p.HumidityPct < 0 || p.HumidityPct > 100 {
		return &InvalidParamError{Field: "humidity_pct", Reason: "must be within [0,100]"}
	}
	if err := check("immigration", p.Immigration); err != nil {
		return err
	}
	if p.Immigration < 0 {
		return &InvalidParamError{Field: "immigration", Reason: "must be non-negative"}
	}
	if err := check("initial_population", p.InitialPopulation); err != nil {
		return err
	}
	if p.InitialPopulation <= 0 {
		return &InvalidParamError{Field: "initial_population", Reason: "must be positive"}
	}
	if err := check("potency", p.Potency); err != nil {
		return err
	}
	if p.Potency < 0 {
		return &InvalidParamError{Field: "potency", Reason: "must be non-negative"}
	}
	if p.FeedingDelayDays < 0 {
		return &InvalidParamError{Field: "feeding_delay_days", Reason: "must be non-negative"}
	}
	if p.HorizonDays < 1 {
		return &InvalidParamError{Field: "horizon_days", Reason: "must be at least 1"}
	}
	return nil
}

// EnvironmentFactor is the reproduction response to temperature and humidity,
// in [0,1]. Triangular band around the optima: 1 at the optimum, falling
// linearly to 0 at the tolerance edge, 0 outside the band.
func (e *Engine) EnvironmentFactor(tempC, humidityPct float64) float64 {
	tf := 1 - math.Abs(tempC-e.bio.TempOptimumC)/e.bio.TempToleranceC
	hf := 1 - math.Abs(humidityPct-e.bio.HumOptimumPct)/e.bio.HumTolerancePct
	if tf < 0 {
		tf = 0
	}
	if hf < 0 {
		hf = 0
	}
	return tf * hf
}

// DailySurvival is the fraction of the population surviving one day of active
// treatment for the given potency. Potency 0 means no treatment effect.
func DailySurvival(potency float64) float64 {
	return math.Exp(-potency)
}

// Run executes the recurrence and returns one record per day (horizon+1 in
// total, day 0 holding the initial population) plus the elimination result.
//
// Per-day ordering, held invariant: reproduction first, then immigration, then
// treatment mortality. Immigrants arriving on day d are exposed to that day's
// treatment but do not reproduce before day d+1. Day 0 remains untouched; zero
// population is absorbing, including against immigration.
func (e *Engine) Run(p model.Parameters) ([]model.DailyRecord, model.EliminationResult, error) {
	if err := Validate(p); err != nil {
		return nil, model.EliminationResult{}, err
	}

	threshold := model.EliminationFraction * p.InitialPopulation
	growth := 1 + e.bio.GrowthRate*e.EnvironmentFactor(p.TemperatureC, p.HumidityPct)
	survival := DailySurvival(p.Potency)

	records := make([]model.DailyRecord, 0, p.HorizonDays+1)
	records = append(records, model.DailyRecord{
		Day:        0,
		Population: p.InitialPopulation,
		Phase:      model.PhaseFor(p.InitialPopulation, p.InitialPopulation),
	})

	var result model.EliminationResult
	pop := p.InitialPopulation
	surviving := 1.0 // cumulative treatment survival product

	for d := 1; d <= p.HorizonDays; d++ {
		if pop > 0 {
			pop *= growth
			pop += p.Immigration
			if d > p.FeedingDelayDays {
				pop *= survival
				surviving *= survival
			}
			if pop < extinctionFloor {
				pop = 0
			}
		}

		rec := model.DailyRecord{
			Day:          d,
			Population:   pop,
			KillFraction: 1 - surviving,
			Phase:        model.PhaseFor(pop, p.InitialPopulation),
		}
		records = append(records, rec)

		if !result.Reached && pop < threshold {
			result = model.EliminationResult{Reached: true, Day: d}
		}
	}

	return records, result, nil
}

// Stamp assigns timestamps and run identity to a freshly computed series so
// it can be handed to time-indexed writers. Day d maps to start + d days.
func Stamp(records []model.DailyRecord, runID, scenario string, start time.Time) {
	for i := range records {
		records[i].RunID = runID
		records[i].Scenario = scenario
		records[i].Timestamp = start.AddDate(0, 0, records[i].Day)
	}
}
