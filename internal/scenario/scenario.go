package scenario

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"colonysim/internal/model"
)

// Set is a named collection of scenarios to compare against a base
// parameter set.
type Set struct {
	Name        string     `yaml:"name,omitempty"`
	Description string     `yaml:"description,omitempty"`
	Scenarios   []Scenario `yaml:"scenarios"`
}

// Scenario overlays selected parameters on top of the base configuration.
// Nil fields keep the base value.
type Scenario struct {
	Name              string   `yaml:"name"`
	TemperatureC      *float64 `yaml:"temperature_c,omitempty"`
	HumidityPct       *float64 `yaml:"humidity_pct,omitempty"`
	Immigration       *float64 `yaml:"immigration,omitempty"`
	InitialPopulation *float64 `yaml:"initial_population,omitempty"`
	Potency           *float64 `yaml:"potency,omitempty"`
	FeedingDelayDays  *int     `yaml:"feeding_delay_days,omitempty"`
	HorizonDays       *int     `yaml:"horizon_days,omitempty"`
}

// Load reads a YAML scenario set from disk.
func Load(path string) (*Set, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}
	var s Set
	if err := yaml.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("parse scenarios: %w", err)
	}
	if len(s.Scenarios) == 0 {
		return nil, fmt.Errorf("scenario file %s defines no scenarios", path)
	}
	for i, sc := range s.Scenarios {
		if sc.Name == "" {
			return nil, fmt.Errorf("scenario %d has no name", i)
		}
	}
	return &s, nil
}

// Apply returns the base parameters with the scenario's overrides applied.
func (s Scenario) Apply(base model.Parameters) model.Parameters {
	p := base
	if s.TemperatureC != nil {
		p.TemperatureC = *s.TemperatureC
	}
	if s.HumidityPct != nil {
		p.HumidityPct = *s.HumidityPct
	}
	if s.Immigration != nil {
		p.Immigration = *s.Immigration
	}
	if s.InitialPopulation != nil {
		p.InitialPopulation = *s.InitialPopulation
	}
	if s.Potency != nil {
		p.Potency = *s.Potency
	}
	if s.FeedingDelayDays != nil {
		p.FeedingDelayDays = *s.FeedingDelayDays
	}
	if s.HorizonDays != nil {
		p.HorizonDays = *s.HorizonDays
	}
	return p
}
