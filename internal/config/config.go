// YAML config loader with CUE validation integration
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"colonysim/internal/model"
	"colonysim/internal/sim"
)

// Environment defines the ambient conditions of the treated area.
type Environment struct {
	TemperatureC float64 `yaml:"temperature_c"`
	HumidityPct  float64 `yaml:"humidity_pct"`
}

// Colony defines the initial state of the infestation.
type Colony struct {
	InitialPopulation float64 `yaml:"initial_population"`
	Immigration       float64 `yaml:"immigration"`
}

// Treatment defines the insecticide effect model.
type Treatment struct {
	Potency          float64 `yaml:"potency"`
	FeedingDelayDays int     `yaml:"feeding_delay_days"`
}

// SimulationConfig is the root configuration for a simulation run.
type SimulationConfig struct {
	Scenario    string      `yaml:"scenario"`
	Environment Environment `yaml:"environment"`
	Colony      Colony      `yaml:"colony"`
	Treatment   Treatment   `yaml:"treatment"`
	HorizonDays int         `yaml:"horizon_days"`
	Biology     sim.Biology `yaml:"biology"`
}

// Parameters flattens the config into the engine parameter set.
func (c *SimulationConfig) Parameters() model.Parameters {
	return model.Parameters{
		TemperatureC:      c.Environment.TemperatureC,
		HumidityPct:       c.Environment.HumidityPct,
		Immigration:       c.Colony.Immigration,
		InitialPopulation: c.Colony.InitialPopulation,
		Potency:           c.Treatment.Potency,
		FeedingDelayDays:  c.Treatment.FeedingDelayDays,
		HorizonDays:       c.HorizonDays,
	}
}

// Load loads YAML config and validates it against a CUE schema. Fields absent
// from the file keep their defaults; semantic validation of the parameters
// happens at the engine boundary.
func Load(configPath, cueSchemaPath string) (*SimulationConfig, error) {
	if err := ValidateWithCue(configPath, cueSchemaPath); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, err
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns the stock configuration the YAML file overlays.
func Default() *SimulationConfig {
	return &SimulationConfig{
		Scenario: "baseline",
		Environment: Environment{
			TemperatureC: 30,
			HumidityPct:  70,
		},
		Colony: Colony{
			InitialPopulation: 500,
			Immigration:       10,
		},
		Treatment: Treatment{
			Potency:          0.223,
			FeedingDelayDays: 4,
		},
		HorizonDays: 60,
		Biology:     sim.DefaultBiology(),
	}
}
