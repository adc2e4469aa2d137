package sim

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// StationConfig describes one station to create at scenario start.
type StationConfig struct {
	Name string `yaml:"name"`
}

// ArrivalConfig describes the arrival process feeding a scenario.
// Distribution is "exponential" (Mean is the mean interarrival time, ms) or
// "uniform" (Min/Max bound the interarrival time, ms).
type ArrivalConfig struct {
	Distribution string  `yaml:"distribution"`
	Mean         float64 `yaml:"mean_ms"`
	Min          float64 `yaml:"min_ms"`
	Max          float64 `yaml:"max_ms"`
}

// ServiceConfig describes the service-time process at a station, with the
// same distribution shape as ArrivalConfig.
type ServiceConfig struct {
	Distribution string  `yaml:"distribution"`
	Mean         float64 `yaml:"mean_ms"`
	Min          float64 `yaml:"min_ms"`
	Max          float64 `yaml:"max_ms"`
}

// BatchMeansConfig mirrors the parameters of stats.Analyzer.Configure.
type BatchMeansConfig struct {
	TransientObservations int     `yaml:"transient_observations"`
	BatchSize             int     `yaml:"batch_size"`
	Precision             float64 `yaml:"precision"`
	ConfidenceLevel       float64 `yaml:"confidence_level"`
}

// ScenarioConfig is a YAML-loadable description of a single-station
// simulation run: a strictly-parsed config struct plus a Validate method.
type ScenarioConfig struct {
	Seed       int64            `yaml:"seed"`
	HorizonMs  float64          `yaml:"horizon_ms"`
	Station    StationConfig    `yaml:"station"`
	Arrival    ArrivalConfig    `yaml:"arrival"`
	Service    ServiceConfig    `yaml:"service"`
	BatchMeans BatchMeansConfig `yaml:"batch_means"`
}

// LoadScenarioConfig reads and strictly parses a YAML scenario file,
// rejecting unrecognized keys as a typo guard.
func LoadScenarioConfig(path string) (*ScenarioConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario config: %w", err)
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("parsing scenario config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validDistributions = map[string]bool{"exponential": true, "uniform": true}

// Validate checks that distribution names and numeric parameters are sane.
func (c *ScenarioConfig) Validate() error {
	if c.Station.Name == "" {
		return fmt.Errorf("station.name must not be empty")
	}
	if !validDistributions[c.Arrival.Distribution] {
		return fmt.Errorf("unknown arrival distribution %q; valid options: exponential, uniform", c.Arrival.Distribution)
	}
	if !validDistributions[c.Service.Distribution] {
		return fmt.Errorf("unknown service distribution %q; valid options: exponential, uniform", c.Service.Distribution)
	}
	if c.BatchMeans.BatchSize <= 0 {
		return fmt.Errorf("batch_means.batch_size must be positive, got %d", c.BatchMeans.BatchSize)
	}
	if c.BatchMeans.Precision <= 0 {
		return fmt.Errorf("batch_means.precision must be positive, got %f", c.BatchMeans.Precision)
	}
	if c.BatchMeans.ConfidenceLevel <= 0 || c.BatchMeans.ConfidenceLevel >= 1 {
		return fmt.Errorf("batch_means.confidence_level must be in (0,1), got %f", c.BatchMeans.ConfidenceLevel)
	}
	return nil
}

// NextArrivalMs draws the next interarrival time in milliseconds from s,
// according to c's distribution.
func (c ArrivalConfig) NextArrivalMs(s *Streams) float64 {
	if c.Distribution == "uniform" {
		return s.Uniform(c.Min, c.Max)
	}
	return s.Exponential(c.Mean)
}

// NextServiceMs draws the next service time in milliseconds from s,
// according to c's distribution.
func (c ServiceConfig) NextServiceMs(s *Streams) float64 {
	if c.Distribution == "uniform" {
		return s.Uniform(c.Min, c.Max)
	}
	return s.Exponential(c.Mean)
}
