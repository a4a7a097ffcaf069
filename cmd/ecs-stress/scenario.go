package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Scenario is an optional YAML run description. Zero fields leave the
// corresponding flag defaults in place, and flags set explicitly on the
// command line always win.
type Scenario struct {
	Entities     int      `yaml:"entities"`
	Frequency    uint16   `yaml:"frequency"`
	SpawnPerTick int      `yaml:"spawn_per_tick"`
	Duration     duration `yaml:"duration"`
}

// duration accepts Go duration strings like "30s" in scenario files.
type duration time.Duration

func (d *duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("parse duration %q: %w", raw, err)
	}

	*d = duration(parsed)
	return nil
}

func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := sc.validate(); err != nil {
		return nil, fmt.Errorf("scenario %s: %w", path, err)
	}
	return &sc, nil
}

func (sc *Scenario) validate() error {
	if sc.Entities < 0 {
		return fmt.Errorf("entities must not be negative, got %d", sc.Entities)
	}
	if sc.SpawnPerTick < 0 {
		return fmt.Errorf("spawn_per_tick must not be negative, got %d", sc.SpawnPerTick)
	}
	if sc.Duration < 0 {
		return fmt.Errorf("duration must not be negative, got %s", time.Duration(sc.Duration))
	}
	return nil
}

// runConfig is the effective configuration after merging flags and an
// optional scenario file.
type runConfig struct {
	Duration     time.Duration
	Entities     int
	Frequency    uint16
	SpawnPerTick int
}

// apply overlays scenario values onto the config, skipping every field
// whose flag was set explicitly.
func (c *runConfig) apply(sc *Scenario, explicit map[string]bool) {
	if sc.Entities > 0 && !explicit["entities"] {
		c.Entities = sc.Entities
	}
	if sc.Frequency > 0 && !explicit["frequency"] {
		c.Frequency = sc.Frequency
	}
	if sc.SpawnPerTick > 0 && !explicit["spawn-per-tick"] {
		c.SpawnPerTick = sc.SpawnPerTick
	}
	if sc.Duration > 0 && !explicit["duration"] {
		c.Duration = time.Duration(sc.Duration)
	}
}
