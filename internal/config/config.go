package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"qubitsim/internal/engine"
)

const (
	DefaultDurationDays  = 120
	DefaultActivationDay = 75
	DefaultSeed          = 42
)

// Config is the file-backed simulation configuration. Values map directly
// onto engine.Config; CLI flags override file values.
type Config struct {
	DurationDays  int   `yaml:"duration_days"`
	ActivationDay int   `yaml:"activation_day"`
	Seed          int64 `yaml:"seed"`
}

func DefaultConfig() *Config {
	return &Config{
		DurationDays:  DefaultDurationDays,
		ActivationDay: DefaultActivationDay,
		Seed:          DefaultSeed,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Engine converts the file configuration into engine parameters.
func (c *Config) Engine() engine.Config {
	return engine.Config{
		DurationDays:  c.DurationDays,
		ActivationDay: c.ActivationDay,
		Seed:          c.Seed,
	}
}
