package config

var Presets = map[string]*Config{
	"mission": {
		DurationDays: 120, ActivationDay: 75, Seed: 42,
	},
	"early": {
		DurationDays: 120, ActivationDay: 10, Seed: 42,
	},
	"day-one": {
		DurationDays: 90, ActivationDay: 0, Seed: 42,
	},
	"baseline": {
		// Activation at the horizon: no tick receives the uplift, leaving
		// a pure drift-and-noise reference run.
		DurationDays: 90, ActivationDay: 90, Seed: 42,
	},
	"quarter": {
		DurationDays: 30, ActivationDay: 15, Seed: 42,
	},
	"year": {
		DurationDays: 365, ActivationDay: 180, Seed: 42,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
