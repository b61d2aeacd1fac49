package engine

import (
	"math/rand"
)

// Engine runs the fidelity simulation. It owns the configuration and a
// private random source seeded once at construction.
type Engine struct {
	cfg   Config
	rng   *rand.Rand
	ticks int
}

// Result is one simulation run: four aligned series of equal length.
type Result struct {
	// Days is the fractional-day axis, Days[t] = t/24.
	Days []float64
	// FidelitySC is superconducting-qubit fidelity in [0, 1].
	FidelitySC []float64
	// FidelityTI is trapped-ion-qubit fidelity in [0, 1].
	FidelityTI []float64
	// Temperature is ambient temperature in degrees Celsius.
	Temperature []float64
}

// Ticks returns the number of samples in each series.
func (r *Result) Ticks() int { return len(r.Days) }

// New validates cfg and constructs an engine with a freshly seeded random
// source. It returns ErrInvalidConfig (wrapped) when the parameters violate
// their constraints.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(cfg.Seed)),
		ticks: cfg.Ticks(),
	}, nil
}

// Config returns the engine's configuration.
func (e *Engine) Config() Config { return e.cfg }

// Run executes one simulation pass: temperature model, correlated noise,
// then both fidelity transforms over the shared realizations. The
// computation is unconditional array arithmetic with no failure path;
// recoverable numeric edge cases are absorbed structurally (DC clamp in the
// noise generator, [0,1] saturation in the transforms).
//
// Each call is a fresh draw from the engine's random stream.
func (e *Engine) Run() *Result {
	days := make([]float64, e.ticks)
	active := make([]bool, e.ticks)
	for t := range days {
		days[t] = float64(t) / HoursPerDay
		active[t] = days[t] >= float64(e.cfg.ActivationDay)
	}

	temp := temperatureSeries(e.rng, e.ticks)

	noise := pinkNoise(e.rng, e.ticks)
	for i := range noise {
		noise[i] *= noiseCoeff
	}

	return &Result{
		Days:        days,
		FidelitySC:  fidelitySeries(techModels[Superconducting], temp, noise, active),
		FidelityTI:  fidelitySeries(techModels[TrappedIon], temp, noise, active),
		Temperature: temp,
	}
}
