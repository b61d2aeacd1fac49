package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates simulation parameters outside their valid range.
var ErrInvalidConfig = errors.New("engine: invalid configuration")

// HoursPerDay is the fixed simulation resolution: one tick per hour.
const HoursPerDay = 24

// Config holds the simulation parameters. It is immutable once handed to
// New; validation failures surface before any simulation runs.
type Config struct {
	// DurationDays is the total simulation horizon in days.
	DurationDays int
	// ActivationDay is the day index at which error correction switches on.
	// Must lie in [0, DurationDays]; the upper boundary is inclusive and
	// yields a run with no uplift applied.
	ActivationDay int
	// Seed initializes the engine's random source.
	Seed int64
}

func (c Config) Validate() error {
	if c.DurationDays <= 0 {
		return fmt.Errorf("%w: duration_days must be positive, got %d", ErrInvalidConfig, c.DurationDays)
	}
	if c.ActivationDay < 0 {
		return fmt.Errorf("%w: activation_day must be non-negative, got %d", ErrInvalidConfig, c.ActivationDay)
	}
	if c.ActivationDay > c.DurationDays {
		return fmt.Errorf("%w: activation_day %d exceeds horizon of %d days", ErrInvalidConfig, c.ActivationDay, c.DurationDays)
	}
	return nil
}

// Ticks returns the number of hourly samples over the horizon.
func (c Config) Ticks() int {
	return c.DurationDays * HoursPerDay
}
