package engine

import (
	"math"
	"math/rand"
)

const (
	// MeanTemperature is the ambient baseline in degrees Celsius.
	MeanTemperature = 15.0
	// diurnalAmplitude is the peak deviation of the daily oscillation.
	diurnalAmplitude = 5.0
)

// temperatureSeries models ambient temperature over n hourly ticks as a
// diurnal sine around the baseline plus an independent unit-gaussian
// perturbation per tick. The perturbation is per-sample white noise, not
// the correlated process used by the fidelity transform.
func temperatureSeries(rng *rand.Rand, n int) []float64 {
	temp := make([]float64, n)
	for t := range temp {
		diurnal := diurnalAmplitude * math.Sin(2*math.Pi*float64(t)/HoursPerDay)
		temp[t] = MeanTemperature + diurnal + rng.NormFloat64()
	}
	return temp
}
