package analysis

import (
	"math"
	"testing"

	"qubitsim/internal/engine"
)

func TestPowerSpectrumPeak(t *testing.T) {
	const n = 256
	const period = 32.0

	data := make([]float64, n)
	for i := range data {
		data[i] = math.Sin(2 * math.Pi * float64(i) / period)
	}

	ps := PowerSpectrum(data)
	peak := 0
	for k := 1; k < len(ps); k++ {
		if ps[k] > ps[peak] {
			peak = k
		}
	}

	if peak != n/int(period) {
		t.Errorf("expected peak at bin %d, got %d", n/int(period), peak)
	}

	if got := DominantPeriod(data); got != period {
		t.Errorf("expected dominant period %f, got %f", period, got)
	}
}

func TestTemperatureDiurnalPeriod(t *testing.T) {
	eng, err := engine.New(engine.Config{DurationDays: 60, ActivationDay: 30, Seed: 4})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	res := eng.Run()

	// The diurnal oscillation should dominate the temperature spectrum at
	// a 24-tick period despite per-tick gaussian noise.
	period := DominantPeriod(res.Temperature)
	if math.Abs(period-24) > 1e-9 {
		t.Errorf("expected 24-tick dominant period, got %f", period)
	}
}
