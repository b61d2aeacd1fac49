package analysis

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// PowerSpectrum returns the magnitude of the non-negative frequency bins
// of data. Bin k corresponds to a cycle period of len(data)/k ticks.
func PowerSpectrum(data []float64) []float64 {
	spectrum := fft.FFTReal(data)
	ps := make([]float64, len(data)/2)
	for k := range ps {
		ps[k] = cmplx.Abs(spectrum[k])
	}
	return ps
}

// DominantPeriod returns the cycle length in ticks of the strongest
// non-DC spectral component, or 0 when the series is too short.
func DominantPeriod(data []float64) float64 {
	ps := PowerSpectrum(data)
	if len(ps) < 2 {
		return 0
	}

	best := 1
	for k := 2; k < len(ps); k++ {
		if ps[k] > ps[best] {
			best = k
		}
	}
	return float64(len(data)) / float64(best)
}
