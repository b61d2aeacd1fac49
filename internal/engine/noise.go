package engine

import (
	"math"
	"math/rand"

	"github.com/mjibson/go-dsp/fft"
)

// pinkNoise generates n samples of 1/f-spectrum noise by spectral shaping:
// white gaussian noise is transformed to the frequency domain, each
// coefficient divided by sqrt(f), and the result transformed back.
//
// The DC bin's frequency is clamped to 1.0 before scaling so the zero
// frequency never receives unbounded gain. Mirror bins get the same scale
// as their positive-frequency counterparts, preserving Hermitian symmetry
// so the inverse transform stays real. Output amplitude is intentionally
// not normalized.
func pinkNoise(rng *rand.Rand, n int) []float64 {
	white := make([]float64, n)
	for i := range white {
		white[i] = rng.NormFloat64()
	}

	spectrum := fft.FFTReal(white)
	for k := 0; k <= n/2; k++ {
		f := float64(k) / float64(n)
		if k == 0 {
			f = 1.0 // numerical stability
		}
		scale := complex(1/math.Sqrt(f), 0)
		spectrum[k] *= scale
		if k > 0 && k < n-k {
			spectrum[n-k] *= scale
		}
	}

	shaped := fft.IFFT(spectrum)
	out := make([]float64, n)
	for i, c := range shaped {
		out[i] = real(c)
	}
	return out
}
