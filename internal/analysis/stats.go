package analysis

import (
	"math"

	"qubitsim/internal/engine"
)

// TechSummary compares one technology's fidelity before and after the
// activation day.
type TechSummary struct {
	PreMean     float64
	PostMean    float64
	GainPercent float64
	TempCorr    float64
}

// Summary is the per-run statistical report consumed by the reporter and
// the run command's metrics output.
type Summary struct {
	ActivationDay int
	SC            TechSummary
	TI            TechSummary
}

// Summarize splits both fidelity series at the activation day and computes
// per-technology means, relative gain, and temperature correlation. An
// empty window on either side yields a zero gain rather than a division by
// an undefined mean.
func Summarize(res *engine.Result, activationDay int) Summary {
	return Summary{
		ActivationDay: activationDay,
		SC:            techSummary(res.Days, res.FidelitySC, res.Temperature, activationDay),
		TI:            techSummary(res.Days, res.FidelityTI, res.Temperature, activationDay),
	}
}

func techSummary(days, fid, temp []float64, activationDay int) TechSummary {
	split := len(days)
	for i, d := range days {
		if d >= float64(activationDay) {
			split = i
			break
		}
	}

	s := TechSummary{TempCorr: Correlation(temp, fid)}
	if split > 0 {
		s.PreMean = Mean(fid[:split])
	}
	if split < len(fid) {
		s.PostMean = Mean(fid[split:])
	}
	if split > 0 && split < len(fid) && s.PreMean != 0 {
		s.GainPercent = (s.PostMean - s.PreMean) / s.PreMean * 100
	}
	return s
}

// Mean returns the arithmetic mean, or 0 for an empty slice.
func Mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// Correlation computes the Pearson correlation coefficient of two equal
// length series. Degenerate inputs (constant or empty series) return 0.
func Correlation(x, y []float64) float64 {
	if len(x) != len(y) || len(x) == 0 {
		return 0
	}

	mx, my := Mean(x), Mean(y)
	var cov, vx, vy float64
	for i := range x {
		dx, dy := x[i]-mx, y[i]-my
		cov += dx * dy
		vx += dx * dx
		vy += dy * dy
	}

	if vx == 0 || vy == 0 {
		return 0
	}
	return cov / math.Sqrt(vx*vy)
}
