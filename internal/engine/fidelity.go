package engine

// Technology identifies a qubit hardware family.
type Technology string

const (
	// Superconducting qubits: high QEC gain, strong thermal sensitivity.
	Superconducting Technology = "sc"
	// TrappedIon qubits: intrinsically stable, modest QEC gain.
	TrappedIon Technology = "ti"
)

// techModel holds the fixed fidelity model constants for one technology.
// These mirror the calibration of the reference model and are deliberately
// not configurable.
type techModel struct {
	baseline   float64 // fidelity at mean temperature, no noise
	thermCoeff float64 // fidelity loss per degree above baseline temperature
	noiseScale float64 // share of the common noise process seen
	uplift     float64 // step gain when error correction activates
}

var techModels = map[Technology]techModel{
	Superconducting: {baseline: 0.70, thermCoeff: 0.012, noiseScale: 1.0, uplift: 0.22},
	TrappedIon:      {baseline: 0.85, thermCoeff: 0.004, noiseScale: 0.5, uplift: 0.07},
}

// noiseCoeff scales the raw pink noise process before it enters the
// fidelity transforms.
const noiseCoeff = 0.02

// fidelitySeries computes one technology's fidelity over the tick range.
// Both technologies receive the same realized temperature and noise slices,
// so their series are directly comparable within a run. Values saturate at
// [0, 1]; out-of-range intermediates are clamped, never rejected.
func fidelitySeries(m techModel, temp, noise []float64, active []bool) []float64 {
	fid := make([]float64, len(temp))
	for t := range fid {
		base := m.baseline - (temp[t]-MeanTemperature)*m.thermCoeff + noise[t]*m.noiseScale
		if active[t] {
			base += m.uplift
		}
		fid[t] = clamp01(base)
	}
	return fid
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
