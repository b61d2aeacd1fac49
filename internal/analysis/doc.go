// Package analysis computes summary statistics over simulation results.
//
// The package covers the reporting side of the fidelity model:
//
//   - [Summarize]: pre/post-activation mean fidelity and percentage gain
//   - [Correlation]: Pearson correlation between two series
//   - [PowerSpectrum]: frequency-domain view of a generated series
//
// # Gain Interpretation
//
// A positive gain means activation raised mean fidelity:
//
//	sum := analysis.Summarize(res, cfg.ActivationDay)
//	fmt.Printf("SC: %+.1f%%\n", sum.SC.GainPercent)
package analysis
