// Package engine implements the qubit fidelity simulation core.
//
// The engine generates four aligned hourly time series over a configured
// horizon: a fractional-day axis, fidelity for superconducting (SC) qubits,
// fidelity for trapped-ion (TI) qubits, and ambient temperature. Fidelity
// combines a per-technology thermal sensitivity, a shared correlated (1/f)
// noise process, and a step uplift at the error-correction activation day:
//
//	eng, err := engine.New(engine.Config{DurationDays: 120, ActivationDay: 75, Seed: 42})
//	if err != nil { ... }
//	res := eng.Run()
//
// # Reproducibility
//
// Each engine owns its random source, seeded once at construction. Two
// engines built from the same Config produce bitwise-identical first runs;
// repeated runs on one engine continue the stream and are fresh draws.
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. For concurrent simulations, build
// one engine per goroutine.
package engine
