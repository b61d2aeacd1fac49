package engine

import (
	"fmt"
	"sync"
)

// Ensemble runs one configuration across consecutive seeds. Every run gets
// its own engine and therefore its own random stream, so the runs execute
// concurrently without sharing generator state.
type Ensemble struct {
	cfg       Config
	numRuns   int
	seedStart int64
}

func NewEnsemble(cfg Config, numRuns int, seedStart int64) (*Ensemble, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if numRuns <= 0 {
		return nil, fmt.Errorf("%w: ensemble size must be positive, got %d", ErrInvalidConfig, numRuns)
	}
	return &Ensemble{cfg: cfg, numRuns: numRuns, seedStart: seedStart}, nil
}

func (e *Ensemble) Run() ([]*Result, error) {
	results := make([]*Result, e.numRuns)
	errs := make([]error, e.numRuns)

	var wg sync.WaitGroup
	for i := 0; i < e.numRuns; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			cfg := e.cfg
			cfg.Seed = e.seedStart + int64(idx)

			eng, err := New(cfg)
			if err != nil {
				errs[idx] = err
				return
			}
			results[idx] = eng.Run()
		}(i)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}

// MeanResult averages the ensemble elementwise, washing out individual
// noise realizations while keeping the deterministic structure (diurnal
// drift, activation step). All results must share one configuration.
func MeanResult(results []*Result) *Result {
	if len(results) == 0 {
		return &Result{}
	}

	n := results[0].Ticks()
	mean := &Result{
		Days:        append([]float64(nil), results[0].Days...),
		FidelitySC:  make([]float64, n),
		FidelityTI:  make([]float64, n),
		Temperature: make([]float64, n),
	}

	for _, res := range results {
		for t := 0; t < n; t++ {
			mean.FidelitySC[t] += res.FidelitySC[t]
			mean.FidelityTI[t] += res.FidelityTI[t]
			mean.Temperature[t] += res.Temperature[t]
		}
	}

	scale := 1 / float64(len(results))
	for t := 0; t < n; t++ {
		mean.FidelitySC[t] *= scale
		mean.FidelityTI[t] *= scale
		mean.Temperature[t] *= scale
	}

	return mean
}
