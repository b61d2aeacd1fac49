package analysis

import (
	"math"
	"testing"

	"qubitsim/internal/engine"
)

func TestMean(t *testing.T) {
	if m := Mean([]float64{1, 2, 3, 4}); m != 2.5 {
		t.Errorf("expected 2.5, got %f", m)
	}
	if m := Mean(nil); m != 0 {
		t.Errorf("expected 0 for empty slice, got %f", m)
	}
}

func TestCorrelation(t *testing.T) {
	x := []float64{1, 2, 3, 4, 5}
	up := []float64{2, 4, 6, 8, 10}
	down := []float64{10, 8, 6, 4, 2}

	if c := Correlation(x, up); math.Abs(c-1) > 1e-9 {
		t.Errorf("expected correlation 1, got %f", c)
	}
	if c := Correlation(x, down); math.Abs(c+1) > 1e-9 {
		t.Errorf("expected correlation -1, got %f", c)
	}
	if c := Correlation(x, []float64{3, 3, 3, 3, 3}); c != 0 {
		t.Errorf("expected 0 for constant series, got %f", c)
	}
	if c := Correlation(x, []float64{1, 2}); c != 0 {
		t.Errorf("expected 0 for mismatched lengths, got %f", c)
	}
}

func TestSummarizeGainDirection(t *testing.T) {
	eng, err := engine.New(engine.Config{DurationDays: 120, ActivationDay: 75, Seed: 42})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	sum := Summarize(eng.Run(), 75)

	if sum.SC.GainPercent <= 0 {
		t.Errorf("expected positive sc gain, got %f", sum.SC.GainPercent)
	}
	if sum.TI.GainPercent <= 0 {
		t.Errorf("expected positive ti gain, got %f", sum.TI.GainPercent)
	}
	// The SC uplift dwarfs the TI uplift relative to baseline.
	if sum.SC.GainPercent <= sum.TI.GainPercent {
		t.Errorf("expected sc gain %f to exceed ti gain %f", sum.SC.GainPercent, sum.TI.GainPercent)
	}
}

func TestSummarizeEmptyWindows(t *testing.T) {
	eng, err := engine.New(engine.Config{DurationDays: 10, ActivationDay: 0, Seed: 1})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	// Activation at day 0: the pre window is empty, gain must not divide
	// by an undefined mean.
	sum := Summarize(eng.Run(), 0)
	if sum.SC.GainPercent != 0 {
		t.Errorf("expected zero gain with empty pre window, got %f", sum.SC.GainPercent)
	}
	if sum.SC.PreMean != 0 {
		t.Errorf("expected zero pre mean, got %f", sum.SC.PreMean)
	}
	if sum.SC.PostMean <= 0 {
		t.Errorf("expected positive post mean, got %f", sum.SC.PostMean)
	}

	// Activation at the horizon: post window empty.
	eng2, err := engine.New(engine.Config{DurationDays: 10, ActivationDay: 10, Seed: 1})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}
	sum2 := Summarize(eng2.Run(), 10)
	if sum2.TI.GainPercent != 0 {
		t.Errorf("expected zero gain with empty post window, got %f", sum2.TI.GainPercent)
	}
	if sum2.TI.PostMean != 0 {
		t.Errorf("expected zero post mean, got %f", sum2.TI.PostMean)
	}
}

func TestSummarizeThermalCorrelation(t *testing.T) {
	eng, err := engine.New(engine.Config{DurationDays: 60, ActivationDay: 60, Seed: 9})
	if err != nil {
		t.Fatalf("new failed: %v", err)
	}

	sum := Summarize(eng.Run(), 60)

	// Both transforms subtract a temperature term, so fidelity should
	// anticorrelate with temperature, more strongly for SC.
	if sum.SC.TempCorr >= 0 {
		t.Errorf("expected negative sc temperature correlation, got %f", sum.SC.TempCorr)
	}
	if sum.SC.TempCorr >= sum.TI.TempCorr {
		t.Errorf("expected sc correlation %f below ti correlation %f", sum.SC.TempCorr, sum.TI.TempCorr)
	}
}
