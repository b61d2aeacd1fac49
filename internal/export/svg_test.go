package export

import (
	"strings"
	"testing"

	"qubitsim/internal/engine"
)

func TestFidelitySVG(t *testing.T) {
	eng, err := engine.New(engine.Config{DurationDays: 10, ActivationDay: 5, Seed: 42})
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}

	svg := FidelitySVG(eng.Run(), 5, 800, 400)

	if !strings.HasPrefix(svg, `<?xml version="1.0"`) {
		t.Error("expected xml declaration")
	}
	if got := strings.Count(svg, "<path"); got != 2 {
		t.Errorf("expected 2 series paths, got %d", got)
	}
	if !strings.Contains(svg, "stroke-dasharray") {
		t.Error("expected dashed activation line")
	}
	if !strings.Contains(svg, "QEC day 5") {
		t.Error("expected activation label")
	}
	if !strings.HasSuffix(svg, "</svg>") {
		t.Error("expected closing svg tag")
	}
}

func TestFidelitySVGActivationOutsideHorizon(t *testing.T) {
	eng, err := engine.New(engine.Config{DurationDays: 10, ActivationDay: 10, Seed: 1})
	if err != nil {
		t.Fatalf("new engine failed: %v", err)
	}

	// The last sample sits just under day 10, so the marker is skipped.
	svg := FidelitySVG(eng.Run(), 10, 800, 400)
	if strings.Contains(svg, "stroke-dasharray") {
		t.Error("expected no activation line beyond the horizon")
	}
}

func TestFidelitySVGTooShort(t *testing.T) {
	if svg := FidelitySVG(&engine.Result{}, 0, 800, 400); svg != "" {
		t.Errorf("expected empty output for empty result, got %d bytes", len(svg))
	}
}
