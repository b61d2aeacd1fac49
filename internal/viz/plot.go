package viz

import (
	"fmt"
	"sort"
	"strings"

	"github.com/guptarohit/asciigraph"

	"qubitsim/internal/engine"
)

const (
	chartWidth  = 90
	chartHeight = 12
	// Columns asciigraph spends on the y-axis labels before the plot area.
	axisMargin = 7
)

// FidelityChart renders both fidelity series over time with a marker at
// the QEC activation day.
func FidelityChart(res *engine.Result, activationDay int) string {
	graph := asciigraph.PlotMany(
		[][]float64{res.FidelitySC, res.FidelityTI},
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("qubit fidelity over time"),
		asciigraph.SeriesColors(asciigraph.Aqua, asciigraph.Fuchsia),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render("Quantum Fidelity Over Time"))
	b.WriteString("\n")
	b.WriteString(graph)
	b.WriteString("\n")
	b.WriteString(activationMarker(res, activationDay))
	b.WriteString("\n")
	b.WriteString(legend())
	return b.String()
}

// TemperatureChart renders the ambient temperature series.
func TemperatureChart(res *engine.Result) string {
	graph := asciigraph.Plot(res.Temperature,
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("ambient temperature (°C) over time"),
	)

	return headerStyle.Render("Thermal Drift") + "\n" + graph
}

// CorrelationChart shows the temperature sensitivity of each technology by
// re-ordering the run's samples by temperature: a downward trend means the
// technology loses fidelity as temperature rises.
func CorrelationChart(res *engine.Result) string {
	idx := make([]int, res.Ticks())
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool {
		return res.Temperature[idx[a]] < res.Temperature[idx[b]]
	})

	sc := make([]float64, len(idx))
	ti := make([]float64, len(idx))
	for i, j := range idx {
		sc[i] = res.FidelitySC[j]
		ti[i] = res.FidelityTI[j]
	}

	graph := asciigraph.PlotMany(
		[][]float64{sc, ti},
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.Caption("fidelity by ascending temperature"),
		asciigraph.SeriesColors(asciigraph.Aqua, asciigraph.Fuchsia),
	)

	return headerStyle.Render("Temperature-Fidelity Correlation") + "\n" + graph + "\n" + legend()
}

func activationMarker(res *engine.Result, activationDay int) string {
	if res.Ticks() == 0 || len(res.Days) == 0 {
		return ""
	}

	horizon := res.Days[len(res.Days)-1]
	if horizon <= 0 || float64(activationDay) > horizon {
		return noteStyle.Render(fmt.Sprintf("  QEC activation at day %d falls outside the plotted horizon", activationDay))
	}

	col := int(float64(activationDay) / horizon * float64(chartWidth-1))
	return strings.Repeat(" ", axisMargin+col) +
		markerStyle.Render("^") + " " +
		noteStyle.Render(fmt.Sprintf("QEC activation (day %d)", activationDay))
}

func legend() string {
	return scStyle.Render("── superconducting (SC)") + "   " + tiStyle.Render("── trapped-ion (TI)")
}
