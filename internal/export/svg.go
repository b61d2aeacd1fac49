// Package export renders simulation results to standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"qubitsim/internal/engine"
)

const (
	scColor     = "#00ffff"
	tiColor     = "#ff00ff"
	markerColor = "#ffffff"
	background  = "#0a0a0a"
)

// FidelitySVG renders both fidelity series over the day axis with a dashed
// vertical line at the activation day. The y axis is the full [0, 1]
// fidelity range.
func FidelitySVG(res *engine.Result, activationDay, width, height int) string {
	if res.Ticks() < 2 {
		return ""
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	horizon := res.Days[res.Ticks()-1]
	writePath(&sb, res.Days, res.FidelitySC, horizon, width, height, scColor)
	writePath(&sb, res.Days, res.FidelityTI, horizon, width, height, tiColor)

	if float64(activationDay) <= horizon {
		x := float64(activationDay) / horizon * float64(width)
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="0" x2="%.1f" y2="%d" stroke="%s" stroke-width="1" stroke-dasharray="6,4"/>
<text x="%.1f" y="14" fill="%s" font-family="monospace" font-size="12">QEC day %d</text>
`, x, x, height, markerColor, x+6, markerColor, activationDay))
	}

	sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="12">SC</text>
<text x="34" y="%d" fill="%s" font-family="monospace" font-size="12">TI</text>
</svg>`, height-8, scColor, height-8, tiColor))

	return sb.String()
}

func writePath(sb *strings.Builder, days, fid []float64, horizon float64, width, height int, color string) {
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, color))

	for i := range days {
		x := days[i] / horizon * float64(width)
		y := float64(height) - fid[i]*float64(height)

		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString("\"/>\n")
}
