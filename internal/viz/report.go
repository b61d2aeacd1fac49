package viz

import (
	"fmt"
	"strings"

	"qubitsim/internal/analysis"
)

// RenderSummary renders the pre/post-activation comparison as a styled
// panel, the terminal counterpart of a mission report.
func RenderSummary(sum analysis.Summary) string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Simulation Summary"))
	b.WriteString("\n")
	b.WriteString(techLine("SC qubits", sum.SC))
	b.WriteString("\n")
	b.WriteString(techLine("TI qubits", sum.TI))
	b.WriteString("\n\n")
	b.WriteString(noteStyle.Render(interpretation(sum)))

	return panelStyle.Render(b.String())
}

func techLine(name string, s analysis.TechSummary) string {
	gain := gainStyle
	if s.GainPercent < 0 {
		gain = lossStyle
	}

	return labelStyle.Render(name) +
		valueStyle.Render(fmt.Sprintf("pre %.3f  post %.3f  ", s.PreMean, s.PostMean)) +
		gain.Render(fmt.Sprintf("%+.1f%%", s.GainPercent)) +
		valueStyle.Render(fmt.Sprintf("  temp corr %+.2f", s.TempCorr))
}

func interpretation(sum analysis.Summary) string {
	switch {
	case sum.SC.PostMean == 0 && sum.TI.PostMean == 0:
		return "Activation never occurred within the horizon; both series show uncorrected drift only."
	case sum.SC.PreMean == 0 && sum.TI.PreMean == 0:
		return "Error correction was active from day zero; no uncorrected baseline exists for comparison."
	default:
		return "SC systems benefit strongly from QEC but remain temperature-sensitive, " +
			"while TI systems exhibit superior intrinsic stability."
	}
}
