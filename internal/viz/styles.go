package viz

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	panelStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 2)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	scStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true)  // cyan
	tiStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("201")).Bold(true) // magenta
	markerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)
	gainStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)
	lossStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)

	activeBadge = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true).Render("QEC ACTIVE")
	idleBadge   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render("qec off")
)
