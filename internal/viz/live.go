package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"qubitsim/internal/engine"
)

type TickMsg time.Time

// LiveModel replays a completed run hour by hour as an animated chart.
// The simulation itself is already finished; the model only reveals a
// growing prefix of the series per frame.
type LiveModel struct {
	res           *engine.Result
	activationDay int
	cursor        int
	step          int
	fps           int
	running       bool
}

func NewLiveModel(res *engine.Result, activationDay, fps int) LiveModel {
	step := res.Ticks() / 400
	if step < 1 {
		step = 1
	}
	return LiveModel{
		res:           res,
		activationDay: activationDay,
		cursor:        engine.HoursPerDay,
		step:          step,
		fps:           fps,
		running:       true,
	}
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.cursor = engine.HoursPerDay
			m.running = true
		}

	case TickMsg:
		if m.running && m.cursor < m.res.Ticks() {
			m.cursor += m.step
			if m.cursor > m.res.Ticks() {
				m.cursor = m.res.Ticks()
			}
		}
		return m, m.tick()
	}

	return m, nil
}

func (m LiveModel) View() string {
	graph := asciigraph.PlotMany(
		[][]float64{m.res.FidelitySC[:m.cursor], m.res.FidelityTI[:m.cursor]},
		asciigraph.Height(chartHeight),
		asciigraph.Width(chartWidth),
		asciigraph.SeriesColors(asciigraph.Aqua, asciigraph.Fuchsia),
	)

	last := m.cursor - 1
	day := m.res.Days[last]

	badge := idleBadge
	if day >= float64(m.activationDay) {
		badge = activeBadge
	}

	status := fmt.Sprintf("day %6.1f   temp %5.1f°C   ", day, m.res.Temperature[last]) +
		scStyle.Render(fmt.Sprintf("SC %.3f", m.res.FidelitySC[last])) + "   " +
		tiStyle.Render(fmt.Sprintf("TI %.3f", m.res.FidelityTI[last])) + "   " +
		badge
	if !m.running {
		status += "   " + noteStyle.Render("paused")
	} else if m.cursor == m.res.Ticks() {
		status += "   " + noteStyle.Render("complete")
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Fidelity Replay"))
	b.WriteString("\n")
	b.WriteString(graph)
	b.WriteString("\n\n")
	b.WriteString(status)
	b.WriteString("\n")
	b.WriteString(legend())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("space pause/resume · r restart · q quit"))
	return b.String()
}

// RunLive starts the interactive replay of a completed run.
func RunLive(res *engine.Result, activationDay, fps int) error {
	p := tea.NewProgram(NewLiveModel(res, activationDay, fps))
	_, err := p.Run()
	return err
}
