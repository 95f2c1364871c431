// Interactive dashboard for exploring simulation parameters.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"colonysim/internal/chart"
	"colonysim/internal/model"
	"colonysim/internal/sim"
)

const helpText = "↑/↓ select parameter · ←/→ adjust · enter type a value · " +
	"w write run to configured outputs · r reset · ? toggle help · q quit. " +
	"Every adjustment re-runs the simulation; the trajectory turns red on the " +
	"day the population first drops below 5% of its initial size."

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	badStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// field describes one adjustable parameter slider.
type field struct {
	name string
	unit string
	step float64
	min  float64
	max  float64
	get  func(*model.Parameters) float64
	set  func(*model.Parameters, float64)
}

func fields() []field {
	return []field{
		{"Temperature", "°C", 1, -10, 60,
			func(p *model.Parameters) float64 { return p.TemperatureC },
			func(p *model.Parameters, v float64) { p.TemperatureC = v }},
		{"Humidity", "%", 5, 0, 100,
			func(p *model.Parameters) float64 { return p.HumidityPct },
			func(p *model.Parameters, v float64) { p.HumidityPct = v }},
		{"Initial population", "ind", 50, 1, 1e6,
			func(p *model.Parameters) float64 { return p.InitialPopulation },
			func(p *model.Parameters, v float64) { p.InitialPopulation = v }},
		{"Immigration", "ind/day", 1, 0, 1e4,
			func(p *model.Parameters) float64 { return p.Immigration },
			func(p *model.Parameters, v float64) { p.Immigration = v }},
		{"Potency", "", 0.05, 0, 5,
			func(p *model.Parameters) float64 { return p.Potency },
			func(p *model.Parameters, v float64) { p.Potency = v }},
		{"Feeding delay", "days", 1, 0, 60,
			func(p *model.Parameters) float64 { return float64(p.FeedingDelayDays) },
			func(p *model.Parameters, v float64) { p.FeedingDelayDays = int(v) }},
		{"Horizon", "days", 5, 1, 3650,
			func(p *model.Parameters) float64 { return float64(p.HorizonDays) },
			func(p *model.Parameters, v float64) { p.HorizonDays = int(v) }},
	}
}

// Model is the bubbletea model of the dashboard.
type Model struct {
	engine   *sim.Engine
	runner   *sim.Runner
	scenario string
	defaults model.Parameters

	params  model.Parameters
	fields  []field
	cursor  int
	input   textinput.Model
	editing bool
	help    bool
	width   int
	height  int

	records []model.DailyRecord
	elim    model.EliminationResult
	valErr  error
	status  string
}

// New creates the dashboard model. runner may be nil; then the w key is
// disabled and runs stay on screen only.
func New(engine *sim.Engine, runner *sim.Runner, params model.Parameters, scenario string) Model {
	ti := textinput.New()
	ti.CharLimit = 12
	ti.Width = 14
	m := Model{
		engine:   engine,
		runner:   runner,
		scenario: scenario,
		defaults: params,
		params:   params,
		fields:   fields(),
		input:    ti,
		width:    100,
		height:   30,
	}
	m.simulate()
	return m
}

// simulate re-runs the engine against the current parameters.
func (m *Model) simulate() {
	records, elim, err := m.engine.Run(m.params)
	m.valErr = err
	if err == nil {
		m.records = records
		m.elim = elim
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.editing {
			switch msg.Type {
			case tea.KeyEnter:
				if v, err := strconv.ParseFloat(strings.TrimSpace(m.input.Value()), 64); err == nil {
					m.fields[m.cursor].set(&m.params, v)
					m.simulate()
				}
				m.editing = false
			case tea.KeyEsc:
				m.editing = false
			default:
				var cmd tea.Cmd
				m.input, cmd = m.input.Update(msg)
				return m, cmd
			}
			return m, nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = !m.help
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.fields)-1 {
				m.cursor++
			}
		case "left", "h":
			m.adjust(-1)
		case "right", "l":
			m.adjust(1)
		case "enter":
			f := m.fields[m.cursor]
			m.input.SetValue(strconv.FormatFloat(f.get(&m.params), 'f', -1, 64))
			m.input.Focus()
			m.editing = true
		case "r":
			m.params = m.defaults
			m.status = "parameters reset"
			m.simulate()
		case "w":
			if m.runner != nil {
				if summary, err := m.runner.RunWith(m.params, m.scenario); err != nil {
					m.status = err.Error()
				} else {
					m.status = fmt.Sprintf("run %s written", summary.RunID)
				}
			}
		}
	}
	return m, nil
}

// adjust nudges the selected parameter by one slider step.
func (m *Model) adjust(dir float64) {
	f := m.fields[m.cursor]
	v := f.get(&m.params) + dir*f.step
	if v < f.min {
		v = f.min
	}
	if v > f.max {
		v = f.max
	}
	f.set(&m.params, v)
	m.status = ""
	m.simulate()
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("colonysim — insecticide treatment explorer"))
	b.WriteString("\n\n")

	for i, f := range m.fields {
		line := fmt.Sprintf("%-20s %10.2f %s", f.name, f.get(&m.params), f.unit)
		if i == m.cursor {
			if m.editing {
				line = fmt.Sprintf("%-20s %s", f.name, m.input.View())
			}
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.valErr != nil {
		b.WriteString(errStyle.Render(m.valErr.Error()))
		b.WriteString("\n")
	} else {
		chartHeight := m.height - len(m.fields) - 10
		if chartHeight < 6 {
			chartHeight = 6
		}
		b.WriteString(chart.Render(m.records, m.params.InitialPopulation, m.width-2, chartHeight))
		b.WriteString("\n\n")
		b.WriteString(m.verdict())
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.help {
		b.WriteString(dimStyle.Render(wordwrap.String(helpText, m.width-2)))
		b.WriteString("\n")
	} else {
		b.WriteString(dimStyle.Render("press ? for help"))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) verdict() string {
	final := m.records[len(m.records)-1].Population
	if m.elim.Reached {
		return okStyle.Render(fmt.Sprintf(
			"functional elimination on day %d · final population %.1f", m.elim.Day, final))
	}
	return badStyle.Render(fmt.Sprintf(
		"colony still active after %d days · final population %.1f", m.params.HorizonDays, final))
}

// Run starts the dashboard program and blocks until it exits.
func Run(engine *sim.Engine, runner *sim.Runner, params model.Parameters, scenario string) error {
	p := tea.NewProgram(New(engine, runner, params, scenario), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
