package cli

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/lipgloss"

	"foilplan/internal/config"
	"foilplan/internal/counting"
)

// formField describes one entry of the interactive experiment form.
type formField struct {
	label       string
	placeholder string
	optional    bool
	assign      func(*config.Experiment, string) error
}

func floatField(set func(*config.Experiment, float64)) func(*config.Experiment, string) error {
	return func(exp *config.Experiment, raw string) error {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("not a number: %q", raw)
		}
		set(exp, v)
		return nil
	}
}

func formFields() []formField {
	return []formField{
		{label: "Isotope", placeholder: "Zr97",
			assign: func(e *config.Experiment, s string) error {
				e.Isotope = strings.TrimSpace(s)
				return nil
			}},
		{label: "Foil radius (cm)", assign: floatField(func(e *config.Experiment, v float64) { e.FoilRadius = v })},
		{label: "Foil height (cm)", assign: floatField(func(e *config.Experiment, v float64) { e.FoilHeight = v })},
		{label: "Foil density (g/cm³)", assign: floatField(func(e *config.Experiment, v float64) { e.FoilDensity = v })},
		{label: "Source strength (particles/s)", assign: floatField(func(e *config.Experiment, v float64) { e.SourceStrength = v })},
		{label: "Irradiation time (s)", assign: floatField(func(e *config.Experiment, v float64) { e.IrradiationTime = v })},
		{label: "Reaction rate (per source particle per cm³)", assign: floatField(func(e *config.Experiment, v float64) { e.ReactionRate = v })},
		{label: "Decay delay (s)", assign: floatField(func(e *config.Experiment, v float64) { e.DecayDelay = v })},
		{label: "Detector radius (cm)", assign: floatField(func(e *config.Experiment, v float64) { e.DetectorRadius = v })},
		{label: "Minimum distance (cm)", placeholder: "1", optional: true,
			assign: floatField(func(e *config.Experiment, v float64) { e.MinDistance = v })},
		{label: "Background rate (counts/s)", assign: floatField(func(e *config.Experiment, v float64) { e.Background = v })},
		{label: "Target sigma (relative)", placeholder: "0.025",
			assign: floatField(func(e *config.Experiment, v float64) { e.Sigma = v })},
	}
}

var (
	formLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFD7"))
	formErrStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF005F"))
	formHintStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C6C6C")).Italic(true)
)

// formModel is the bubbletea model for the experiment entry form.
type formModel struct {
	fields  []formField
	inputs  []textinput.Model
	focus   int
	errMsg  string
	done    bool
	aborted bool
}

func newFormModel() formModel {
	fields := formFields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Placeholder = f.placeholder
		ti.Prompt = "> "
		inputs[i] = ti
	}
	inputs[0].Focus()
	return formModel{fields: fields, inputs: inputs}
}

func (m formModel) Init() tea.Cmd {
	return nil
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit

		case "enter", "tab", "down":
			if msg.String() == "enter" && m.focus == len(m.inputs)-1 {
				m.done = true
				return m, tea.Quit
			}
			m.errMsg = ""
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil

		case "shift+tab", "up":
			m.errMsg = ""
			m.inputs[m.focus].Blur()
			m.focus = (m.focus + len(m.inputs) - 1) % len(m.inputs)
			m.inputs[m.focus].Focus()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m formModel) View() tea.View {
	var b strings.Builder
	b.WriteString(formLabelStyle.Bold(true).Render("Experiment record") + "\n\n")
	for i, f := range m.fields {
		marker := "  "
		if i == m.focus {
			marker = "» "
		}
		b.WriteString(marker + formLabelStyle.Render(f.label) + "\n")
		b.WriteString("  " + m.inputs[i].View() + "\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + formErrStyle.Render(m.errMsg) + "\n")
	}
	b.WriteString("\n" + formHintStyle.Render("enter: next field (last field submits) · esc: cancel") + "\n")
	return tea.NewView(b.String())
}

// runExperimentForm collects an experiment record interactively.
func runExperimentForm() (config.Experiment, error) {
	p := tea.NewProgram(newFormModel())
	finalModel, err := p.Run()
	if err != nil {
		return config.Experiment{}, fmt.Errorf("experiment form: %w", err)
	}

	m, ok := finalModel.(formModel)
	if !ok || m.aborted || !m.done {
		return config.Experiment{}, fmt.Errorf("experiment entry cancelled")
	}

	exp := config.Experiment{MinDistance: 1, Response: counting.DefaultResponse}
	for i, f := range m.fields {
		raw := m.inputs[i].Value()
		if strings.TrimSpace(raw) == "" {
			if f.optional {
				continue
			}
			return config.Experiment{}, fmt.Errorf("%s is required", f.label)
		}
		if err := f.assign(&exp, raw); err != nil {
			return config.Experiment{}, fmt.Errorf("%s: %w", f.label, err)
		}
	}
	if err := exp.Validate(); err != nil {
		return config.Experiment{}, err
	}
	return exp, nil
}
