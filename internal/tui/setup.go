// ABOUTME: Interactive TUI wizard for configuring newsroom sources and data directory.
// ABOUTME: 3-step bubbletea model collecting the data directory and the news and press feed URLs.
package tui

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/harper/newsroom/internal/config"
)

// Step represents the current wizard step.
type Step int

const (
	StepDataDir Step = iota
	StepNewsURL
	StepPressURL
	StepDone
)

const inputSteps = int(StepDone)

// SetupResult holds the values entered in the wizard.
type SetupResult struct {
	DataDir  string
	NewsURL  string
	PressURL string
}

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step     Step
	inputs   [inputSteps]textinput.Model
	invalid  string
	quitting bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("33"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

var stepTitles = [inputSteps]string{
	"Data Directory",
	"News Feed URL",
	"Press Release Feed URL",
}

var stepDefaults = [inputSteps]string{
	config.DefaultDataDir,
	config.DefaultNewsURL,
	config.DefaultPressURL,
}

// NewSetupModel creates a new setup wizard model, pre-filling with existing config values.
func NewSetupModel(existing SetupResult) SetupModel {
	values := [inputSteps]string{existing.DataDir, existing.NewsURL, existing.PressURL}

	var m SetupModel
	for i := range m.inputs {
		input := textinput.New()
		input.Placeholder = stepDefaults[i]
		input.Width = 60
		if values[i] != "" {
			input.SetValue(values[i])
		}
		m.inputs[i] = input
	}
	m.inputs[StepDataDir].Focus()
	return m
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			return m, tea.Quit
		}

		if m.step < StepDone {
			return m.updateInput(msg)
		}
	default:
		// Forward other messages (e.g. cursor blink) to the active input
		if m.step < StepDone {
			var cmd tea.Cmd
			m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		return m.handleEnter()
	}

	var cmd tea.Cmd
	m.inputs[m.step], cmd = m.inputs[m.step].Update(msg)
	return m, cmd
}

func (m SetupModel) handleEnter() (tea.Model, tea.Cmd) {
	idx := m.step
	val := strings.TrimSpace(m.inputs[idx].Value())
	if val == "" {
		val = stepDefaults[idx]
	}

	if idx == StepNewsURL || idx == StepPressURL {
		if !validFeedURL(val) {
			m.invalid = val
			return m, nil
		}
	}
	m.invalid = ""
	m.inputs[idx].SetValue(val)
	m.inputs[idx].Blur()

	m.step++
	if m.step == StepDone {
		return m, tea.Quit
	}
	m.inputs[m.step].Focus()
	return m, textinput.Blink
}

func validFeedURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   NEWSROOM"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Configure where collections are stored and which feeds are fetched.\n\n")

	if m.step == StepDone {
		result := m.Result()
		b.WriteString(successStyle.Render("Setup complete!"))
		b.WriteString("\n\n")
		b.WriteString(fmt.Sprintf("  Data directory:  %s\n", result.DataDir))
		b.WriteString(fmt.Sprintf("  News feed:       %s\n", result.NewsURL))
		b.WriteString(fmt.Sprintf("  Press feed:      %s\n", result.PressURL))
		b.WriteString("\n")
		return b.String()
	}

	for i := 0; i < int(m.step); i++ {
		b.WriteString(fmt.Sprintf("  %s: %s\n", stepTitles[i], m.inputs[i].Value()))
	}
	if m.step > 0 {
		b.WriteString("\n")
	}

	b.WriteString(stepStyle.Render(fmt.Sprintf("Step %d of %d: %s", int(m.step)+1, inputSteps, stepTitles[m.step])))
	b.WriteString("\n")
	b.WriteString(promptStyle.Render(fmt.Sprintf("(press Enter for default: %s)", stepDefaults[m.step])))
	b.WriteString("\n")
	b.WriteString(m.inputs[m.step].View())
	b.WriteString("\n")
	if m.invalid != "" {
		b.WriteString(errorStyle.Render(fmt.Sprintf("%q is not an http(s) URL", m.invalid)))
		b.WriteString("\n")
	}

	return b.String()
}

// Result returns the entered values.
func (m SetupModel) Result() SetupResult {
	return SetupResult{
		DataDir:  m.inputs[StepDataDir].Value(),
		NewsURL:  m.inputs[StepNewsURL].Value(),
		PressURL: m.inputs[StepPressURL].Value(),
	}
}

// ShouldSave returns true if the wizard completed and the user did not cancel.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
