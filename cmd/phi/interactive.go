package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/albertsgarde/phi/numeral"
	"github.com/albertsgarde/phi/system"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	okStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#98FB98"))

	resultStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

const (
	inputRule = iota
	inputTape
	numInputs
)

type interactiveModel struct {
	inputs   [numInputs]textinput.Model
	focusIdx int

	sys      *system.System
	tape     *numeral.Tape
	std      *numeral.Tape
	carries  int
	ruleErr  error
	tapeErr  error
	standErr error
}

func newInteractiveModel(ruleStr, tapeStr string) *interactiveModel {
	m := &interactiveModel{}

	rule := textinput.New()
	rule.Placeholder = "1 1"
	rule.SetValue(ruleStr)
	rule.Focus()
	m.inputs[inputRule] = rule

	tape := textinput.New()
	tape.Placeholder = "1 0 1, 1"
	tape.SetValue(tapeStr)
	m.inputs[inputTape] = tape

	m.recompute()
	return m
}

func runInteractive(ruleStr, tapeStr string) error {
	_, err := tea.NewProgram(newInteractiveModel(ruleStr, tapeStr), tea.WithAltScreen()).Run()
	return err
}

func (m *interactiveModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "shift+tab", "enter":
			m.inputs[m.focusIdx].Blur()
			m.focusIdx = (m.focusIdx + 1) % numInputs
			m.inputs[m.focusIdx].Focus()
			return m, nil
		}
	}

	var cmds []tea.Cmd
	for i := range m.inputs {
		var cmd tea.Cmd
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	m.recompute()
	return m, tea.Batch(cmds...)
}

// recompute rebuilds the derived state from the current inputs. All
// operations here are cheap enough to run per keystroke.
func (m *interactiveModel) recompute() {
	m.sys, m.tape, m.std = nil, nil, nil
	m.ruleErr, m.tapeErr, m.standErr = nil, nil, nil
	m.carries = 0

	digits, err := parseDigits(m.inputs[inputRule].Value())
	if err != nil {
		m.ruleErr = err
		return
	}
	m.sys, m.ruleErr = system.New(digits...)
	if m.ruleErr != nil {
		return
	}

	tapeStr := m.inputs[inputTape].Value()
	if strings.TrimSpace(tapeStr) == "" {
		return
	}
	m.tape, m.tapeErr = parseTape(tapeStr)
	if m.tapeErr != nil {
		return
	}
	if !m.sys.IsValid(m.tape) {
		return
	}

	std, tr, err := m.sys.Standardize(m.tape)
	if err != nil {
		m.standErr = err
		return
	}
	m.std = std
	m.carries = tr.Carries
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("phi: positional numeral systems"))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render("Rule: "))
	b.WriteString(m.inputs[inputRule].View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render("Tape: "))
	b.WriteString(m.inputs[inputTape].View())
	b.WriteString("\n\n")

	switch {
	case m.ruleErr != nil:
		b.WriteString(errorStyle.Render(fmt.Sprintf("rule: %v", m.ruleErr)))

	case m.sys != nil:
		b.WriteString(labelStyle.Render("Base: "))
		b.WriteString(okStyle.Render(fmt.Sprintf("%.12f", m.sys.Base())))
		b.WriteString("\n")

		switch {
		case m.tapeErr != nil:
			b.WriteString(errorStyle.Render(fmt.Sprintf("tape: %v", m.tapeErr)))
		case m.standErr != nil:
			b.WriteString(errorStyle.Render(fmt.Sprintf("standardize: %v", m.standErr)))
		case m.tape != nil:
			fmt.Fprintf(&b, "%s%v\n", labelStyle.Render("Valid: "), m.sys.IsValid(m.tape))
			fmt.Fprintf(&b, "%s%.12f\n", labelStyle.Render("Value: "), m.sys.Value(m.tape))
			if m.std != nil {
				fmt.Fprintf(&b, "%s%v\n", labelStyle.Render("Standard: "), m.sys.IsStandard(m.tape))
				b.WriteString(labelStyle.Render("Standard form: "))
				b.WriteString(resultStyle.Render(m.std.String()))
				fmt.Fprintf(&b, "  %s", helpStyle.Render(fmt.Sprintf("(%d carries)", m.carries)))
			}
		}
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("tab: switch field • esc: quit"))
	b.WriteString("\n")
	return b.String()
}
