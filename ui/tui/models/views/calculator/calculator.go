// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calculator is the pocket calculator screen. Keyboard input is fed
// through the evaluator's keypad legend so the screen and the `calc`
// command behave the same.
package calculator

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/calc"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/internal/logging"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

const keyWidth = 5

var (
	displayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#8655B1")).
			Align(lipgloss.Right).
			Width(4*(keyWidth+2) - 2).
			Bold(true)
	pendingStyle = lipgloss.NewStyle().Faint(true)
	keyStyle     = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			Width(keyWidth).
			Align(lipgloss.Center)
	pressedKeyStyle = keyStyle.
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("205")).
			Bold(true)
	historyTitleStyle = lipgloss.NewStyle().Bold(true).MarginLeft(2)
	historyStyle      = lipgloss.NewStyle().MarginLeft(2).Faint(true)
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type Model struct {
	evaluator   *calc.Evaluator
	history     []string
	historySize int
	lastKey     string
	size        util.Size
}

// New creates the screen. historySize limits the list of committed
// calculations shown next to the keypad; zero disables it.
func New(historySize int) *Model {
	m := &Model{historySize: max(0, historySize)}
	m.evaluator = calc.New(calc.WithObserver(m.record))
	return m
}

func (m *Model) record(c calc.Calculation, committed bool) {
	if !committed || m.historySize == 0 {
		return
	}
	m.history = append(m.history, c.String())
	if len(m.history) > m.historySize {
		m.history = m.history[len(m.history)-m.historySize:]
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if key.Matches(kmsg, DefaultKeyMap.Copy) {
		return m.copyDisplay()
	}

	label := kmsg.String()
	if key.Matches(kmsg, DefaultKeyMap.Clear) {
		label = calc.KeyClear
	}
	if m.evaluator.Press(label) {
		m.lastKey = legendLabel(label)
		logging.Debugf("calculator: %q -> %s", label, m.evaluator.Display())
	}
	return nil
}

func (m Model) View() string {
	state := m.evaluator.Snapshot()

	pending := " "
	if state.HasPending {
		pending = fmt.Sprintf("%s %s", calc.Format(state.PendingOperand), state.PendingOperator)
	}

	display := displayStyle.Render(lipgloss.JoinVertical(
		lipgloss.Right,
		pendingStyle.Render(pending),
		state.Display,
	))

	keypad := lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(calc.Keys(), func(row []string) string {
			return lipgloss.JoinHorizontal(
				lipgloss.Top,
				slicest.Map(row, func(label string) string {
					if label == m.lastKey {
						return pressedKeyStyle.Render(label)
					}
					return keyStyle.Render(label)
				})...,
			)
		})...,
	)

	clamp := lipgloss.NewStyle().MaxWidth(m.size.Width).MaxHeight(m.size.Height)
	calculator := lipgloss.JoinVertical(lipgloss.Left, display, keypad)
	if m.historySize == 0 {
		return clamp.Render(calculator)
	}

	history := []string{historyTitleStyle.Render(i18n.T("calculator.history"))}
	if len(m.history) == 0 {
		history = append(history, historyStyle.Render(i18n.T("calculator.history_empty")))
	}
	// newest first
	for i := len(m.history) - 1; i >= 0; i-- {
		history = append(history, historyStyle.Render(m.history[i]))
	}

	return clamp.Render(
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			calculator,
			lipgloss.JoinVertical(lipgloss.Left, history...),
		),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {
	m.lastKey = ""
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Display returns the text currently shown by the calculator.
func (m *Model) Display() string {
	return m.evaluator.Display()
}

// History returns the committed calculations, oldest first.
func (m *Model) History() []string {
	return append([]string(nil), m.history...)
}

func (m *Model) copyDisplay() tea.Cmd {
	display := m.evaluator.Display()
	return func() tea.Msg {
		if err := writeClipboard(display); err != nil {
			logging.Warnf("calculator: copy to clipboard failed: %v", err)
			return util.StatusMsg{Text: i18n.T("calculator.copy_failed", err.Error()), Error: true}
		}
		return util.StatusMsg{Text: i18n.T("calculator.copied", display)}
	}
}

// legendLabel maps keyboard aliases onto the keypad label they press.
func legendLabel(label string) string {
	switch label {
	case "enter":
		return calc.KeyEquals
	case "n":
		return calc.KeyToggleSign
	}
	if op, ok := calc.ParseOperator(label); ok {
		return op.String()
	}
	return label
}
