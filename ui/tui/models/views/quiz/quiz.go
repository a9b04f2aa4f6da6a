// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package quiz is the timed quiz screen.
package quiz

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/quiz"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

const tickInterval = time.Second

var (
	promptStyle   = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	timerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F59E0B"))
	urgentStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	correctStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	wrongStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Strikethrough(true)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

// tickMsg carries the generation it was scheduled for. Blur and Focus start
// a new generation so ticks of a paused countdown are dropped.
type tickMsg struct {
	generation int
}

type Model struct {
	session    *quiz.Session
	generation int
	focused    bool
	size       util.Size
}

func New(session *quiz.Session) *Model {
	return &Model{session: session}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case tickMsg:
		if msg.generation != m.generation {
			return nil
		}
		m.session.Tick()
		return m.tick()
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, DefaultKeyMap.Choose):
		m.session.Select(int(msg.Runes[0] - '1'))
	case key.Matches(msg, DefaultKeyMap.Up):
		m.moveSelection(-1)
	case key.Matches(msg, DefaultKeyMap.Down):
		m.moveSelection(1)
	case key.Matches(msg, DefaultKeyMap.Submit):
		if m.session.Revealed() {
			m.session.Next()
			return m.restart()
		}
		m.session.Submit()
	case key.Matches(msg, DefaultKeyMap.Reset):
		m.session.Reset()
		return m.restart()
	}
	return nil
}

func (m *Model) moveSelection(delta int) {
	n := len(m.session.Question().Options)
	selected, ok := m.session.Selected()
	if !ok {
		selected = -delta
		if delta < 0 {
			selected = n
		}
	}
	m.session.Select((selected + delta + n) % n)
}

func (m Model) View() string {
	var content string
	if m.session.Completed() {
		content = m.resultView()
	} else {
		content = m.questionView()
	}
	return lipgloss.NewStyle().MaxWidth(m.size.Width).MaxHeight(m.size.Height).Render(content)
}

func (m Model) questionView() string {
	q := m.session.Question()
	selected, hasSelected := m.session.Selected()

	timer := timerStyle
	if m.session.TimeLeft() <= 10 {
		timer = urgentStyle
	}
	status := fmt.Sprintf("%s  %s  %s",
		i18n.T("quiz.progress", map[string]any{"Current": m.session.Index() + 1, "Total": m.session.Len()}),
		timer.Render(i18n.T("quiz.time_left", m.session.TimeLeft())),
		i18n.T("quiz.score", m.session.Score()),
	)

	options := slicest.MapI(q.Options, func(i int, option string) string {
		line := fmt.Sprintf("%d) %s", i+1, option)
		switch {
		case m.session.Revealed() && i == q.Correct:
			return correctStyle.Render("✓ " + line)
		case m.session.Revealed() && hasSelected && i == selected:
			return wrongStyle.Render("✗ " + line)
		case hasSelected && i == selected:
			return selectedStyle.Render("› " + line)
		default:
			return "  " + line
		}
	})

	lines := []string{faintStyle.Render(status), "", promptStyle.Render(q.Prompt)}
	lines = append(lines, options...)

	if m.session.Revealed() {
		verdict := wrongStyle.UnsetStrikethrough().Render(i18n.T("quiz.incorrect"))
		if hasSelected && selected == q.Correct {
			verdict = correctStyle.Render(i18n.T("quiz.correct"))
		} else if !hasSelected {
			verdict = urgentStyle.Render(i18n.T("quiz.timeout"))
		}
		lines = append(lines, "", verdict, faintStyle.Render(q.Explanation))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) resultView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		promptStyle.Render(i18n.T("quiz.completed")),
		i18n.T("quiz.final_score", map[string]any{"Score": m.session.Score(), "Total": m.session.Len()}),
		fmt.Sprintf("%.0f%%", m.session.Percent()),
		i18n.T("quiz.grade."+string(m.session.Grade())),
		"",
		faintStyle.Render(i18n.T("quiz.restart_hint")),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return m.restart(), DefaultKeyMap
}

// Blur pauses the countdown while the screen is hidden.
func (m *Model) Blur() {
	m.focused = false
	m.generation++
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// restart begins a new tick generation for the open question.
func (m *Model) restart() tea.Cmd {
	m.generation++
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	if !m.focused || !m.session.Running() {
		return nil
	}
	generation := m.generation
	return tea.Tick(tickInterval, func(time.Time) tea.Msg {
		return tickMsg{generation: generation}
	})
}
