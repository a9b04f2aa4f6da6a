// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/ui/tui/models/components/keyhelp"
	"github.com/studygenie/studygenie/ui/tui/util"
)

var (
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#047857", Dark: "#34D399"})
	errorStatusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
)

// Model shows the last status message above the key help of the focused
// view merged with the global bindings.
type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	status     util.StatusMsg
}

func New(baseKeyMap help.KeyMap) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject the global bindings
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case util.StatusMsg:
		m.status = msg
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

func (m Model) view() string {
	if m.status.Text == "" {
		return m.help.View()
	}
	style := statusStyle
	if m.status.Error {
		style = errorStatusStyle
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		style.MaxWidth(m.size.Width).Render(m.status.Text),
		m.help.View(),
	)
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		Render(lipgloss.Place(
			m.size.Width, max(0, m.size.Height-1),
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}

func (m *Model) Expanded() bool {
	return m.help.Expanded
}

// Status returns the message currently shown.
func (m *Model) Status() util.StatusMsg {
	return m.status
}
