// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/ui/tui/util"
)

const logo string = "📚 StudyGenie"

var (
	logoStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	versionStyle = lipgloss.NewStyle().Faint(true)
	borderStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false).
			BorderBottom(true)
)

type Model struct {
	size    util.Size
	version string
}

func New(version string) *Model {
	return &Model{version: version}
}

// Height is the number of rows the header occupies, border included.
func Height() int {
	return lipgloss.Height(logo) + 1
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	title := logoStyle.Render(logo) + " " + versionStyle.Render(m.version)
	return borderStyle.Render(lipgloss.PlaceHorizontal(m.size.Width, lipgloss.Center, title))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
