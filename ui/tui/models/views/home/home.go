// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package home

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/catalog"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#8655B1")).MarginBottom(1)
	featureStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			MarginRight(1)
)

// Model is the welcome screen.
type Model struct {
	features []catalog.Feature
	size     util.Size
}

func New() *Model {
	return &Model{features: catalog.Features()}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	features := lipgloss.JoinHorizontal(
		lipgloss.Top,
		slicest.Map(m.features, func(f catalog.Feature) string {
			return featureStyle.Render(fmt.Sprintf("%s %s", f.Icon, f.Label))
		})...,
	)
	return lipgloss.Place(
		m.size.Width, m.size.Height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(
			lipgloss.Center,
			titleStyle.Render(i18n.T("home.title")),
			i18n.T("home.subtitle"),
			"",
			features,
			"",
			lipgloss.NewStyle().Faint(true).Render(i18n.T("home.hint")),
		),
	)
}

// no focus needed, the welcome screen has no bindings of its own
func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                         {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
