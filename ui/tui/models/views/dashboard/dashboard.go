// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package dashboard

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/catalog"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

const barWidth = 24

var (
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	tileStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			MarginRight(1)
	trendStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981"))
	faintStyle = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	data catalog.Dashboard
	bar  progress.Model
	size util.Size
}

func New() *Model {
	return &Model{
		data: catalog.SampleDashboard(),
		bar: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(barWidth),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	goals := lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(m.data.Progress, func(p catalog.Progress) string {
			return fmt.Sprintf("%-12s %s", p.Label, m.bar.ViewAs(float64(p.Value)/100))
		})...,
	)

	stats := lipgloss.JoinHorizontal(
		lipgloss.Top,
		slicest.Map(m.data.Stats, func(s catalog.Stat) string {
			return tileStyle.Render(lipgloss.JoinVertical(
				lipgloss.Left,
				faintStyle.Render(s.Label),
				lipgloss.NewStyle().Bold(true).Render(s.Value)+" "+trendStyle.Render(s.Trend),
			))
		})...,
	)

	actions := lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.Map(m.data.Actions, func(a catalog.Action) string {
			return fmt.Sprintf("%s %s\n  %s",
				m.bar.ViewAs(float64(a.Progress)/100),
				a.Title,
				faintStyle.Render(a.Subtitle),
			)
		})...,
	)

	return lipgloss.NewStyle().MaxWidth(m.size.Width).MaxHeight(m.size.Height).Render(
		lipgloss.JoinVertical(
			lipgloss.Left,
			m.data.Greeting,
			sectionStyle.Render(i18n.T("dashboard.progress")),
			goals,
			sectionStyle.Render(i18n.T("dashboard.stats")),
			stats,
			sectionStyle.Render(i18n.T("dashboard.actions")),
			actions,
		),
	)
}

// no focus needed, the dashboard only displays data
func (m *Model) Focus() (tea.Cmd, help.KeyMap) { return nil, nil }
func (m *Model) Blur()                         {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
