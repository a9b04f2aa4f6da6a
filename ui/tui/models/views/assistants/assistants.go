// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package assistants

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/core/catalog"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

// Categories in display order; the empty category shows every assistant.
var Categories = []string{"", "learning", "writing", "creative", "research"}

var (
	activeCategoryStyle = lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("#8655B1"))
	categoryStyle       = lipgloss.NewStyle().Faint(true)
	cursorStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#8655B1"))
	subtitleStyle       = lipgloss.NewStyle().Faint(true)
)

type Model struct {
	category int
	cursor   int
	items    []catalog.Assistant
	size     util.Size
}

func New() *Model {
	return &Model{items: catalog.FilterAssistants(Categories[0])}
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

	switch {
	case key.Matches(kmsg, DefaultKeyMap.Up):
		m.cursor = max(0, m.cursor-1)
	case key.Matches(kmsg, DefaultKeyMap.Down):
		m.cursor = min(len(m.items)-1, m.cursor+1)
	case key.Matches(kmsg, DefaultKeyMap.Category):
		step := 1
		if kmsg.String() == "left" || kmsg.String() == "h" {
			step = len(Categories) - 1
		}
		m.SetCategory((m.category + step) % len(Categories))
	case key.Matches(kmsg, DefaultKeyMap.Open):
		if a, ok := m.Selected(); ok {
			return util.StatusCmd(i18n.T("assistants.coming_soon", a.Title))
		}
	}
	return nil
}

func (m Model) View() string {
	tabs := strings.Join(slicest.MapI(Categories, func(i int, c string) string {
		label := categoryLabel(c)
		if i == m.category {
			return activeCategoryStyle.Render(label)
		}
		return categoryStyle.Render(label)
	}), "  ")

	rows := slicest.MapI(m.items, func(i int, a catalog.Assistant) string {
		title := a.Title
		if i == m.cursor {
			title = cursorStyle.Render(title)
		}
		return title + " " + subtitleStyle.Render(a.Subtitle)
	})

	return lipgloss.NewStyle().MaxWidth(m.size.Width).MaxHeight(m.size.Height).Render(
		lipgloss.JoinVertical(lipgloss.Left, append([]string{tabs, ""}, rows...)...),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, DefaultKeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// SetCategory filters the list and moves the cursor to the top.
func (m *Model) SetCategory(i int) {
	if i < 0 || i >= len(Categories) {
		return
	}
	m.category = i
	m.items = catalog.FilterAssistants(Categories[i])
	m.cursor = 0
}

func (m *Model) Selected() (catalog.Assistant, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return catalog.Assistant{}, false
	}
	return m.items[m.cursor], true
}

func categoryLabel(category string) string {
	if category == "" {
		return i18n.T("assistants.category.all")
	}
	return i18n.T("assistants.category." + category)
}
