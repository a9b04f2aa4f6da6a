// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tabbar renders the row of screens and tracks the active one.
package tabbar

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

type Model struct {
	Items  []Item
	KeyMap KeyMap
	active int
	size   util.Size
}

func New(items ...Item) *Model {
	return &Model{
		Items:  items,
		KeyMap: NewKeyMap(len(items)),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	msg_key, ok := msg.(tea.KeyMsg)
	if !ok || len(m.Items) == 0 {
		return nil
	}

	switch {
	case key.Matches(msg_key, m.KeyMap.Next):
		return m.Select((m.active + 1) % len(m.Items))
	case key.Matches(msg_key, m.KeyMap.Prev):
		return m.Select((m.active - 1 + len(m.Items)) % len(m.Items))
	}
	for i, binding := range m.KeyMap.Jump {
		if key.Matches(msg_key, binding) {
			return m.Select(i)
		}
	}
	return nil
}

func (m Model) View() string {
	tabs := lipgloss.JoinHorizontal(
		lipgloss.Top,
		slicest.MapI(m.Items, func(i int, item Item) string {
			return item.View(i == m.active)
		})...,
	)
	return lipgloss.NewStyle().MaxWidth(m.size.Width).Render(tabs)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, m.KeyMap
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

// Active returns the index of the highlighted tab.
func (m *Model) Active() int {
	return m.active
}

// Select highlights tab i and announces it. Selecting the active tab again
// emits nothing.
func (m *Model) Select(i int) tea.Cmd {
	if i < 0 || i >= len(m.Items) || i == m.active {
		return nil
	}
	m.active = i
	selected := Selected{Index: i, Id: m.Items[i].Id}
	return func() tea.Msg { return selected }
}
