// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package tabbar

import "github.com/charmbracelet/lipgloss"

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1)
	activeTabStyle = tabStyle.
			Bold(true).
			Foreground(lipgloss.Color("#000000")).
			Background(lipgloss.Color("#8655B1"))
	inactiveTabStyle = tabStyle.
				Foreground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
)

func WithItem(id string, name string) Item {
	return Item{
		Id:   id,
		Name: name,
	}
}

type Item struct {
	Id   string
	Name string
}

func (i Item) View(isActive bool) string {
	if isActive {
		return activeTabStyle.Render(i.Name)
	}
	return inactiveTabStyle.Render(i.Name)
}

// Selected is emitted whenever the active tab changes.
type Selected struct {
	Index int
	Id    string
}
