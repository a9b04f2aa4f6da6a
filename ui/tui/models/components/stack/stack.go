// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

const (
	Vertical   Orientation = true
	Horizontal Orientation = false
)

type Orientation bool

// Model lays child models out in a row or column and splits the available
// space between them according to their SizeConfig.
type Model struct {
	Orientation Orientation
	Align       lipgloss.Position

	items         []Item
	size          util.Size
	focussedIndex Focus
}

type Item struct {
	Model      *util.Model
	SizeConfig SizeConfig
	size       int
	oldSize    int
}

func (s Model) Init() tea.Cmd {
	return tea.Batch(slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Init()
	})...)
}

func (s *Model) Update(msg tea.Msg) tea.Cmd {
	if s.size.Update(msg) {
		s.calculateItemSizes()
		return tea.Batch(s.updateResizedItems(true)...)
	}

	cmds := slicest.Map(s.items, func(item Item) tea.Cmd {
		return (*item.Model).Update(msg)
	})

	// content may have changed the wanted size of an item
	s.calculateItemSizes()
	cmds = append(cmds, s.updateResizedItems(false)...)

	return tea.Batch(cmds...)
}

func (s Model) View() string {
	var joiner func(pos lipgloss.Position, strs ...string) string
	var styler func(size int) lipgloss.Style
	switch s.Orientation {
	case Vertical:
		joiner = lipgloss.JoinVertical
		styler = func(size int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(s.size.Width).
				Height(size).
				MaxWidth(s.size.Width).
				MaxHeight(size)
		}
	case Horizontal:
		joiner = lipgloss.JoinHorizontal
		styler = func(size int) lipgloss.Style {
			return lipgloss.NewStyle().
				Width(size).
				Height(s.size.Height).
				MaxWidth(size).
				MaxHeight(s.size.Height)
		}
	}

	return joiner(
		s.Align,
		slicest.Map(s.items, func(item Item) string {
			if item.size == 0 {
				return ""
			}
			return styler(item.size).Render((*item.Model).View())
		})...,
	)
}

func (s *Model) Focus() (tea.Cmd, help.KeyMap) {
	if s.focussedIndex == FocusAll() {
		cmds := make([]tea.Cmd, len(s.items))
		keyMaps := make([]help.KeyMap, len(s.items))
		for i, item := range s.items {
			cmds[i], keyMaps[i] = (*item.Model).Focus()
		}
		return tea.Batch(cmds...), util.MergeKeyMaps(keyMaps...)
	}
	return (*s.items[s.focussedIndex].Model).Focus()
}

func (s *Model) Blur() {
	if s.focussedIndex == FocusAll() {
		for _, item := range s.items {
			(*item.Model).Blur()
		}
		return
	}
	(*s.items[s.focussedIndex].Model).Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type Focus int

func FocusAll() Focus        { return -1 }
func FocusIndex(i int) Focus { return Focus(i) }

func (s *Model) SetFocus(focus Focus) (tea.Cmd, help.KeyMap) {
	s.Blur()
	s.focussedIndex = util.Clamp(FocusAll(), focus, Focus(len(s.items)-1))
	return s.Focus()
}
