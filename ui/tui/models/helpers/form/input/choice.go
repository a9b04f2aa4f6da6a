// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package forminput

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/ui/tui/models/helpers/form"
	"github.com/studygenie/studygenie/util/slicest"
)

var selectedOptionStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("205")).
	Underline(true)

// Choice picks one of a fixed list of options with left/right.
type Choice struct {
	Label   string
	Options []string
	KeyMap  ChoiceKeyMap

	initial  int
	selected int
	focused  bool
}

type ChoiceKeyMap struct {
	Prev key.Binding
	Next key.Binding
	Done key.Binding
}

func (k ChoiceKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.Prev, k.Next, k.Done} }
func (k ChoiceKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.Prev, k.Next, k.Done}} }

func NewChoice(label string, initial string, options ...string) form.FormInput {
	c := &Choice{
		Label:   label,
		Options: options,
		KeyMap: ChoiceKeyMap{
			Prev: key.NewBinding(
				key.WithKeys("left", "h"),
				key.WithHelp("←", "previous option"),
			),
			Next: key.NewBinding(
				key.WithKeys("right", "l"),
				key.WithHelp("→", "next option"),
			),
			Done: key.NewBinding(
				key.WithKeys("enter"),
				key.WithHelp("enter", "next"),
			),
		},
	}
	c.initial = max(0, slices.Index(options, initial))
	c.selected = c.initial
	return c
}

func (c *Choice) Focus() (tea.Cmd, help.KeyMap) {
	c.focused = true
	return nil, c.KeyMap
}

func (c *Choice) Blur() {
	c.focused = false
}

func (c *Choice) Update(msg tea.Msg) (tea.Cmd, form.Action) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return nil, form.ActionNone
	}
	switch {
	case key.Matches(kmsg, c.KeyMap.Prev):
		c.selected = (c.selected - 1 + len(c.Options)) % len(c.Options)
	case key.Matches(kmsg, c.KeyMap.Next):
		c.selected = (c.selected + 1) % len(c.Options)
	case key.Matches(kmsg, c.KeyMap.Done):
		return nil, form.ActionNext
	}
	return nil, form.ActionNone
}

func (c *Choice) View(width int) string {
	label := labelStyle.Width(width).Render(c.Label)
	if c.focused {
		label = focusedLabelStyle.Render(c.Label)
	}
	options := strings.Join(slicest.MapI(c.Options, func(i int, option string) string {
		if i == c.selected {
			return selectedOptionStyle.Render(option)
		}
		return option
	}), " / ")
	return lipgloss.JoinVertical(lipgloss.Left, label, lipgloss.NewStyle().MaxWidth(width).Render(options))
}

func (c *Choice) Get() any {
	if len(c.Options) == 0 {
		return nil
	}
	return c.Options[c.selected]
}

func (c *Choice) Set(value any) {
	if value, ok := value.(string); ok {
		if i := slices.Index(c.Options, value); i >= 0 {
			c.selected = i
		}
	}
}

func (c *Choice) Reset() {
	c.selected = c.initial
}

func (c *Choice) Init() tea.Cmd { return nil }

var _ form.FormInput = (*Choice)(nil)
