// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cards

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type StudyKeyMap struct {
	Flip   key.Binding
	Prev   key.Binding
	Next   key.Binding
	Reset  key.Binding
	Add    key.Binding
	Delete key.Binding
	List   key.Binding
}

func (km StudyKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Flip, km.Prev, km.Next, km.Add, km.List}
}

func (km StudyKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Flip, km.Prev, km.Next, km.Reset}, {km.Add, km.Delete, km.List}}
}

// *StudyKeyMap implements help.KeyMap
var _ help.KeyMap = (*StudyKeyMap)(nil)

var DefaultStudyKeyMap = StudyKeyMap{
	Flip: key.NewBinding(
		key.WithKeys(" ", "f"),
		key.WithHelp("space", "flip"),
	),
	Prev: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "previous"),
	),
	Next: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "next"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add card"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	List: key.NewBinding(
		key.WithKeys("l"),
		key.WithHelp("l", "all cards"),
	),
}

type ListKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Study  key.Binding
	Delete key.Binding
	Back   key.Binding
}

func (km ListKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Up, km.Down, km.Study, km.Delete, km.Back}
}

func (km ListKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Study, km.Delete, km.Back}}
}

// *ListKeyMap implements help.KeyMap
var _ help.KeyMap = (*ListKeyMap)(nil)

var DefaultListKeyMap = ListKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Study: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "study card"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("esc", "back"),
	),
}
