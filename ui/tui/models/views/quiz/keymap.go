// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package quiz

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Choose key.Binding
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Reset  key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Choose, km.Submit, km.Reset}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Choose, km.Up, km.Down}, {km.Submit, km.Reset}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	Choose: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "choose"),
	),
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "previous option"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "next option"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "submit/next"),
	),
	Reset: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "restart"),
	),
}
