// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package tabbar

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type KeyMap struct {
	Next key.Binding
	Prev key.Binding
	Jump []key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Next, km.Prev}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Next, km.Prev}, km.Jump}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewKeyMap binds alt+1 … alt+n to the first n tabs.
func NewKeyMap(n int) KeyMap {
	km := KeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous tab"),
		),
	}
	for i := 1; i <= min(n, 9); i++ {
		km.Jump = append(km.Jump, key.NewBinding(
			key.WithKeys(fmt.Sprintf("alt+%d", i)),
			key.WithHelp(fmt.Sprintf("alt+%d", i), fmt.Sprintf("tab %d", i)),
		))
	}
	return km
}

// Matches reports whether msg is one of the tab bar's bindings.
func (km KeyMap) Matches(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.Next, km.Prev) || key.Matches(msg, km.Jump...)
}
