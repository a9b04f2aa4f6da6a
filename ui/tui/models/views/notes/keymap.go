// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package notes

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type BrowseKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Search key.Binding
	New    key.Binding
	Edit   key.Binding
	Delete key.Binding
	Clear  key.Binding
}

func (km BrowseKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Search, km.New, km.Edit, km.Delete}
}

func (km BrowseKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down}, {km.Search, km.Clear}, {km.New, km.Edit, km.Delete}}
}

// *BrowseKeyMap implements help.KeyMap
var _ help.KeyMap = (*BrowseKeyMap)(nil)

var DefaultBrowseKeyMap = BrowseKeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("↑/k", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("↓/j", "down"),
	),
	Search: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	New: key.NewBinding(
		key.WithKeys("n"),
		key.WithHelp("n", "new note"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear search"),
	),
}

type SearchKeyMap struct {
	Done   key.Binding
	Cancel key.Binding
}

func (km SearchKeyMap) ShortHelp() []key.Binding  { return []key.Binding{km.Done, km.Cancel} }
func (km SearchKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Done, km.Cancel}} }

var DefaultSearchKeyMap = SearchKeyMap{
	Done: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "keep filter"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear"),
	),
}

type EditKeyMap struct {
	Switch key.Binding
	Save   key.Binding
	Cancel key.Binding
}

func (km EditKeyMap) ShortHelp() []key.Binding  { return []key.Binding{km.Switch, km.Save, km.Cancel} }
func (km EditKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{km.Switch, km.Save, km.Cancel}} }

var DefaultEditKeyMap = EditKeyMap{
	Switch: key.NewBinding(
		key.WithKeys("tab", "shift+tab"),
		key.WithHelp("tab", "title/content"),
	),
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "discard"),
	),
}
