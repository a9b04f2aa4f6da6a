// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keyhelp renders the bindings of the focused view.
package keyhelp

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/util"
)

type Model struct {
	KeyMap   help.KeyMap
	Expanded bool

	size util.Size
	help help.Model
}

func New() *Model {
	return &Model{
		help: help.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		m.help.Width = m.size.Width
		return nil
	}

	if msg, ok := msg.(util.AnnounceKeyMapMsg); ok {
		m.KeyMap = msg.KeyMap
	}
	return nil
}

func (m Model) View() string {
	if m.KeyMap == nil {
		return ""
	}
	if m.Expanded {
		return m.help.FullHelpView(dedupeGroups(m.KeyMap.FullHelp()))
	}
	return m.help.ShortHelpView(dedupe(m.KeyMap.ShortHelp()))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.Expanded = !m.Expanded
}

// merged key maps may announce the same binding twice
func dedupe(bindings []key.Binding) []key.Binding {
	seen := map[string]bool{}
	out := bindings[:0:0]
	for _, b := range bindings {
		k := b.Help().Key
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, b)
	}
	return out
}

func dedupeGroups(groups [][]key.Binding) [][]key.Binding {
	seen := map[string]bool{}
	var out [][]key.Binding
	for _, group := range groups {
		var kept []key.Binding
		for _, b := range group {
			k := b.Help().Key
			if seen[k] {
				continue
			}
			seen[k] = true
			kept = append(kept, b)
		}
		if len(kept) > 0 {
			out = append(out, kept)
		}
	}
	return out
}
