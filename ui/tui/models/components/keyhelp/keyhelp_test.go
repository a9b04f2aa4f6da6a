// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/util"
)

type km []key.Binding

func (k km) ShortHelp() []key.Binding  { return k }
func (k km) FullHelp() [][]key.Binding { return [][]key.Binding{k} }

func TestKeyHelp_ShowsAnnouncedBindings(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 1})
	quit := key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	m.Update(util.AnnounceKeyMapMsg{KeyMap: util.MergeKeyMaps(km{quit}, km{quit})})

	view := m.View()
	if !strings.Contains(view, "quit") {
		t.Fatalf("expected binding in view, got %q", view)
	}
	if strings.Count(view, "quit") != 1 {
		t.Fatalf("expected duplicate bindings to be shown once, got %q", view)
	}

	m.ToggleExpanded()
	if !strings.Contains(m.View(), "quit") {
		t.Fatalf("expected binding in full help")
	}
}
