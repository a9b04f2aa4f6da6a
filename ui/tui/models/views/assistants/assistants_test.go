// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package assistants

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/util"
)

func TestAssistants_NavigateAndOpen(t *testing.T) {
	i18n.Init("en")
	m := New()

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	a, ok := m.Selected()
	if !ok || a.Title != "Math Solver" {
		t.Fatalf("expected Math Solver selected, got %+v", a)
	}

	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a status command")
	}
	status, ok := cmd().(util.StatusMsg)
	if !ok || !strings.Contains(status.Text, "Math Solver") {
		t.Fatalf("unexpected status %+v", status)
	}
}

func TestAssistants_CategoryFilter(t *testing.T) {
	i18n.Init("en")
	m := New()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})

	// all -> learning
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if len(m.items) != 4 || m.cursor != 0 {
		t.Fatalf("expected four learning assistants with cursor reset, got %d at %d", len(m.items), m.cursor)
	}

	// learning -> all -> research
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	a, _ := m.Selected()
	if len(m.items) != 1 || a.Title != "Research Helper" {
		t.Fatalf("expected research category, got %+v", m.items)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.cursor != 0 {
		t.Fatalf("expected cursor to stay at top")
	}
}
