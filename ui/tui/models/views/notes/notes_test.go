// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package notes

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/core/catalog"
	"github.com/studygenie/studygenie/core/notes"
	"github.com/studygenie/studygenie/i18n"
)

func newModel(markdown bool) *Model {
	i18n.Init("en")
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	book := notes.NewBook(catalog.SampleNotes(now), notes.WithClock(func() time.Time { return now }))
	m := New(book, markdown)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	return m
}

func runes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestNotes_Search(t *testing.T) {
	m := newModel(false)

	runes(m, "/")
	if !m.Capturing() {
		t.Fatalf("expected search to capture keys")
	}
	runes(m, "machine")
	if len(m.visible) != 1 || m.visible[0].Title != "Research Ideas" {
		t.Fatalf("expected content match, got %+v", m.visible)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Capturing() || len(m.visible) != 1 {
		t.Fatalf("expected enter to keep the filter and leave search")
	}

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if len(m.visible) != 2 {
		t.Fatalf("expected esc to clear the filter, got %d notes", len(m.visible))
	}
}

func TestNotes_CreateEditSave(t *testing.T) {
	m := newModel(false)

	runes(m, "n")
	if !m.Capturing() || m.book.Len() != 3 {
		t.Fatalf("expected new note in edit mode")
	}
	if m.title.Value() != notes.DefaultTitle {
		t.Fatalf("expected default title, got %q", m.title.Value())
	}

	// title has focus first
	m.title.SetValue("")
	runes(m, "Physics")
	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	runes(m, "Newton")
	m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})

	if m.Capturing() {
		t.Fatalf("expected save to leave edit mode")
	}
	note, ok := m.Selected()
	if !ok || note.Title != "Physics" || note.Content != "Newton" {
		t.Fatalf("unexpected saved note %+v", note)
	}
	if !strings.Contains(m.View(), "Newton") {
		t.Fatalf("expected preview of saved note")
	}
}

func TestNotes_EditCancel(t *testing.T) {
	m := newModel(false)

	runes(m, "e")
	runes(m, "X")
	m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	note, _ := m.Selected()
	if note.Title != "Study Plan" {
		t.Fatalf("expected discarded edit, got %q", note.Title)
	}
}

func TestNotes_Delete(t *testing.T) {
	m := newModel(false)

	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	runes(m, "d")
	if m.book.Len() != 1 || m.cursor != 0 {
		t.Fatalf("expected one note left with cursor clamped, got %d at %d", m.book.Len(), m.cursor)
	}
	runes(m, "d")
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}); cmd != nil {
		t.Fatalf("expected delete without notes to be a no-op")
	}
	if !strings.Contains(m.View(), "No notes") {
		t.Fatalf("expected empty notice, got %q", m.View())
	}
}

func TestNotes_MarkdownPreview(t *testing.T) {
	m := newModel(true)
	if !strings.Contains(m.View(), "calculus") {
		t.Fatalf("expected rendered note content, got %q", m.View())
	}
}
