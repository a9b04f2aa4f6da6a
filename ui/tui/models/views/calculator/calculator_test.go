// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/ui/tui/util"
)

func keys(m *Model, s ...string) {
	for _, k := range s {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		m.Update(msg)
	}
}

func TestCalculator_Keyboard(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want string
	}{
		{"sequential", []string{"2", "+", "3", "*", "4", "="}, "20"},
		{"enter commits", []string{"9", "/", "3", "enter"}, "3"},
		{"reuse operand", []string{"5", "+", "="}, "10"},
		{"sign toggle", []string{"7", "n"}, "-7"},
		{"percent", []string{"5", "0", "%"}, "0.5"},
		{"division by zero", []string{"5", "/", "0", "="}, "Infinity"},
		{"clear", []string{"1", "2", "c"}, "0"},
		{"esc clears", []string{"1", "+", "2", "esc"}, "0"},
		{"unknown key ignored", []string{"4", "q"}, "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(10)
			keys(m, tt.keys...)
			if got := m.Display(); got != tt.want {
				t.Fatalf("display: got %q want %q", got, tt.want)
			}
		})
	}
}

func TestCalculator_History(t *testing.T) {
	m := New(2)
	keys(m, "1", "+", "1", "=")
	keys(m, "2", "*", "3", "+", "1", "=")
	keys(m, "9", "-", "4", "=")

	want := []string{"6 + 1 = 7", "9 − 4 = 5"}
	got := m.History()
	if len(got) != len(want) {
		t.Fatalf("history: got %v want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("history[%d]: got %q want %q", i, got[i], want[i])
		}
	}

	none := New(0)
	keys(none, "1", "+", "1", "=")
	if len(none.History()) != 0 {
		t.Fatalf("expected history to be disabled")
	}
}

func TestCalculator_Copy(t *testing.T) {
	i18n.Init("en")
	var copied string
	original := writeClipboard
	writeClipboard = func(s string) error { copied = s; return nil }
	defer func() { writeClipboard = original }()

	m := New(0)
	keys(m, "4", "2")
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})
	if cmd == nil {
		t.Fatalf("expected copy command")
	}
	status := cmd().(util.StatusMsg)
	if copied != "42" || status.Error {
		t.Fatalf("expected 42 copied, got %q (%+v)", copied, status)
	}

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	status = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}})().(util.StatusMsg)
	if !status.Error || !strings.Contains(status.Text, "no clipboard") {
		t.Fatalf("expected error status, got %+v", status)
	}
}

func TestCalculator_View(t *testing.T) {
	i18n.Init("en")
	m := New(5)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	keys(m, "1", "2", "+")
	view := m.View()
	if !strings.Contains(view, "12 +") {
		t.Fatalf("expected pending expression in view, got %q", view)
	}
	if !strings.Contains(view, "÷") || !strings.Contains(view, "±") {
		t.Fatalf("expected keypad in view")
	}
}

func TestCalculator_ViewFitsWindow(t *testing.T) {
	i18n.Init("en")
	for _, size := range []int{0, 5} {
		m := New(size)
		m.Update(tea.WindowSizeMsg{Width: 12, Height: 4})
		view := m.View()
		if w := lipgloss.Width(view); w > 12 {
			t.Fatalf("history %d: view width %d exceeds 12", size, w)
		}
		if h := lipgloss.Height(view); h > 4 {
			t.Fatalf("history %d: view height %d exceeds 4", size, h)
		}
	}
}
