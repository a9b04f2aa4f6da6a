// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package home

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/i18n"
)

func TestHome_ListsFeatures(t *testing.T) {
	i18n.Init("en")
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	view := m.View()
	for _, want := range []string{"Calculator", "Notes", "Quiz", "Cards"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected feature %q in welcome screen", want)
		}
	}
}
