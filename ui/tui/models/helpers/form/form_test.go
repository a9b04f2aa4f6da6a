// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package form_test

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/models/helpers/form"
	forminput "github.com/studygenie/studygenie/ui/tui/models/helpers/form/input"
)

type cardInput struct {
	Front      string `mapstructure:"front"`
	Back       string `mapstructure:"back"`
	Difficulty string `mapstructure:"difficulty"`
}

func typeText(f *form.Form[cardInput], s string) {
	for _, r := range s {
		f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func newCardForm(submitted *cardInput, cancelled *bool) *form.Form[cardInput] {
	f := form.New(
		form.WithTitle[cardInput]("New card"),
		form.WithInput[cardInput]("front", forminput.NewText("Front", "")),
		form.WithInput[cardInput]("back", forminput.NewText("Back", "")),
		form.WithInput[cardInput]("difficulty", forminput.NewChoice("Difficulty", "medium", "easy", "medium", "hard")),
		form.WithInput[cardInput]("submit", forminput.NewButton("Add", false)),
		form.WithOnSubmit(func(result cardInput, err error) tea.Cmd {
			if err == nil {
				*submitted = result
			}
			return nil
		}),
		form.WithOnCancel[cardInput](func() tea.Cmd {
			*cancelled = true
			return nil
		}),
		form.WithResetAfterSubmit[cardInput](),
	)
	f.Init()
	f.Focus()
	return f
}

func TestForm_SubmitDecodesValues(t *testing.T) {
	var got cardInput
	var cancelled bool
	f := newCardForm(&got, &cancelled)

	typeText(f, "H2O")
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.ActiveID() != "back" {
		t.Fatalf("expected enter to advance to back, got %q", f.ActiveID())
	}
	typeText(f, "Water")
	f.Update(tea.KeyMsg{Type: tea.KeyTab})
	f.Update(tea.KeyMsg{Type: tea.KeyRight})
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if f.ActiveID() != "submit" {
		t.Fatalf("expected submit button focused, got %q", f.ActiveID())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyEnter})

	want := cardInput{Front: "H2O", Back: "Water", Difficulty: "hard"}
	if got != want {
		t.Fatalf("unexpected result: got %+v want %+v", got, want)
	}

	after, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if after.Front != "" || after.Difficulty != "medium" || f.ActiveID() != "front" {
		t.Fatalf("expected form reset after submit, got %+v at %q", after, f.ActiveID())
	}
}

func TestForm_CancelAndWrap(t *testing.T) {
	var got cardInput
	var cancelled bool
	f := newCardForm(&got, &cancelled)

	if !f.Capturing() {
		t.Fatalf("expected focused form to capture keys")
	}
	f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if f.ActiveID() != "submit" {
		t.Fatalf("expected shift+tab to wrap to last input, got %q", f.ActiveID())
	}
	f.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if !cancelled {
		t.Fatalf("expected esc to cancel")
	}
}

func TestForm_Set(t *testing.T) {
	var got cardInput
	var cancelled bool
	f := newCardForm(&got, &cancelled)

	if err := f.Set(cardInput{Front: "a", Back: "b", Difficulty: "easy"}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	values, err := f.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if values != (cardInput{Front: "a", Back: "b", Difficulty: "easy"}) {
		t.Fatalf("unexpected values after Set: %+v", values)
	}
}
