// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/ui/tui/util"
)

type fakeModel struct {
	name    string
	size    util.Size
	focused bool
}

func (p *fakeModel) Init() tea.Cmd { return nil }
func (p *fakeModel) Update(msg tea.Msg) tea.Cmd {
	p.size.Update(msg)
	return nil
}
func (p *fakeModel) View() string                  { return p.name }
func (p *fakeModel) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *fakeModel) Blur()                         { p.focused = false }

func newStack(opts ...NewOpt) (*Model, []*fakeModel) {
	fakes := []*fakeModel{{name: "top"}, {name: "small"}, {name: "large"}}
	opts = append([]NewOpt{
		WithOrientation(Vertical),
		WithItem(util.ModelPointer(fakes[0]), StaticSize(2)),
		WithItem(util.ModelPointer(fakes[1]), VariableSize(1)),
		WithItem(util.ModelPointer(fakes[2]), VariableSize(3)),
	}, opts...)
	return New(opts...), fakes
}

func TestStack_SplitsHeight(t *testing.T) {
	s, fakes := newStack()
	s.Update(tea.WindowSizeMsg{Width: 40, Height: 10})

	want := []int{2, 2, 6}
	for i, p := range fakes {
		if p.size.Width != 40 || p.size.Height != want[i] {
			t.Fatalf("item %d: expected 40x%d, got %dx%d", i, want[i], p.size.Width, p.size.Height)
		}
	}
	if got := lipgloss.Height(s.View()); got != 10 {
		t.Fatalf("expected view height 10, got %d", got)
	}
}

func TestStack_StaticLargerThanSpace(t *testing.T) {
	s, fakes := newStack()
	s.Update(tea.WindowSizeMsg{Width: 40, Height: 1})

	if fakes[0].size.Height != 1 || fakes[1].size.Height != 0 || fakes[2].size.Height != 0 {
		t.Fatalf("expected static item to take the only row, got %d %d %d",
			fakes[0].size.Height, fakes[1].size.Height, fakes[2].size.Height)
	}
}

func TestStack_Focus(t *testing.T) {
	s, fakes := newStack(WithFocus(FocusIndex(2)))

	s.Focus()
	if fakes[0].focused || fakes[1].focused || !fakes[2].focused {
		t.Fatalf("expected only the last item focused")
	}

	s.SetFocus(FocusAll())
	for i, p := range fakes {
		if !p.focused {
			t.Fatalf("expected item %d focused", i)
		}
	}

	// out of range focus is clamped
	s.SetFocus(FocusIndex(9))
	if !fakes[2].focused {
		t.Fatalf("expected clamped focus on the last item")
	}
}
