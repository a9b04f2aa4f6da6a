// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/util"
)

type fakeModel struct {
	name      string
	controll  *Controll
	size      util.Size
	focused   bool
	capturing bool
	msgs      int
}

func (p *fakeModel) Init() tea.Cmd { return nil }
func (p *fakeModel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case InitMsg:
		p.controll = &msg.RouterControll
	case tea.WindowSizeMsg:
		p.size.Update(msg)
	default:
		p.msgs++
	}
	return nil
}
func (p *fakeModel) View() string                  { return p.name }
func (p *fakeModel) Focus() (tea.Cmd, help.KeyMap) { p.focused = true; return nil, nil }
func (p *fakeModel) Blur()                         { p.focused = false }
func (p *fakeModel) Capturing() bool               { return p.capturing }

func TestRouter_PushPopReset(t *testing.T) {
	base := &fakeModel{name: "base"}
	r, controll := New(util.ModelPointer(base))
	r.Init()
	r.Update(tea.WindowSizeMsg{Width: 30, Height: 5})
	if base.controll == nil {
		t.Fatalf("expected base to receive its router controll")
	}

	detail := &fakeModel{name: "detail"}
	r.Update(base.controll.Push(util.ModelPointer(detail))())
	if r.Depth() != 2 || r.View() != "detail" {
		t.Fatalf("expected detail on top, depth %d view %q", r.Depth(), r.View())
	}
	if detail.size.Width != 30 || !detail.focused || base.focused {
		t.Fatalf("expected pushed model sized and focused")
	}

	// popping never removes the last model
	r.Update(controll.Pop(5)())
	if r.Depth() != 1 || r.View() != "base" || !base.focused {
		t.Fatalf("expected base back on top, depth %d view %q", r.Depth(), r.View())
	}

	other := &fakeModel{name: "other"}
	r.Update(controll.Push(util.ModelPointer(detail))())
	r.Update(controll.Reset(util.ModelPointer(other))())
	if r.Depth() != 1 || r.View() != "other" {
		t.Fatalf("expected reset to leave only other, depth %d view %q", r.Depth(), r.View())
	}
}

func TestRouter_Change(t *testing.T) {
	r, controll := New(util.ModelPointer(&fakeModel{name: "a"}))
	r.Update(controll.Change(util.ModelPointer(&fakeModel{name: "b"}))())
	if r.Depth() != 1 || r.View() != "b" {
		t.Fatalf("expected b to replace a, depth %d view %q", r.Depth(), r.View())
	}
}

func TestRouter_ForeignMessagesReachActiveModel(t *testing.T) {
	base := &fakeModel{name: "base"}
	r, _ := New(util.ModelPointer(base))
	_, foreign := New(util.ModelPointer(&fakeModel{name: "nested"}))

	r.Update(foreign.Push(util.ModelPointer(&fakeModel{name: "x"}))())
	if r.Depth() != 1 {
		t.Fatalf("expected foreign push to be ignored by this router")
	}
	if base.msgs != 1 {
		t.Fatalf("expected foreign push forwarded to the active model")
	}

	r.Update(InitMsg{RouterControll: foreign})
	if base.controll != nil {
		t.Fatalf("expected foreign init message to be dropped")
	}
}

func TestRouter_Capturing(t *testing.T) {
	base := &fakeModel{name: "base"}
	r, _ := New(util.ModelPointer(base))
	if r.Capturing() {
		t.Fatalf("expected no capture")
	}
	base.capturing = true
	if !r.Capturing() {
		t.Fatalf("expected capture of the active model to pass through")
	}
}
