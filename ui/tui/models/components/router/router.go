// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	"sync/atomic"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/util"
)

var lastRouterID atomic.Int64

// Router shows the top of a stack of models. Models navigate with the
// Controll handed to them in InitMsg.
type Router struct {
	id         int
	size       util.Size
	modelStack []*util.Model
}

func New(initial *util.Model) (*Router, Controll) {
	id := int(lastRouterID.Add(1))
	return &Router{
		id:         id,
		modelStack: []*util.Model{initial},
	}, Controll{rid: id}
}

func (r Router) Init() tea.Cmd {
	return tea.Batch(
		(*r.Active()).Init(),
		r.activeModelUpdate(InitMsg{RouterControll: Controll{rid: r.id}}),
	)
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch {
	case r.size.Update(msg):
		return r.activeModelUpdate(msg)
	case r.isMsgOwner(msg):
		switch msg := msg.(type) {
		case PushMsg:
			return r.handlePush(msg)
		case PopMsg:
			return r.handlePop(msg)
		case ChangeMsg:
			return r.handleChange(msg)
		case ResetMsg:
			return r.handleReset(msg)
		}
		return nil
	case IsRouterMsg(msg):
		// init messages of other routers stay away from our children
		if _, ok := msg.(InitMsg); ok {
			return nil
		}
		return r.activeModelUpdate(msg)
	default:
		return r.activeModelUpdate(msg)
	}
}

func (r Router) View() string {
	return (*r.Active()).View()
}

func (r *Router) Focus() (tea.Cmd, help.KeyMap) {
	return (*r.Active()).Focus()
}

func (r *Router) Blur() {
	(*r.Active()).Blur()
}

// *Router implements util.Model
var _ util.Model = (*Router)(nil)

// Active returns the model on top of the stack.
func (r *Router) Active() *util.Model {
	return r.modelStack[len(r.modelStack)-1]
}

// Depth is the number of models on the stack.
func (r *Router) Depth() int {
	return len(r.modelStack)
}

func (r *Router) Capturing() bool {
	return util.IsCapturing(*r.Active())
}

func (r *Router) isMsgOwner(msg tea.Msg) bool {
	rmsg, ok := msg.(Msg)
	return ok && rmsg.routerID() == r.id
}
