// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/util"
)

// Router -> Model

type InitMsg struct {
	RouterControll Controll
}

// Model-Controll -> Router

type PushMsg struct {
	rid   int
	Model *util.Model
}
type PopMsg struct {
	rid   int
	Count int
}
type ChangeMsg struct {
	rid   int
	Model *util.Model
}
type ResetMsg struct {
	rid   int
	Model *util.Model
}

func (m InitMsg) routerID() int   { return m.RouterControll.rid }
func (m PushMsg) routerID() int   { return m.rid }
func (m PopMsg) routerID() int    { return m.rid }
func (m ChangeMsg) routerID() int { return m.rid }
func (m ResetMsg) routerID() int  { return m.rid }

type Msg interface {
	routerID() int
}

func IsRouterMsg(msg tea.Msg) bool {
	_, ok := msg.(Msg)
	return ok
}
