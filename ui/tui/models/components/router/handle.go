// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package router

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/util"
)

func (r *Router) handlePush(msg PushMsg) tea.Cmd {
	(*r.Active()).Blur()
	r.modelStack = append(r.modelStack, msg.Model)
	return r.activeModelInit()
}

func (r *Router) handlePop(msg PopMsg) tea.Cmd {
	for range msg.Count {
		if len(r.modelStack) <= 1 {
			break
		}
		(*r.Active()).Blur()
		r.modelStack = r.modelStack[:len(r.modelStack)-1]
	}
	return tea.Batch(
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
	)
}

func (r *Router) handleChange(msg ChangeMsg) tea.Cmd {
	(*r.Active()).Blur()
	r.modelStack[len(r.modelStack)-1] = msg.Model
	return r.activeModelInit()
}

func (r *Router) handleReset(msg ResetMsg) tea.Cmd {
	(*r.Active()).Blur()
	r.modelStack = []*util.Model{msg.Model}
	return r.activeModelInit()
}

func (r *Router) activeModelUpdate(msg tea.Msg) tea.Cmd {
	return (*r.Active()).Update(msg)
}

func (r *Router) activeModelFocus() tea.Cmd {
	cmd, keyMap := (*r.Active()).Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

func (r *Router) activeModelInit() tea.Cmd {
	return tea.Batch(
		(*r.Active()).Init(),
		r.activeModelUpdate(InitMsg{RouterControll: Controll{rid: r.id}}),
		r.activeModelUpdate(r.size.ToMsg()),
		r.activeModelFocus(),
	)
}
