// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the pointer-receiver variant of tea.Model every component
// implements. Update mutates in place and only returns the follow-up command.
type Model interface {
	Init() tea.Cmd
	Update(tea.Msg) tea.Cmd
	View() string
	Focusable
}

// Capturer is implemented by views that temporarily consume every key, e.g.
// while a text field is being edited. Global shortcuts are suspended then.
type Capturer interface {
	Capturing() bool
}

func ModelPointer[T any, PT interface {
	*T
	Model
}](v PT) *Model {
	m := Model(v)
	return &m
}

// IsCapturing reports whether m currently captures key input.
func IsCapturing(m Model) bool {
	if c, ok := m.(Capturer); ok {
		return c.Capturing()
	}
	return false
}
