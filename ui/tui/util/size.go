// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"cmp"

	tea "github.com/charmbracelet/bubbletea"
)

type Size struct {
	Width  int
	Height int
}

// Update records window size messages and reports whether msg was one.
func (s *Size) Update(msg tea.Msg) bool {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width, s.Height = msg.Width, msg.Height
		return true
	}
	return false
}

func (s *Size) ToMsg() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  s.Width,
		Height: s.Height,
	}
}

func Clamp[T cmp.Ordered](_min, _wanted, _max T) T {
	return min(max(_min, _wanted), _max)
}
