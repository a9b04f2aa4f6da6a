// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package util

import (
	"slices"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/util/slicest"
)

type Focusable interface {
	Focus() (tea.Cmd, help.KeyMap)
	Blur()
}

type AnnounceKeyMapMsg struct {
	KeyMap help.KeyMap
}

// AnnounceKeyMapCmd tells the footer which bindings are active now.
func AnnounceKeyMapCmd(keyMaps ...help.KeyMap) tea.Cmd {
	return func() tea.Msg {
		return AnnounceKeyMapMsg{KeyMap: MergeKeyMaps(keyMaps...)}
	}
}

func MergeKeyMaps(keyMaps ...help.KeyMap) help.KeyMap {
	return MergedKeyMaps{KeyMaps: keyMaps}
}

type MergedKeyMaps struct {
	KeyMaps []help.KeyMap
}

func (m MergedKeyMaps) ShortHelp() []key.Binding {
	return slices.Concat(slicest.Map(m.KeyMaps, func(k help.KeyMap) []key.Binding {
		if k != nil {
			return k.ShortHelp()
		}
		return nil
	})...)
}

func (m MergedKeyMaps) FullHelp() [][]key.Binding {
	return slices.Concat(slicest.Map(m.KeyMaps, func(k help.KeyMap) [][]key.Binding {
		if k != nil {
			return k.FullHelp()
		}
		return nil
	})...)
}

var _ help.KeyMap = (*MergedKeyMaps)(nil)
