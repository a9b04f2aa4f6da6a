// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package calculator

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type KeyMap struct {
	Digits    key.Binding
	Operators key.Binding
	Equals    key.Binding
	Sign      key.Binding
	Percent   key.Binding
	Clear     key.Binding
	Copy      key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Equals, km.Clear, km.Sign, km.Copy}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Digits, km.Operators},
		{km.Equals, km.Sign, km.Percent},
		{km.Clear, km.Copy},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

var DefaultKeyMap = KeyMap{
	Digits: key.NewBinding(
		key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."),
		key.WithHelp("0-9 .", "enter number"),
	),
	Operators: key.NewBinding(
		key.WithKeys("+", "-", "*", "/", "x", "÷", "×", "−"),
		key.WithHelp("+ - * /", "operator"),
	),
	Equals: key.NewBinding(
		key.WithKeys("=", "enter"),
		key.WithHelp("=/enter", "result"),
	),
	Sign: key.NewBinding(
		key.WithKeys("n", "±"),
		key.WithHelp("n", "±"),
	),
	Percent: key.NewBinding(
		key.WithKeys("%"),
		key.WithHelp("%", "percent"),
	),
	Clear: key.NewBinding(
		key.WithKeys("c", "C", "esc"),
		key.WithHelp("c", "clear"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy"),
	),
}
