// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/go-viper/mapstructure/v2"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

type FormInput interface {
	util.Focusable
	Reset()
	Init() tea.Cmd
	Update(msg tea.Msg) (tea.Cmd, Action)
	Set(any)
	Get() any
	View(width int) string
}

type formItem struct {
	id    string
	input FormInput
}

type formRow struct {
	items []int
}

// Form collects its inputs into a T via mapstructure. Inputs are addressed
// by the id they were added with.
type Form[T any] struct {
	Title            string
	OnSubmit         func(result T, err error) tea.Cmd
	OnCancel         func() tea.Cmd
	ResetAfterSubmit bool

	items       []formItem
	rows        []formRow
	activeIndex int
	focused     bool
	size        util.Size
}

func (f Form[T]) Init() tea.Cmd {
	return tea.Batch(slicest.Map(f.items, func(item formItem) tea.Cmd {
		return item.input.Init()
	})...)
}

func (f *Form[T]) Update(msg tea.Msg) tea.Cmd {
	if f.size.Update(msg) {
		return nil
	}

	if !f.focused || len(f.items) == 0 {
		return nil
	}

	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(kmsg, DefaultKeyMap.Next):
			return f.changeActiveIndex(1)
		case key.Matches(kmsg, DefaultKeyMap.Prev):
			return f.changeActiveIndex(-1)
		case key.Matches(kmsg, DefaultKeyMap.Cancel):
			return f.cancel()
		}
	}

	return f.updateActiveInput(msg)
}

func (f Form[T]) View() string {
	rows := slicest.Map(f.rows, func(row formRow) string {
		return lipgloss.JoinHorizontal(
			lipgloss.Center,
			slicest.Map(row.items, func(itemIndex int) string {
				return f.items[itemIndex].input.View(f.size.Width / len(row.items))
			})...,
		)
	})
	if f.Title != "" {
		rows = append([]string{titleStyle.Render(f.Title)}, rows...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (f *Form[T]) Focus() (tea.Cmd, help.KeyMap) {
	if len(f.items) == 0 {
		return nil, DefaultKeyMap
	}
	f.focused = true
	cmd, keyMap := f.items[f.activeIndex].input.Focus()
	return cmd, util.MergeKeyMaps(keyMap, DefaultKeyMap)
}

func (f *Form[T]) Blur() {
	f.focused = false
	if len(f.items) > 0 {
		f.items[f.activeIndex].input.Blur()
	}
}

// *Form implements util.Model
var _ util.Model = (*Form[any])(nil)

// A focused form consumes every key, including the ones of the tab bar.
func (f *Form[T]) Capturing() bool {
	return f.focused
}

func (f *Form[T]) Reset() tea.Cmd {
	for _, item := range f.items {
		item.input.Reset()
	}

	return f.changeActiveIndex(-f.activeIndex)
}

func (f *Form[T]) Submit() tea.Cmd {
	var resetCmd tea.Cmd
	data, err := f.Get()
	if f.ResetAfterSubmit && err == nil {
		resetCmd = f.Reset()
	}
	if f.OnSubmit == nil {
		return resetCmd
	}
	return tea.Batch(
		resetCmd,
		f.OnSubmit(data, err),
	)
}

func (f *Form[T]) cancel() tea.Cmd {
	if f.OnCancel == nil {
		return nil
	}
	return f.OnCancel()
}

func (f *Form[T]) updateActiveInput(msg tea.Msg) tea.Cmd {
	var (
		updateCmd tea.Cmd
		actionCmd tea.Cmd
		action    Action
	)

	updateCmd, action = f.items[f.activeIndex].input.Update(msg)

	switch action {
	case ActionNone:
	case ActionNext:
		actionCmd = f.changeActiveIndex(1)
	case ActionPrev:
		actionCmd = f.changeActiveIndex(-1)
	case ActionSubmit:
		actionCmd = f.Submit()
	case ActionCancel:
		actionCmd = f.cancel()
	}

	return tea.Batch(updateCmd, actionCmd)
}

func (f *Form[T]) changeActiveIndex(delta int) tea.Cmd {
	if len(f.items) == 0 {
		return nil
	}
	delta = delta % len(f.items)

	if delta != 0 {
		f.items[f.activeIndex].input.Blur()
		f.activeIndex = (f.activeIndex + delta + len(f.items)) % len(f.items)
	}

	if !f.focused {
		return nil
	}
	cmd, keyMap := f.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}

// ActiveID returns the id of the input that has focus.
func (f *Form[T]) ActiveID() string {
	if len(f.items) == 0 {
		return ""
	}
	return f.items[f.activeIndex].id
}

func (f *Form[T]) Get() (T, error) {
	var data T
	values := make(map[string]any, len(f.items))

	for _, item := range f.items {
		if value := item.input.Get(); value != nil {
			values[item.id] = value
		}
	}

	err := mapstructure.Decode(values, &data)
	return data, err
}

func (f *Form[T]) Set(data T) error {
	values := make(map[string]any, len(f.items))
	if err := mapstructure.Decode(data, &values); err != nil {
		return err
	}

	for i := range f.items {
		if value, ok := values[f.items[i].id]; ok {
			f.items[i].input.Set(value)
		}
	}

	return nil
}
