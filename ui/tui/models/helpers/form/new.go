// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package form

import (
	tea "github.com/charmbracelet/bubbletea"
)

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) *Form[T] {
	form := Form[T]{}
	for _, opt := range opts {
		opt(&form)
	}
	return &form
}

func WithTitle[T any](title string) NewOpt[T] {
	return func(form *Form[T]) {
		form.Title = title
	}
}

func WithOnSubmit[T any](fn func(result T, err error) tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnSubmit = fn
	}
}

func WithOnCancel[T any](fn func() tea.Cmd) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnCancel = fn
	}
}

func WithResetAfterSubmit[T any]() NewOpt[T] {
	return func(form *Form[T]) {
		form.ResetAfterSubmit = true
	}
}

// WithInput adds input on a row of its own.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.rows = append(form.rows, formRow{items: []int{len(form.items)}})
		form.items = append(form.items, formItem{
			id:    id,
			input: input,
		})
	}
}

// WithRow places several inputs next to each other. Ids and inputs are
// paired by position.
func WithRow[T any](ids []string, inputs ...FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		var row formRow
		for i, input := range inputs {
			if i >= len(ids) {
				break
			}
			row.items = append(row.items, len(form.items))
			form.items = append(form.items, formItem{
				id:    ids[i],
				input: input,
			})
		}
		if len(row.items) > 0 {
			form.rows = append(form.rows, row)
		}
	}
}
