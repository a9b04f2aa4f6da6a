// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/studygenie/studygenie/ui/tui/util"
)

type NewOpt = func(stack *Model)

func New(opts ...NewOpt) *Model {
	stack := Model{
		Orientation: Horizontal,
		Align:       lipgloss.Top,
	}
	for _, opt := range opts {
		opt(&stack)
	}
	stack.focussedIndex = util.Clamp(FocusAll(), stack.focussedIndex, Focus(len(stack.items)-1))
	return &stack
}

func WithOrientation(orientation Orientation) NewOpt {
	return func(stack *Model) {
		stack.Orientation = orientation
	}
}

func WithAlign(align lipgloss.Position) NewOpt {
	return func(stack *Model) {
		stack.Align = align
	}
}

func WithItem(model *util.Model, sizeConfig SizeConfig) NewOpt {
	return func(stack *Model) {
		stack.items = append(stack.items, Item{
			Model:      model,
			SizeConfig: sizeConfig,
		})
	}
}

func WithFocus(focus Focus) NewOpt {
	return func(stack *Model) {
		stack.focussedIndex = focus
	}
}
