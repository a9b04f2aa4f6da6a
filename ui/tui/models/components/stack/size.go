// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package stack

import (
	"math"
	"slices"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/util"
	"github.com/studygenie/studygenie/util/slicest"
)

// SizeConfig decides how much of the stack's main axis an item gets. Items
// are sized in ascending Priority order.
type SizeConfig interface {
	Priority() int
	Calculate(model util.Model, remaining int, total int) int
}

type staticSize struct {
	Size int
}

type variableSize struct {
	Weight      int
	totalWeight int
}

func StaticSize(size int) SizeConfig     { return &staticSize{Size: size} }
func VariableSize(weight int) SizeConfig { return &variableSize{Weight: weight} }

func (sc *staticSize) Priority() int   { return 0 }
func (sc *variableSize) Priority() int { return math.MaxInt }

func (sc *staticSize) Calculate(_ util.Model, _ int, _ int) int {
	return sc.Size
}

func (sc *variableSize) Calculate(_ util.Model, remaining int, _ int) int {
	if sc.totalWeight == 0 {
		return remaining
	}
	// remaining * (weight / totalWeight) without float rounding
	return (remaining * sc.Weight) / sc.totalWeight
}

func (s *Model) calculateItemSizes() {
	total := s.size.Width
	if s.Orientation == Vertical {
		total = s.size.Height
	}
	remaining := total

	sorted := make([]*Item, len(s.items))
	for i := range s.items {
		sorted[i] = &s.items[i]
	}
	slices.SortStableFunc(sorted, func(a, b *Item) int {
		return a.SizeConfig.Priority() - b.SizeConfig.Priority()
	})

	totalWeight := slicest.Reduce(s.items, func(item Item, sum int) int {
		if v, ok := item.SizeConfig.(*variableSize); ok {
			return sum + v.Weight
		}
		return sum
	})

	for _, item := range sorted {
		v, variable := item.SizeConfig.(*variableSize)
		if variable {
			v.totalWeight = totalWeight
		}

		size := max(0, min(item.SizeConfig.Calculate(*item.Model, remaining, total), remaining))

		if variable {
			totalWeight -= v.Weight
		}
		remaining -= size
		item.oldSize, item.size = item.size, size
	}
}

func (s *Model) updateResizedItems(force bool) []tea.Cmd {
	var cmds []tea.Cmd
	for _, item := range s.items {
		if !force && item.size == item.oldSize {
			continue
		}
		msg := tea.WindowSizeMsg{Width: item.size, Height: s.size.Height}
		if s.Orientation == Vertical {
			msg = tea.WindowSizeMsg{Width: s.size.Width, Height: item.size}
		}
		cmds = append(cmds, (*item.Model).Update(msg))
	}
	return cmds
}
