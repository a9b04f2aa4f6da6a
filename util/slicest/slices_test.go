// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package slicest

import (
	"slices"
	"testing"
)

func TestMapAndMapI(t *testing.T) {
	got := Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	if !slices.Equal(got, []int{2, 4, 6}) {
		t.Fatalf("Map: got %v", got)
	}
	idx := MapI([]string{"a", "b"}, func(i int, s string) string { return s + string(rune('0'+i)) })
	if !slices.Equal(idx, []string{"a0", "b1"}) {
		t.Fatalf("MapI: got %v", idx)
	}
}

func TestReduce(t *testing.T) {
	sum := Reduce([]int{1, 2, 3}, func(v, acc int) int { return acc + v })
	if sum != 6 {
		t.Fatalf("Reduce: got %d", sum)
	}
	joined := ReduceD([]string{"b", "c"}, "a", func(s, acc string) string { return acc + s })
	if joined != "abc" {
		t.Fatalf("ReduceD: got %q", joined)
	}
}
