// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package slicest contains small generic slice helpers used by the TUI
// components.
package slicest

// Reduce

// Reduce folds slice S into U starting from U's zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD folds slice S into U using an explicit initial value.
// - D: Uses init parameter as starting accumulator.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// Map

// MapI maps every element, passing its index to the callback.
func MapI[T, U any, S ~[]T](s S, fn func(int, T) U) []U {
	result := make([]U, len(s))
	for i, v := range s {
		result[i] = fn(i, v)
	}
	return result
}

func Map[T, U any, S ~[]T](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U { return fn(t) })
}
