// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package form

type Action int

const (
	ActionNone Action = iota
	ActionNext
	ActionPrev
	ActionSubmit
	ActionCancel
)
