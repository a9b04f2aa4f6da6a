// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package calc implements the pocket calculator behind the Calculator screen.
//
// The Evaluator is a sequential, single-operand-buffer machine: operators are
// applied left to right as soon as the next operator (or "=") arrives, there
// is no precedence and no parenthesization. Degenerate input never produces
// an error. A second decimal point is ignored, a commit without a pending
// operator is a no-op, and division by zero shows Infinity or NaN.
//
// An Evaluator is not safe for concurrent use. Callers feed it one input at
// a time, which is exactly what the bubbletea update loop does.
package calc
