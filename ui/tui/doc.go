// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the terminal UI. Presentation and input handling
// live here; the study logic is provided by the packages under core.
package tui
