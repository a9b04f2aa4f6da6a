// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for StudyGenie using
// Cobra. It wires configuration, translations and logging, then either
// launches the TUI or runs one of the scriptable subcommands. Business logic
// stays in the `core` packages.
package cli
