// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for StudyGenie.
//
// Usage:
//
//	go run . [flags]
//	./studygenie [flags]
//
// Without a subcommand the interactive TUI starts. See --help for options.
package main

import (
	"os"

	"github.com/studygenie/studygenie/internal/logging"
	"github.com/studygenie/studygenie/ui/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		logging.Errorf("%v", err)
		os.Exit(1)
	}
}
