// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// Command maintest starts the TUI with default options and debug logging to
// studygenie-debug.log, without reading any configuration.
package main

import (
	"fmt"
	"os"

	"github.com/studygenie/studygenie/i18n"
	"github.com/studygenie/studygenie/internal/logging"
	tui "github.com/studygenie/studygenie/ui/tui"
	"github.com/studygenie/studygenie/ui/tui/models/views/root"
)

func main() {
	closeLog, err := logging.ToFile("studygenie-debug.log")
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	defer closeLog()
	logging.SetDebug(true)
	i18n.Init("en")

	if err := tui.Run(root.Options{Version: "dev", HistorySize: 10, Markdown: true}); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
