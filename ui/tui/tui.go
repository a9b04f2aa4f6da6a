// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/studygenie/studygenie/ui/tui/models/views/root"
)

// Run shows the tab shell until the user quits.
func Run(opts root.Options) error {
	model, err := root.New(opts)
	if err != nil {
		return err
	}
	if _, err := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
