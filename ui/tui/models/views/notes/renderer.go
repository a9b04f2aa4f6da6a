// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package notes

import (
	"github.com/charmbracelet/glamour"
	"github.com/studygenie/studygenie/internal/logging"
)

// renderFunc turns note content into its preview.
type renderFunc func(markdown string) (string, error)

// newRenderer returns a glamour renderer wrapping at width.
func newRenderer(width int) renderFunc {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(max(10, width)),
	)
	if err != nil {
		logging.Warnf("notes: markdown renderer unavailable: %v", err)
		return plainRenderer
	}
	return r.Render
}

func plainRenderer(markdown string) (string, error) {
	return markdown, nil
}
