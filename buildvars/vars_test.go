// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

package buildvars

import "testing"

func TestVersionOrDefault(t *testing.T) {
	prev := Version
	defer func() { Version = prev }()

	Version = ""
	if got := VersionOrDefault("dev"); got != "dev" {
		t.Fatalf("expected dev, got %q", got)
	}
	Version = "v1.0.0"
	if got := VersionOrDefault("dev"); got != "v1.0.0" {
		t.Fatalf("expected v1.0.0, got %q", got)
	}
}
