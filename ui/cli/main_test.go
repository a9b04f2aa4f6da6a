// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestResolveBuildVersion_MainVersion(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/studygenie/studygenie", Version: "v1.2.3"},
	}
	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" {
		t.Fatalf("expected v1.2.3 got %s", v)
	}
	if c != gitCommit {
		t.Fatalf("expected commit to equal package gitCommit (default) got %s", c)
	}
	if d != buildDate {
		t.Fatalf("expected date to equal package buildDate (default) got %s", d)
	}
}

func TestResolveBuildVersion_WithBuildInfo(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/studygenie/studygenie", Version: "v1.2.3"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "deadbeef"},
			{Key: "vcs.time", Value: "2025-01-01T00:00:00Z"},
		},
	}

	v, c, d := resolveBuildVersion(info)
	if v != "v1.2.3" || c != "deadbeef" || d != "2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected build info %s %s %s", v, c, d)
	}
	if got := compositeVersion(v, c, d); got != "v1.2.3 (deadbeef) built: 2025-01-01T00:00:00Z" {
		t.Fatalf("unexpected composite version %q", got)
	}
}

func TestResolveBuildVersion_DependencyFallback(t *testing.T) {
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "example.com/wrapper", Version: "(devel)"},
		Deps: []*debug.Module{
			{Path: "github.com/studygenie/studygenie", Version: "v0.3.1"},
		},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "v0.3.1" {
		t.Fatalf("expected dependency version fallback got %s", v)
	}
}

func TestResolveBuildVersion_GitCommitFallback(t *testing.T) {
	orig := gitCommit
	defer func() { gitCommit = orig }()
	gitCommit = "deadbeef"
	info := &debug.BuildInfo{
		Main: debug.Module{Path: "github.com/studygenie/studygenie", Version: "(devel)"},
	}
	v, _, _ := resolveBuildVersion(info)
	if v != "deadbeef" {
		t.Fatalf("expected gitCommit fallback got %s", v)
	}
}

func TestGetConfigPathFromCli_FlagNotSet(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")

	p, err := getConfigPathFromCli(cmd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != nil {
		t.Fatalf("expected nil path when flag not set, got %v", *p)
	}
}

func TestGetConfigPathFromCli_MissingFile(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.Flags().String("config", "", "config file")
	if err := cmd.Flags().Set("config", filepath.Join(t.TempDir(), "missing.yaml")); err != nil {
		t.Fatalf("failed to set flag: %v", err)
	}

	if _, err := getConfigPathFromCli(cmd); err == nil {
		t.Fatalf("expected error for missing config file")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "studygenie.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestConfigShow_UsesFileAndFlags(t *testing.T) {
	path := writeConfig(t, "language: de\ncalculator:\n  history_size: 3\n")

	out, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "language: de") || !strings.Contains(out, "history_size: 3") {
		t.Fatalf("expected file values, got:\n%s", out)
	}
	if !strings.Contains(out, "seconds_per_question: 30") {
		t.Fatalf("expected defaults for missing keys, got:\n%s", out)
	}

	out, err = execute(t, "--config", path, "--language", "en", "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "language: en") {
		t.Fatalf("expected flag to override file, got:\n%s", out)
	}
}

func TestVersionCmd(t *testing.T) {
	path := writeConfig(t, "language: en\n")
	out, err := execute(t, "--config", path, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "version: ") || !strings.Contains(out, "commit: ") {
		t.Fatalf("unexpected version output %q", out)
	}
}

func TestLanguageFlag_ListsLocales(t *testing.T) {
	usage := NewRootCmd().PersistentFlags().Lookup("language").Usage
	want := "Interface language: de (Deutsch), en (English)"
	if usage != want {
		t.Fatalf("usage = %q, want %q", usage, want)
	}
}

func TestConfigShow_UnknownLanguageFallsBack(t *testing.T) {
	path := writeConfig(t, "language: xx\n")
	out, err := execute(t, "--config", path, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "language: en") {
		t.Fatalf("expected fallback to en, got:\n%s", out)
	}
}
