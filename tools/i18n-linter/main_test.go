// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.
package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestFlattenYAML_NestedAndFlat(t *testing.T) {
	keys := make(map[string]struct{})
	flattenYAML("", map[string]any{
		"top":      map[string]any{"sub": "value"},
		"flat.key": "v",
	}, keys)
	for _, want := range []string{"top.sub", "flat.key"} {
		if _, ok := keys[want]; !ok {
			t.Fatalf("expected %s in keys, got %v", want, keys)
		}
	}
}

func TestLint(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "ui", "view.go"), `package ui
func view(kind string) {
	_ = i18n.T("tab.home")
	_ = i18n.T("quiz.grade." + kind)
	_ = i18n.T("missing.everywhere")
	render("Visible message here")
	render("ok")
}`)
	writeFile(t, filepath.Join(root, "ui", "view_test.go"), `package ui
func x() { _ = i18n.T("only.in.tests") }`)
	writeFile(t, filepath.Join(root, "i18n", "locales", "en.yaml"),
		"tab.home: Home\nquiz.grade.good: Good\nunused.key: Unused\n")
	writeFile(t, filepath.Join(root, "i18n", "locales", "de.yaml"),
		"tab.home: Start\n")

	report, err := lint(root, filepath.Join(root, "i18n", "locales"), "en.yaml")
	if err != nil {
		t.Fatalf("lint: %v", err)
	}

	if got := report.Missing["en.yaml"]; len(got) != 1 || got[0] != "missing.everywhere" {
		t.Fatalf("unexpected missing ids in en.yaml: %v", got)
	}
	if got := strings.Join(report.Missing["de.yaml"], ","); got != "quiz.grade.good,unused.key" {
		t.Fatalf("unexpected missing ids in de.yaml: %s", got)
	}
	if len(report.Orphaned) != 1 || report.Orphaned[0] != "unused.key" {
		t.Fatalf("expected only unused.key orphaned, got %v", report.Orphaned)
	}
	if _, ok := report.Untranslated["Visible message here"]; !ok {
		t.Fatalf("expected literal to be flagged, got %v", report.Untranslated)
	}
	if _, ok := report.Untranslated["ok"]; ok {
		t.Fatalf("short literal should not be flagged")
	}
	if !report.Failed() {
		t.Fatalf("expected report to fail")
	}

	var out bytes.Buffer
	printReport(&out, report)
	if !strings.Contains(out.String(), "de.yaml: unused.key") {
		t.Fatalf("unexpected report output:\n%s", out.String())
	}
}

func TestLint_RepositoryLocalesAgree(t *testing.T) {
	root := filepath.Join("..", "..")
	report, err := lint(root, filepath.Join(root, localesDir), primaryLocale)
	if err != nil {
		t.Fatalf("lint: %v", err)
	}
	for file, ids := range report.Missing {
		if len(ids) > 0 {
			t.Fatalf("%s is missing %v", file, ids)
		}
	}
}
