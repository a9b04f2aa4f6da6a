// Copyright (c) 2026 StudyGenie Team
// StudyGenie - terminal study companion
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the source tree. It reports
// message ids used in code but missing from a locale, ids no code refers to
// and string literals that look like user-facing text.
//
// Usage, from the repository root:
//
//	go run ./tools/i18n-linter
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string.
type Location struct {
	Filepath string
	Line     int
}

// Report is the outcome of one lint run.
type Report struct {
	Missing      map[string][]string // locale file -> ids missing there
	Orphaned     []string
	Untranslated map[string][]Location
}

// Failed reports whether the run found anything that must be fixed.
func (r Report) Failed() bool {
	for _, ids := range r.Missing {
		if len(ids) > 0 {
			return true
		}
	}
	return false
}

const (
	localesDir    = "i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var (
	// i18n.T("some.key") and i18n.T("some.prefix." + variable)
	usedKeyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)
	callRe    = regexp.MustCompile(`([a-zA-Z0-9_]+\.)?([a-zA-Z0-9_]+)\("([^"]+)"`)
	keyLikeRe = regexp.MustCompile(`^[a-z_]+\.[a-z\._-]+$`)
	allCapsRe = regexp.MustCompile(`^[A-Z_]+$`)
	formatRe  = regexp.MustCompile(`^[\s%.,:;()#\d\w-]*%[\s\w-]*$`)
)

// calls whose literals are never shown to users
var ignoredCalls = map[string]struct{}{
	"Print": {}, "Println": {}, "Printf": {}, "Fatal": {}, "Fatalf": {}, "WriteString": {},
	"Debugf": {}, "Infof": {}, "Warnf": {}, "Errorf": {}, "New": {}, "WithKeys": {},
	"MustCompile": {}, "Getenv": {}, "Join": {},
}

func main() {
	report, err := lint(projectRoot, localesDir, primaryLocale)
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, dir, primary string) (Report, error) {
	report := Report{Missing: map[string][]string{}}

	used, err := findUsedKeys(root)
	if err != nil {
		return report, fmt.Errorf("error finding used keys: %w", err)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(dir, primary))
	if err != nil {
		return report, fmt.Errorf("error loading primary locale %q: %w", primary, err)
	}

	// ids used in code must exist in the primary locale
	for id := range used {
		if strings.HasSuffix(id, ".") {
			continue
		}
		if _, ok := primaryKeys[id]; !ok {
			report.Missing[primary] = append(report.Missing[primary], id)
		}
	}
	sort.Strings(report.Missing[primary])

	for id := range primaryKeys {
		if !isUsed(id, used) {
			report.Orphaned = append(report.Orphaned, id)
		}
	}
	sort.Strings(report.Orphaned)

	files, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return report, fmt.Errorf("error finding locale files: %w", err)
	}
	for _, file := range files {
		name := filepath.Base(file)
		if name == primary {
			continue
		}
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report, fmt.Errorf("error loading %s: %w", name, err)
		}
		var missing []string
		for id := range primaryKeys {
			if _, ok := keys[id]; !ok {
				missing = append(missing, id)
			}
		}
		sort.Strings(missing)
		report.Missing[name] = missing
	}

	report.Untranslated, err = findUntranslatedStrings(root, primaryKeys)
	if err != nil {
		return report, fmt.Errorf("error finding untranslated strings: %w", err)
	}
	return report, nil
}

// isUsed matches id against the literal ids and the prefixes of ids built
// at runtime.
func isUsed(id string, used map[string]struct{}) bool {
	if _, ok := used[id]; ok {
		return true
	}
	for u := range used {
		if strings.HasSuffix(u, ".") && strings.HasPrefix(id, u) {
			return true
		}
	}
	return false
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintln(w, "🔍 i18n linter")

	fmt.Fprintln(w, "\n--- Missing Keys ---")
	var files []string
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	none := true
	for _, f := range files {
		for _, id := range r.Missing[f] {
			fmt.Fprintf(w, "  - %s: %s\n", f, id)
			none = false
		}
	}
	if none {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w, "\n--- Orphaned Keys ---")
	for _, id := range r.Orphaned {
		fmt.Fprintf(w, "  - %s\n", id)
	}
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w, "\n--- Potentially Untranslated Strings ---")
	var literals []string
	for l := range r.Untranslated {
		literals = append(literals, l)
	}
	sort.Strings(literals)
	for _, l := range literals {
		loc := r.Untranslated[l][0]
		fmt.Fprintf(w, "  - %q (%s:%d)\n", l, loc.Filepath, loc.Line)
	}
	if len(literals) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}

	fmt.Fprintln(w)
	switch {
	case r.Failed():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// walkSources calls fn for every non-test Go file below root, skipping
// tools and example trees.
func walkSources(root string, fn func(path string, content []byte) error) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if path != root && (name == "tools" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".")) {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		return fn(path, content)
	})
}

// findUsedKeys collects the first argument of every i18n.T call. Ids ending
// in "." are prefixes completed at runtime.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := walkSources(root, func(_ string, content []byte) error {
		for _, match := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// findUntranslatedStrings scans for literals passed to calls that look like
// text meant for the screen.
func findUntranslatedStrings(root string, allKeys map[string]struct{}) (map[string][]Location, error) {
	untranslated := make(map[string][]Location)
	err := walkSources(root, func(path string, content []byte) error {
		for i, line := range strings.Split(string(content), "\n") {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "//") {
				continue
			}
			for _, match := range callRe.FindAllStringSubmatch(line, -1) {
				if looksUntranslated(match[2], match[3], allKeys) {
					untranslated[match[3]] = append(untranslated[match[3]], Location{Filepath: path, Line: i + 1})
				}
			}
		}
		return nil
	})
	return untranslated, err
}

func looksUntranslated(funcName, literal string, allKeys map[string]struct{}) bool {
	if _, ok := ignoredCalls[funcName]; ok {
		return false
	}
	if _, ok := allKeys[literal]; ok {
		return false
	}
	switch {
	case keyLikeRe.MatchString(literal),
		len(literal) < 4,
		!strings.Contains(literal, " "),
		strings.HasPrefix(literal, "http"),
		allCapsRe.MatchString(literal),
		formatRe.MatchString(literal):
		return false
	}
	return true
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts nested maps into dot-separated keys. Flat files with
// dotted keys pass through unchanged.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
