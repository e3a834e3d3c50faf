// Copyright (c) 2026 Keymaster Team
// Regform - terminal registration form
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files against the message IDs used in code.
// IDs used in code but missing from the primary locale fail the run; IDs
// nobody uses are reported as orphans.
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"
)

// Location stores the file and line number of a found string. Call is set
// when the string was the argument of an i18n.T call.
type Location struct {
	Filepath string
	Line     int
	Call     bool
}

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "ru.yaml"
	projectRoot   = "."
)

// Report is the outcome of one lint run.
type Report struct {
	Missing  map[string][]Location // used in code, absent from a locale
	Orphaned []string              // in the primary locale, never used
}

// Failed reports whether the run found missing IDs.
func (r Report) Failed() bool { return len(r.Missing) > 0 }

func main() {
	fmt.Println("🔍 Running i18n linter...")
	report, err := lint(projectRoot, filepath.Join(projectRoot, localesDir))
	if err != nil {
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, report)
	if report.Failed() {
		os.Exit(1)
	}
}

func lint(root, locales string) (Report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return Report{}, fmt.Errorf("finding used keys: %w", err)
	}
	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return Report{}, fmt.Errorf("loading primary locale %s: %w", primaryLocale, err)
	}

	report := Report{Missing: make(map[string][]Location)}
	for key, locs := range used {
		if _, ok := primary[key]; ok {
			continue
		}
		// Bare dotted literals may be config keys or span names.
		calls := slices.DeleteFunc(slices.Clone(locs), func(l Location) bool { return !l.Call })
		if len(calls) > 0 {
			report.Missing[key] = calls
		}
	}
	for key := range primary {
		if _, ok := used[key]; !ok {
			report.Orphaned = append(report.Orphaned, key)
		}
	}
	slices.Sort(report.Orphaned)
	return report, nil
}

func printReport(w io.Writer, r Report) {
	fmt.Fprintln(w, "--- Missing keys (used in code, not in the locale) ---")
	if len(r.Missing) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}
	keys := make([]string, 0, len(r.Missing))
	for k := range r.Missing {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	for _, k := range keys {
		loc := r.Missing[k][0]
		fmt.Fprintf(w, "  - Missing: %s (%s:%d)\n", k, loc.Filepath, loc.Line)
	}

	fmt.Fprintln(w, "\n--- Orphaned keys (in the locale, not used in code) ---")
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  ✨ None found.")
	}
	for _, k := range r.Orphaned {
		fmt.Fprintf(w, "  - Orphaned: %s\n", k)
	}

	fmt.Fprintln(w, "\n--- Linter Finished ---")
	switch {
	case r.Failed():
		fmt.Fprintln(w, "❌ Found issues that need to be addressed.")
	case len(r.Orphaned) > 0:
		fmt.Fprintln(w, "⚠️  Found orphaned keys. Please consider removing them.")
	default:
		fmt.Fprintln(w, "✅ All translation files are consistent!")
	}
}

// keyRe finds i18n.T("some.key") calls and quoted literals that look like
// message IDs, such as the values of a field-to-label map.
var keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"|"([a-z]+\.[a-z_]+(?:\.[a-z_]+)*)"`)

// findUsedKeys scans the non-test .go files below root. Directories starting
// with "_" or "." and the tools directory are skipped.
func findUsedKeys(root string) (map[string][]Location, error) {
	keys := make(map[string][]Location)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			name := d.Name()
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
		for i, line := range strings.Split(string(content), "\n") {
			for _, match := range keyRe.FindAllStringSubmatch(line, -1) {
				key, call := match[1], true
				if key == "" {
					key, call = match[2], false
				}
				keys[key] = append(keys[key], Location{Filepath: path, Line: i + 1, Call: call})
			}
		}
		return nil
	})
	return keys, err
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

// flattenYAML converts a nested map into dot-separated keys. Flat dotted
// keys pass through unchanged.
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
	case []any:
		for i, val := range v {
			flattenYAML(fmt.Sprintf("%s[%d]", prefix, i), val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}
