package arch_test

import (
	"bufio"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
)

const (
	maxFilesPerPackage = 20
	maxLinesPerFile    = 400
)

// packageFileCountExceptions lists packages that currently exceed maxFilesPerPackage.
// Each entry maps a package name to its current non-test .go file count.
// Currently empty: all packages fit within the limit.
var packageFileCountExceptions = map[string]int{}

// lineCountExceptions lists files that currently exceed maxLinesPerFile.
// Each entry maps a file path (relative to repo root) to its current line count.
// Currently empty: all files fit within the limit.
var lineCountExceptions = map[string]int{}

// allGoFilesIn returns all .go files (including test files) in the given directory,
// sorted by path. Unlike goFilesIn, this includes _test.go files.
func allGoFilesIn(t *testing.T, dir string) []string {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("reading directory %s: %v", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), ".go") {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(files)
	return files
}

// isGenerated reports whether the file begins with a "// Code generated" comment,
// indicating it was produced by a code generator and should be excluded from size checks.
func isGenerated(t *testing.T, filePath string) bool {
	t.Helper()

	f, err := os.Open(filePath)
	if err != nil {
		t.Fatalf("opening %s: %v", filePath, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if scanner.Scan() {
		return strings.HasPrefix(scanner.Text(), "// Code generated")
	}
	return false
}

// TestPackageFileCount verifies that no internal package has more than
// maxFilesPerPackage non-test .go files.
func TestPackageFileCount(t *testing.T) {
	t.Parallel()

	dir := internalDirPath(t)

	for _, pkg := range internalPackages(t) {
		t.Run(pkg, func(t *testing.T) {
			t.Parallel()

			files := goFilesIn(t, filepath.Join(dir, pkg))
			count := len(files)

			if count <= maxFilesPerPackage {
				return
			}

			// Check if this package is a known exception.
			if _, ok := packageFileCountExceptions[pkg]; ok {
				t.Logf("known exception: package %s has %d .go files (limit: %d)", pkg, count, maxFilesPerPackage)
				return
			}

			t.Errorf("package %s has %d .go files (limit: %d); consider splitting", pkg, count, maxFilesPerPackage)
		})
	}
}

// TestFileLineCount verifies that no .go file (including test files) in internal
// packages exceeds maxLinesPerFile lines.
func TestFileLineCount(t *testing.T) {
	t.Parallel()

	root := repoRoot(t)
	dir := internalDirPath(t)

	for _, pkg := range internalPackages(t) {
		pkgDir := filepath.Join(dir, pkg)

		for _, filePath := range allGoFilesIn(t, pkgDir) {
			rel, err := filepath.Rel(root, filePath)
			if err != nil {
				t.Fatalf("computing relative path for %s: %v", filePath, err)
			}

			t.Run(rel, func(t *testing.T) {
				t.Parallel()

				// Skip generated files.
				if isGenerated(t, filePath) {
					t.Skipf("skipping generated file %s", rel)
					return
				}

				count := lineCount(t, filePath)
				if count <= maxLinesPerFile {
					return
				}

				// Check if this file is a known exception.
				if _, ok := lineCountExceptions[rel]; ok {
					t.Logf("known exception: %s has %d lines (limit: %d)", rel, count, maxLinesPerFile)
					return
				}

				t.Errorf("%s has %d lines (limit: %d); consider decomposing", rel, count, maxLinesPerFile)
			})
		}
	}
}
