// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// FixFunc is the signature for a function that fixes C# source.
type FixFunc func(input string) (string, error)

// RunGolden runs a single golden file test in the given directory.
// It reads input.cs, applies fixFn, and compares against expected.cs.
func RunGolden(t *testing.T, dir string, fixFn FixFunc) {
	t.Helper()

	inputPath := filepath.Join(dir, "input.cs")
	expectedPath := filepath.Join(dir, "expected.cs")

	inputBytes, err := os.ReadFile(inputPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", inputPath, err)
	}

	actual, err := fixFn(string(inputBytes))
	if err != nil {
		t.Fatalf("fixing %s: %v", inputPath, err)
	}

	if *Update {
		if err := os.WriteFile(expectedPath, []byte(actual), 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", expectedPath, err)
		}
		t.Logf("updated golden file: %s", expectedPath)
		return
	}

	expectedBytes, err := os.ReadFile(expectedPath)
	if err != nil {
		t.Fatalf("failed to read %s: %v", expectedPath, err)
	}

	expected := string(expectedBytes)
	if actual != expected {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", dir, expected, actual)
	}
}

// RunGoldenDir walks all subdirectories under testdataDir and runs
// RunGolden for each as a subtest.
func RunGoldenDir(t *testing.T, testdataDir string, fixFn FixFunc) {
	t.Helper()

	for _, dir := range GoldenDirs(t, testdataDir) {
		t.Run(filepath.Base(dir), func(t *testing.T) {
			RunGolden(t, dir, fixFn)
		})
	}
}

// GoldenDirs returns the case directories under testdataDir.
func GoldenDirs(t *testing.T, testdataDir string) []string {
	t.Helper()

	entries, err := os.ReadDir(testdataDir)
	if err != nil {
		t.Fatalf("failed to read testdata dir %s: %v", testdataDir, err)
	}

	var dirs []string
	for _, entry := range entries {
		if entry.IsDir() {
			dirs = append(dirs, filepath.Join(testdataDir, entry.Name()))
		}
	}
	return dirs
}
