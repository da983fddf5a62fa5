package diff

import (
	"strings"
	"testing"
)

func TestUnifiedIdentical(t *testing.T) {
	result := Unified("Test.cs", "hello\n", "hello\n")
	if result != "" {
		t.Errorf("expected empty diff for identical inputs, got:\n%s", result)
	}
}

func TestUnifiedEmptyInputs(t *testing.T) {
	tests := []struct {
		name         string
		old, updated string
		wantDiff     bool
	}{
		{"both empty", "", "", false},
		{"old empty", "", "hello\n", true},
		{"new empty", "hello\n", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Unified("Test.cs", tt.old, tt.updated)
			hasDiff := result != ""
			if hasDiff != tt.wantDiff {
				t.Errorf("wantDiff=%v, got diff=%q", tt.wantDiff, result)
			}
		})
	}
}

func TestUnifiedLineChanges(t *testing.T) {
	tests := []struct {
		name         string
		old, updated string
		want         string
	}{
		{"addition", "line1\nline2\n", "line1\nline2\nline3\n", "+line3\n"},
		{"deletion", "line1\nline2\nline3\n", "line1\nline3\n", "-line2\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Unified("Test.cs", tt.old, tt.updated)
			for _, part := range []string{"--- a/Test.cs\n", "+++ b/Test.cs\n", tt.want} {
				if !strings.Contains(result, part) {
					t.Errorf("missing %q, got:\n%s", part, result)
				}
			}
		})
	}
}

// Two reordered types far apart in one file give one hunk each.
func TestUnifiedSeparateHunks(t *testing.T) {
	filler := strings.Repeat("// unrelated\n", 8)
	old := "class A\n{\n    void Run() { }\n    int a;\n}\n\n" + filler +
		"class B\n{\n    void Stop() { }\n    int b;\n}\n"
	updated := "class A\n{\n    int a;\n    void Run() { }\n}\n\n" + filler +
		"class B\n{\n    int b;\n    void Stop() { }\n}\n"

	result := Unified("Services.cs", old, updated)

	if n := strings.Count(result, "\n@@ -"); n != 2 {
		t.Fatalf("got %d hunks, want 2:\n%s", n, result)
	}
	if !strings.HasPrefix(result, "--- a/Services.cs\n+++ b/Services.cs\n@@ -1,") {
		t.Errorf("first hunk should start at line 1, got:\n%s", result)
	}
	var removed, added int
	for line := range strings.SplitSeq(result, "\n") {
		switch {
		case strings.HasPrefix(line, "---"), strings.HasPrefix(line, "+++"):
		case strings.HasPrefix(line, "-"):
			removed++
		case strings.HasPrefix(line, "+"):
			added++
		}
	}
	if removed != 2 || added != 2 {
		t.Errorf("got -%d/+%d lines, want -2/+2:\n%s", removed, added, result)
	}
	// Three context lines reach one filler line on each side of the gap.
	if n := strings.Count(result, "// unrelated"); n != 2 {
		t.Errorf("got %d filler context lines, want 2:\n%s", n, result)
	}
}

func TestUnifiedModification(t *testing.T) {
	old := "    int b;\n    int a;\n"
	updated := "    int a;\n    int b;\n"

	result := Unified("C.cs", old, updated)

	// A swap is one deletion and one insertion, whichever line moves.
	if n := strings.Count(result, "\n-    int "); n != 1 {
		t.Errorf("got %d deleted lines, want 1:\n%s", n, result)
	}
	if n := strings.Count(result, "\n+    int "); n != 1 {
		t.Errorf("got %d inserted lines, want 1:\n%s", n, result)
	}
}

func TestUnifiedHunkHeaders(t *testing.T) {
	old := "line1\nline2\nline3\n"
	updated := "line1\nchanged\nline3\n"

	result := Unified("Test.cs", old, updated)

	want := "--- a/Test.cs\n+++ b/Test.cs\n@@ -1,3 +1,3 @@\n line1\n-line2\n+changed\n line3\n"
	if result != want {
		t.Errorf("got:\n%s\nwant:\n%s", result, want)
	}
}

func TestUnifiedLargeFile(t *testing.T) {
	oldLines := make([]string, 0, 1000)
	newLines := make([]string, 0, 1000)
	for i := range 1000 {
		oldLines = append(oldLines, "line "+string(rune('A'+i%26))+"\n")
		newLines = append(newLines, "line "+string(rune('A'+i%26))+"\n")
	}
	// Change a few lines.
	newLines[500] = "changed line 500\n"
	newLines[999] = "changed line 999\n"

	old := strings.Join(oldLines, "")
	updated := strings.Join(newLines, "")

	result := Unified("Large.cs", old, updated)

	if result == "" {
		t.Error("expected non-empty diff for modified large file")
	}
	if !strings.Contains(result, "+changed line 500\n") {
		t.Error("missing change at line 500")
	}
	if !strings.Contains(result, "+changed line 999\n") {
		t.Error("missing change at line 999")
	}
}

func TestUnifiedContextLines(t *testing.T) {
	// Build a file with enough lines to see context.
	lines := make([]string, 0, 20)
	for i := range 20 {
		lines = append(lines, "line"+string(rune('A'+i))+"\n")
	}
	old := strings.Join(lines, "")

	// Change line 10 (0-indexed).
	newLines := make([]string, len(lines))
	copy(newLines, lines)
	newLines[10] = "CHANGED\n"
	updated := strings.Join(newLines, "")

	result := Unified("Test.cs", old, updated)

	// Should have context lines before and after the change.
	if !strings.Contains(result, " line"+string(rune('A'+7))) {
		t.Errorf("expected context line 7 before change, got:\n%s", result)
	}
	if !strings.Contains(result, " line"+string(rune('A'+13))) {
		t.Errorf("expected context line 13 after change, got:\n%s", result)
	}
}

func TestSplitLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"one line with newline", "hello\n", 1},
		{"one line no newline", "hello", 1},
		{"two lines", "a\nb\n", 2},
		{"trailing blank", "a\n\n", 2},
		{"no final newline", "a\nb", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := splitLines(tt.input)
			if len(lines) != tt.want {
				t.Errorf("splitLines(%q) = %d lines, want %d: %q", tt.input, len(lines), tt.want, lines)
			}
			for _, l := range lines {
				if !strings.HasSuffix(l, "\n") {
					t.Errorf("splitLines(%q): line %q lacks a newline", tt.input, l)
				}
			}
		})
	}
}
