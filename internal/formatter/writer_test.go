package formatter

import (
	"testing"

	"github.com/donaldgifford/memberfmt/internal/lint"
	"github.com/donaldgifford/memberfmt/internal/member"
)

func TestRenderMembers(t *testing.T) {
	members := []*member.Member{
		{Text: "int a;", Leading: member.LexTrivia("    "), Trailing: member.LexTrivia(" // a\n")},
		{Text: "int b;", Leading: member.LexTrivia("\n    /* b */ "), Trailing: member.LexTrivia("\n")},
	}

	got := RenderMembers(members)
	want := "    int a; // a\n\n    /* b */ int b;\n"
	if got != want {
		t.Errorf("RenderMembers = %q, want %q", got, want)
	}

	if got := RenderMembers(nil); got != "" {
		t.Errorf("RenderMembers(nil) = %q, want empty", got)
	}
}

func edit(start, end int, text string) lint.TextEdit {
	return lint.TextEdit{Span: member.Span{Start: start, End: end}, NewText: text}
}

func TestApplyEdits(t *testing.T) {
	tests := []struct {
		name        string
		src         string
		edits       []lint.TextEdit
		want        string
		wantApplied int
	}{
		{
			name: "no edits",
			src:  "abcdef",
			want: "abcdef",
		},
		{
			name:        "single edit",
			src:         "abcdef",
			edits:       []lint.TextEdit{edit(1, 3, "XY")},
			want:        "aXYdef",
			wantApplied: 1,
		},
		{
			name:        "unsorted disjoint edits",
			src:         "abcdef",
			edits:       []lint.TextEdit{edit(4, 6, "!"), edit(0, 1, "A")},
			want:        "Abcd!",
			wantApplied: 2,
		},
		{
			name:        "adjacent edits",
			src:         "abcdef",
			edits:       []lint.TextEdit{edit(0, 3, "123"), edit(3, 6, "456")},
			want:        "123456",
			wantApplied: 2,
		},
		{
			name:        "nested edit dropped",
			src:         "{ outer { inner } }",
			edits:       []lint.TextEdit{edit(10, 15, "INNER"), edit(1, 18, " OUTER ")},
			want:        "{ OUTER }",
			wantApplied: 1,
		},
		{
			name:        "overlapping edit dropped",
			src:         "abcdef",
			edits:       []lint.TextEdit{edit(0, 4, "X"), edit(2, 6, "Y")},
			want:        "Xef",
			wantApplied: 1,
		},
		{
			name:        "no-op edit skipped",
			src:         "abcdef",
			edits:       []lint.TextEdit{edit(0, 3, "abc")},
			want:        "abcdef",
			wantApplied: 0,
		},
		{
			name:        "out of range edit skipped",
			src:         "abc",
			edits:       []lint.TextEdit{edit(1, 10, "X")},
			want:        "abc",
			wantApplied: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, applied := ApplyEdits([]byte(tt.src), tt.edits)
			if string(got) != tt.want {
				t.Errorf("ApplyEdits = %q, want %q", got, tt.want)
			}
			if applied != tt.wantApplied {
				t.Errorf("applied = %d, want %d", applied, tt.wantApplied)
			}
		})
	}
}
