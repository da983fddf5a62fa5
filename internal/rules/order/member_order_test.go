package order

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/donaldgifford/memberfmt/internal/lint"
	"github.com/donaldgifford/memberfmt/internal/member"
	"github.com/donaldgifford/memberfmt/internal/parser"
)

func field(mods member.Modifiers, name string) *member.Member {
	return &member.Member{Kind: member.KindField, Modifiers: mods, Variables: []string{name}, Text: "int " + name + ";"}
}

func method(mods member.Modifiers, name string) *member.Member {
	return &member.Member{Kind: member.KindMethod, Modifiers: mods, Identifier: name, Text: "void " + name + "() { }"}
}

// typeDecl lays the members out one per line inside "class Name { }",
// setting spans and trivia the way the C# provider does. A member whose
// Leading is already set keeps it in front of the indentation.
func typeDecl(kind member.Kind, name string, members ...*member.Member) (*parser.File, *parser.TypeDecl) {
	var b strings.Builder
	b.WriteString("class " + name + "\n{\n")
	bodyStart := b.Len() - 1

	for _, m := range members {
		lead := m.Leading.String() + "    "
		m.Leading = member.LexTrivia(lead)
		b.WriteString(lead)
		m.Span = member.Span{Start: b.Len(), End: b.Len() + len(m.Text)}
		b.WriteString(m.Text)
		m.Trailing = member.LexTrivia("\n")
		b.WriteString("\n")
	}
	bodyEnd := b.Len()
	b.WriteString("}\n")

	decl := &parser.TypeDecl{
		Kind:    kind,
		Name:    name,
		Pos:     parser.Position{Line: 1, Column: 1},
		Span:    member.Span{Start: 0, End: b.Len() - 1},
		Body:    member.Span{Start: bodyStart, End: bodyEnd},
		Members: members,
	}
	file := &parser.File{Path: "Test.cs", Source: []byte(b.String()), Types: []*parser.TypeDecl{decl}}
	return file, decl
}

func check(t *testing.T, file *parser.File, decl *parser.TypeDecl) []lint.Diagnostic {
	t.Helper()
	var c lint.Collector
	require.NoError(t, New(DefaultDescriptor).Check(file, decl, &c))
	return c.Diagnostics
}

func TestCheck_InOrder(t *testing.T) {
	file, decl := typeDecl(member.KindClass, "C",
		field(member.Private, "a"),
		field(member.Private, "b"),
		method(member.Public, "Run"),
	)
	assert.Empty(t, check(t, file, decl))
}

func TestCheck_Empty(t *testing.T) {
	file, decl := typeDecl(member.KindClass, "Empty")
	assert.Empty(t, check(t, file, decl))
}

func TestCheck_OutOfOrder(t *testing.T) {
	file, decl := typeDecl(member.KindClass, "MyClass",
		method(member.Public, "Run"),
		field(member.Private, "a"),
	)

	diags := check(t, file, decl)
	require.Len(t, diags, 1)

	d := diags[0]
	assert.Equal(t, DiagnosticID, d.RuleID)
	assert.Equal(t, lint.SeverityWarning, d.Severity)
	assert.Equal(t, "members of type 'MyClass' are not in the expected order", d.Message)
	assert.Equal(t, "Test.cs", d.Path)
	assert.Equal(t, parser.Position{Line: 1, Column: 1}, d.Pos)
	assert.Equal(t, []string{"MyClass"}, d.Args)
	assert.Equal(t, "0", d.Properties[PropertyIndex])

	require.Len(t, d.Fixes, 2)
	region, ok := decl.MemberRegion()
	require.True(t, ok)

	one := d.Fixes[0]
	assert.Equal(t, "Move 'a' to its ordered position", one.Title)
	assert.Equal(t, "Individual_a", one.EquivalenceKey)
	assert.Equal(t, lint.FixMember, one.Kind)
	assert.Equal(t, region, one.Edit.Span)
	assert.Equal(t, "    int a;\n    void Run() { }\n", one.Edit.NewText)

	all := d.Fixes[1]
	assert.Equal(t, "Reorder members", all.Title)
	assert.Equal(t, "ReorderMembers", all.EquivalenceKey)
	assert.Equal(t, lint.FixType, all.Kind)
	assert.Equal(t, region, all.Edit.Span)
	assert.Equal(t, "    int a;\n    void Run() { }\n", all.Edit.NewText)
}

func TestCheck_MismatchIndex(t *testing.T) {
	file, decl := typeDecl(member.KindStruct, "S",
		field(member.Private, "a"),
		method(member.Private, "B"),
		field(member.Private, "c"),
	)

	diags := check(t, file, decl)
	require.Len(t, diags, 1)
	assert.Equal(t, "1", diags[0].Properties[PropertyIndex])
	assert.Equal(t, "Move 'c' to its ordered position", diags[0].Fixes[0].Title)
	assert.Equal(t, "    int a;\n    int c;\n    void B() { }\n", diags[0].Fixes[0].Edit.NewText)
}

// The whole-type fix keeps the blank line that separated the declared
// first and second members; the single-member fix moves trivia with the
// member.
func TestCheck_FixesHandleBlankLines(t *testing.T) {
	a := field(member.Private, "a")
	a.Leading = member.LexTrivia("\n")
	file, decl := typeDecl(member.KindClass, "C",
		method(member.Public, "Run"),
		a,
	)

	diags := check(t, file, decl)
	require.Len(t, diags, 1)
	require.Len(t, diags[0].Fixes, 2)

	assert.Equal(t, "\n    int a;\n    void Run() { }\n", diags[0].Fixes[0].Edit.NewText)
	assert.Equal(t, "    int a;\n\n    void Run() { }\n", diags[0].Fixes[1].Edit.NewText)
}

func TestCheck_AnalyzedKinds(t *testing.T) {
	tests := []struct {
		kind member.Kind
		want int
	}{
		{member.KindClass, 1},
		{member.KindInterface, 1},
		{member.KindStruct, 1},
		{member.KindRecord, 1},
		{member.KindRecordStruct, 1},
		{member.KindEnum, 0},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			file, decl := typeDecl(tt.kind, "T",
				method(member.Public, "Run"),
				field(member.Private, "a"),
			)
			assert.Len(t, check(t, file, decl), tt.want)
		})
	}
}

func TestCheck_IndexerFixTitle(t *testing.T) {
	indexer := &member.Member{Kind: member.KindIndexer, Modifiers: member.Public, Text: "public int this[int i] => i;"}
	file, decl := typeDecl(member.KindClass, "C",
		method(member.Public, "Run"),
		indexer,
	)

	diags := check(t, file, decl)
	require.Len(t, diags, 1)
	assert.Equal(t, "Move 'this[]' to its ordered position", diags[0].Fixes[0].Title)
}

func TestCheck_UnsupportedShape(t *testing.T) {
	op := &member.Member{Kind: member.KindOther, NodeType: "operator_declaration", Text: "public static C operator +(C a, C b) => a;"}
	file, decl := typeDecl(member.KindClass, "C",
		method(member.Public, "Run"),
		op,
	)

	var c lint.Collector
	err := New(DefaultDescriptor).Check(file, decl, &c)
	require.Error(t, err)

	var shape *member.UnsupportedShapeError
	require.True(t, errors.As(err, &shape))
	assert.Equal(t, "operator_declaration", shape.NodeType)
	assert.Empty(t, c.Diagnostics)
}

func TestDescriptor(t *testing.T) {
	custom := DefaultDescriptor
	custom.Severity = lint.SeverityError

	assert.Equal(t, DefaultDescriptor, New(DefaultDescriptor).Descriptor())
	assert.Equal(t, lint.SeverityError, New(custom).Descriptor().Severity)
}

func TestAnalyzer_SeverityOverride(t *testing.T) {
	file, _ := typeDecl(member.KindClass, "C",
		method(member.Public, "Run"),
		field(member.Private, "a"),
	)

	cfg := lint.NewConfig().SetSeverity(DiagnosticID, lint.SeverityError)
	diags, err := lint.NewAnalyzer([]lint.Rule{New(DefaultDescriptor)}, cfg, nil).Analyze(file)
	require.NoError(t, err)
	require.Len(t, diags, 1)
	assert.Equal(t, lint.SeverityError, diags[0].Severity)
	assert.Equal(t, "Test.cs:1:1: error: members of type 'C' are not in the expected order [MO0001]", diags[0].String())
}
