//go:build cgo

package parser

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/csharp"

	"github.com/donaldgifford/memberfmt/internal/member"
)

// typeDeclKinds are the declarations whose member order is analysed.
var typeDeclKinds = map[string]member.Kind{
	"class_declaration":         member.KindClass,
	"interface_declaration":     member.KindInterface,
	"struct_declaration":        member.KindStruct,
	"record_declaration":        member.KindRecord,
	"record_struct_declaration": member.KindRecordStruct,
}

// memberKinds maps member node types to member kinds. Node types missing
// here become member.KindOther.
var memberKinds = map[string]member.Kind{
	"field_declaration":         member.KindField,
	"property_declaration":      member.KindProperty,
	"delegate_declaration":      member.KindDelegate,
	"event_declaration":         member.KindEvent,
	"event_field_declaration":   member.KindEventField,
	"indexer_declaration":       member.KindIndexer,
	"constructor_declaration":   member.KindConstructor,
	"destructor_declaration":    member.KindDestructor,
	"method_declaration":        member.KindMethod,
	"enum_declaration":          member.KindEnum,
	"interface_declaration":     member.KindInterface,
	"struct_declaration":        member.KindStruct,
	"record_struct_declaration": member.KindRecordStruct,
	"record_declaration":        member.KindRecord,
	"class_declaration":         member.KindClass,
}

// CSharp parses C# with tree-sitter.
type CSharp struct {
	parser *sitter.Parser
}

// NewCSharp creates a C# parser.
func NewCSharp() *CSharp {
	p := sitter.NewParser()
	p.SetLanguage(csharp.GetLanguage())
	return &CSharp{parser: p}
}

// Available reports whether source parsing is compiled in.
func Available() bool {
	return true
}

// Parse parses src and collects all analysable type declarations.
func (c *CSharp) Parse(ctx context.Context, path string, src []byte) (*File, error) {
	tree, err := c.parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, err
	}

	f := &File{Path: path, Source: src}
	collectTypes(tree.RootNode(), src, 0, f)
	return f, nil
}

func collectTypes(n *sitter.Node, src []byte, depth int, f *File) {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if kind, ok := declKind(child, typeDeclKinds); ok {
			f.Types = append(f.Types, typeDecl(child, kind, src, depth))
			collectTypes(child, src, depth+1, f)
			continue
		}
		collectTypes(child, src, depth, f)
	}
}

// declKind resolves the kind of a declaration node. Newer grammars spell
// record structs as a record_declaration carrying a struct keyword.
func declKind(n *sitter.Node, kinds map[string]member.Kind) (member.Kind, bool) {
	kind, ok := kinds[n.Type()]
	if !ok {
		return member.KindOther, false
	}
	if kind == member.KindRecord && hasToken(n, "struct") {
		kind = member.KindRecordStruct
	}
	return kind, true
}

func typeDecl(n *sitter.Node, kind member.Kind, src []byte, depth int) *TypeDecl {
	start := n.StartPoint()
	d := &TypeDecl{
		Kind:      kind,
		Name:      identifier(n, src),
		Pos:       Position{Line: int(start.Row) + 1, Column: int(start.Column) + 1},
		Span:      member.Span{Start: int(n.StartByte()), End: int(n.EndByte())},
		Depth:     depth,
		HasErrors: n.HasError(),
	}

	body := n.ChildByFieldName("body")
	if body == nil {
		body = firstNamedChildOfType(n, "declaration_list")
	}
	if body == nil {
		return d
	}

	d.Body = innerSpan(body, src)
	for i := 0; i < int(body.NamedChildCount()); i++ {
		child := body.NamedChild(i)
		if isTriviaNode(child.Type()) {
			continue
		}
		d.Members = append(d.Members, newMember(child, src))
	}
	attachTrivia(src, d.Body, d.Members)
	return d
}

func newMember(n *sitter.Node, src []byte) *member.Member {
	kind, ok := declKind(n, memberKinds)
	if !ok {
		kind = member.KindOther
	}

	m := &member.Member{
		Kind:      kind,
		NodeType:  n.Type(),
		Modifiers: modifiers(n, src),
		Text:      n.Content(src),
		Span:      member.Span{Start: int(n.StartByte()), End: int(n.EndByte())},
	}

	switch {
	case kind.IsFieldLike():
		m.Variables = variables(n, src)
	case kind == member.KindIndexer, kind == member.KindOther:
	default:
		m.Identifier = identifier(n, src)
	}
	return m
}

func modifiers(n *sitter.Node, src []byte) member.Modifiers {
	var mods member.Modifiers
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		if child.Type() == "modifier" {
			mods |= member.ParseModifier(child.Content(src))
		}
	}
	return mods
}

func identifier(n *sitter.Node, src []byte) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Content(src)
	}
	if id := firstNamedChildOfType(n, "identifier"); id != nil {
		return id.Content(src)
	}
	return ""
}

func variables(n *sitter.Node, src []byte) []string {
	decl := firstNamedChildOfType(n, "variable_declaration")
	if decl == nil {
		return nil
	}
	var names []string
	for i := 0; i < int(decl.NamedChildCount()); i++ {
		child := decl.NamedChild(i)
		if child.Type() != "variable_declarator" {
			continue
		}
		if name := identifier(child, src); name != "" {
			names = append(names, name)
		}
	}
	return names
}

func firstNamedChildOfType(n *sitter.Node, typ string) *sitter.Node {
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == typ {
			return child
		}
	}
	return nil
}

func hasToken(n *sitter.Node, token string) bool {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if !child.IsNamed() && child.Type() == token {
			return true
		}
	}
	return false
}

// isTriviaNode reports node types that the C# compiler treats as trivia:
// comments and preprocessor directives.
func isTriviaNode(typ string) bool {
	return typ == "comment" ||
		strings.HasPrefix(typ, "preproc") ||
		strings.HasSuffix(typ, "_directive")
}

// innerSpan returns the span between a body's braces.
func innerSpan(body *sitter.Node, src []byte) member.Span {
	s := member.Span{Start: int(body.StartByte()), End: int(body.EndByte())}
	if s.Len() >= 2 && src[s.Start] == '{' && src[s.End-1] == '}' {
		s.Start++
		s.End--
	}
	return s
}
