// Package javasrc converts Java source into the engine's syntax tree using
// the tree-sitter Java grammar.
package javasrc

import (
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"

	"github.com/thanujayalath/checkstyle/internal/syntax"
)

var typeDecls = map[string]bool{
	"class_declaration":           true,
	"interface_declaration":       true,
	"enum_declaration":            true,
	"record_declaration":          true,
	"annotation_type_declaration": true,
}

// ParseFile parses Java source and converts it. Source with syntax errors
// is rejected with an error marked syntax.ErrParse.
func ParseFile(ctx context.Context, filename string, src []byte) (*syntax.File, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, src)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %s", filename), syntax.ErrParse)
	}
	defer tree.Close()

	root := tree.RootNode()
	if root.HasError() {
		return nil, errors.Mark(errors.Newf("%s:%s: syntax error", filename, firstError(root)), syntax.ErrParse)
	}

	c := &converter{src: src}
	lines := countLines(src)
	out := &syntax.File{Name: filename, Lines: lines}
	out.Root = &syntax.Node{
		Kind:     syntax.KindFile,
		Text:     packageName(root, src),
		Span:     syntax.Span{Line: 1, Col: 1, EndLine: max(lines, 1)},
		Children: c.children(root),
	}
	out.Comments = c.comments
	return out, nil
}

func countLines(src []byte) int {
	n := bytes.Count(src, []byte("\n"))
	if len(src) > 0 && src[len(src)-1] != '\n' {
		n++
	}
	return n
}

func firstError(n *sitter.Node) syntax.Span {
	if n.IsError() || n.IsMissing() {
		return syntax.At(int(n.StartPoint().Row)+1, int(n.StartPoint().Column)+1)
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		if c := n.Child(i); c.HasError() || c.IsMissing() {
			return firstError(c)
		}
	}
	return syntax.At(int(n.StartPoint().Row)+1, int(n.StartPoint().Column)+1)
}

func packageName(root *sitter.Node, src []byte) string {
	for i := 0; i < int(root.NamedChildCount()); i++ {
		decl := root.NamedChild(i)
		if decl.Type() != "package_declaration" {
			continue
		}
		for j := 0; j < int(decl.NamedChildCount()); j++ {
			switch name := decl.NamedChild(j); name.Type() {
			case "identifier", "scoped_identifier":
				return name.Content(src)
			}
		}
	}
	return ""
}

type converter struct {
	src      []byte
	comments []syntax.Comment
}

// span covers n from its first character to its last, inclusive.
func (c *converter) span(n *sitter.Node) syntax.Span {
	start, end := n.StartPoint(), n.EndPoint()
	return syntax.Span{
		Line:    int(start.Row) + 1,
		Col:     int(start.Column) + 1,
		EndLine: int(end.Row) + 1,
		EndCol:  max(int(end.Column), 1),
	}
}

func (c *converter) leaf(kind syntax.Kind, n *sitter.Node) *syntax.Node {
	return &syntax.Node{Kind: kind, Text: n.Content(c.src), Span: c.span(n)}
}

func (c *converter) nameOf(n *sitter.Node) string {
	if name := n.ChildByFieldName("name"); name != nil {
		return name.Content(c.src)
	}
	return ""
}

// children converts the named children of n in order. A Javadoc comment
// becomes a Doc child of the declaration that follows it.
func (c *converter) children(n *sitter.Node) []*syntax.Node {
	var out []*syntax.Node
	var doc *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "line_comment", "block_comment", "comment":
			c.comments = append(c.comments, syntax.Comment{Span: c.span(child), Text: child.Content(c.src)})
			if isJavadoc(child.Content(c.src)) {
				doc = child
			}
			continue
		}

		converted := c.node(child)
		if doc != nil && len(converted) == 1 && converted[0].Kind.IsDecl() {
			d := c.leaf(syntax.KindDoc, doc)
			converted[0].Children = append([]*syntax.Node{d}, converted[0].Children...)
		}
		doc = nil
		out = append(out, converted...)
	}
	return out
}

func isJavadoc(text string) bool {
	return strings.HasPrefix(text, "/**") && text != "/**/"
}

func (c *converter) node(n *sitter.Node) []*syntax.Node {
	typ := n.Type()
	switch {
	case typeDecls[typ]:
		return c.decl(syntax.KindTypeDef, n)
	case typ == "method_declaration", typ == "annotation_type_element_declaration":
		return c.decl(syntax.KindMethodDef, n)
	case typ == "constructor_declaration", typ == "compact_constructor_declaration":
		return c.decl(syntax.KindCtorDef, n)
	case typ == "field_declaration":
		kind := syntax.KindFieldDef
		if hasModifiers(n, "static", "final") {
			kind = syntax.KindConstDef
		}
		return c.field(kind, n)
	case typ == "constant_declaration":
		return c.field(syntax.KindConstDef, n)
	case typ == "local_variable_declaration":
		return c.field(syntax.KindVarDef, n)
	case typ == "enum_constant":
		return c.decl(syntax.KindVarDef, n)
	case typ == "formal_parameters":
		// Parameters become direct children of their method.
		return c.children(n)
	case typ == "formal_parameter", typ == "spread_parameter":
		return c.param(n)
	case typ == "variable_declarator":
		return c.declarator(n)
	case typ == "marker_annotation", typ == "annotation":
		return []*syntax.Node{c.annotation(n)}
	case typ == "catch_clause":
		return []*syntax.Node{c.catch(n)}
	case typ == "identifier":
		return []*syntax.Node{c.leaf(syntax.KindIdent, n)}
	case typ == "string_literal":
		s := c.leaf(syntax.KindString, n)
		s.Text = unquote(s.Text)
		return []*syntax.Node{s}
	case typ == "block", typ == "constructor_body":
		return []*syntax.Node{{Kind: syntax.KindBlock, Span: c.span(n), Children: c.children(n)}}
	}
	return []*syntax.Node{{Kind: syntax.KindOther, Span: c.span(n), Children: c.children(n)}}
}

func (c *converter) decl(kind syntax.Kind, n *sitter.Node) []*syntax.Node {
	return []*syntax.Node{{Kind: kind, Text: c.nameOf(n), Span: c.span(n), Children: c.children(n)}}
}

// field converts a field or constant declaration. Each declarator
// contributes its name as a direct Ident child.
func (c *converter) field(kind syntax.Kind, n *sitter.Node) []*syntax.Node {
	out := &syntax.Node{Kind: kind, Span: c.span(n), Children: c.children(n)}
	if id := out.Child(syntax.KindIdent); id != nil {
		out.Text = id.Text
	}
	return []*syntax.Node{out}
}

func (c *converter) param(n *sitter.Node) []*syntax.Node {
	out := &syntax.Node{Kind: syntax.KindParameter, Span: c.span(n), Children: c.children(n)}
	if id := out.Child(syntax.KindIdent); id != nil {
		out.Text = id.Text
	}
	return []*syntax.Node{out}
}

// declarator flattens a variable declarator into its name and an Other node
// wrapping the initializer, so that identifiers in the initializer never
// appear as names of the declaration.
func (c *converter) declarator(n *sitter.Node) []*syntax.Node {
	var out []*syntax.Node
	if name := n.ChildByFieldName("name"); name != nil {
		out = append(out, c.leaf(syntax.KindIdent, name))
	}
	if value := n.ChildByFieldName("value"); value != nil {
		out = append(out, &syntax.Node{Kind: syntax.KindOther, Span: c.span(value), Children: c.node(value)})
	}
	return out
}

// annotation keeps the annotation name and every string literal among its
// arguments, in source order.
func (c *converter) annotation(n *sitter.Node) *syntax.Node {
	out := &syntax.Node{Kind: syntax.KindAnnotation, Span: c.span(n)}
	if name := n.ChildByFieldName("name"); name != nil {
		out.Text = name.Content(c.src)
	}
	if args := n.ChildByFieldName("arguments"); args != nil {
		c.strings(args, out)
	}
	return out
}

func (c *converter) strings(n *sitter.Node, into *syntax.Node) {
	if n.Type() == "string_literal" {
		into.Children = append(into.Children, c.node(n)...)
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		c.strings(n.NamedChild(i), into)
	}
}

// catch converts a catch clause into a Catch node whose Ident children name
// the caught types.
func (c *converter) catch(n *sitter.Node) *syntax.Node {
	out := &syntax.Node{Kind: syntax.KindCatch, Span: c.span(n)}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		child := n.NamedChild(i)
		switch child.Type() {
		case "catch_formal_parameter":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if ct := child.NamedChild(j); ct.Type() == "catch_type" {
					for k := 0; k < int(ct.NamedChildCount()); k++ {
						out.Children = append(out.Children, c.leaf(syntax.KindIdent, ct.NamedChild(k)))
					}
				}
			}
		case "line_comment", "block_comment", "comment":
			c.comments = append(c.comments, syntax.Comment{Span: c.span(child), Text: child.Content(c.src)})
		default:
			out.Children = append(out.Children, c.node(child)...)
		}
	}
	return out
}

// hasModifiers reports whether the declaration's modifier list holds every
// keyword in want.
func hasModifiers(n *sitter.Node, want ...string) bool {
	var mods *sitter.Node
	for i := 0; i < int(n.NamedChildCount()); i++ {
		if child := n.NamedChild(i); child.Type() == "modifiers" {
			mods = child
			break
		}
	}
	if mods == nil {
		return false
	}

	seen := make(map[string]bool)
	for i := 0; i < int(mods.ChildCount()); i++ {
		seen[mods.Child(i).Type()] = true
	}
	for _, w := range want {
		if !seen[w] {
			return false
		}
	}
	return true
}

func unquote(lit string) string {
	if s, err := strconv.Unquote(lit); err == nil {
		return s
	}
	return strings.Trim(lit, `"`)
}
