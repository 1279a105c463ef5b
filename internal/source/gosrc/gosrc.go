// Package gosrc converts Go syntax trees into the engine's syntax tree.
//
// Declarations map onto declaration kinds: functions and methods become
// MethodDef, constants ConstDef, variables and struct fields FieldDef, type
// specs TypeDef, and parenthesized const/var/type blocks DeclGroup. A
// declaration's doc comment becomes a Doc child unless it consists only of
// directives; each //checkstyle:suppress directive in it becomes an
// Annotation child carrying its arguments as String children.
package gosrc

import (
	"go/ast"
	"go/parser"
	"go/token"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// SuppressDirective is the doc-comment directive converted into a
// suppression marker annotation.
const SuppressDirective = "checkstyle:suppress"

// ParseFile parses Go source and converts it.
func ParseFile(filename string, src []byte) (*syntax.File, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments|parser.SkipObjectResolution)
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "parse %s", filename), syntax.ErrParse)
	}
	return Convert(fset, f), nil
}

// Convert builds the syntax tree of a parsed file. f must have been parsed
// with comments.
func Convert(fset *token.FileSet, f *ast.File) *syntax.File {
	c := &converter{fset: fset}
	tf := fset.File(f.Pos())

	out := &syntax.File{Name: tf.Name(), Lines: tf.LineCount()}
	root := &syntax.Node{
		Kind: syntax.KindFile,
		Text: f.Name.Name,
		Span: syntax.Span{Line: 1, Col: 1, EndLine: max(tf.LineCount(), 1)},
	}
	for _, d := range f.Decls {
		root.Children = append(root.Children, c.decl(d)...)
	}
	out.Root = root

	for _, cg := range f.Comments {
		for _, cm := range cg.List {
			out.Comments = append(out.Comments, syntax.Comment{Span: c.span(cm), Text: cm.Text})
		}
	}
	return out
}

type converter struct {
	fset *token.FileSet
}

func (c *converter) pos(p token.Pos) token.Position {
	return c.fset.Position(p)
}

// span covers n from its first character to its last, inclusive.
func (c *converter) span(n ast.Node) syntax.Span {
	start, end := c.pos(n.Pos()), c.pos(n.End())
	return syntax.Span{
		Line:    start.Line,
		Col:     start.Column,
		EndLine: end.Line,
		EndCol:  max(end.Column-1, 1),
	}
}

func (c *converter) ident(id *ast.Ident) *syntax.Node {
	return &syntax.Node{Kind: syntax.KindIdent, Text: id.Name, Span: c.span(id)}
}

func (c *converter) decl(d ast.Decl) []*syntax.Node {
	switch d := d.(type) {
	case *ast.FuncDecl:
		return []*syntax.Node{c.funcDecl(d)}
	case *ast.GenDecl:
		return c.genDecl(d)
	}
	return nil
}

func (c *converter) funcDecl(d *ast.FuncDecl) *syntax.Node {
	n := &syntax.Node{Kind: syntax.KindMethodDef, Text: d.Name.Name, Span: c.span(d)}
	n.Children = append(n.Children, c.doc(d.Doc)...)
	n.Children = append(n.Children, c.ident(d.Name))
	n.Children = append(n.Children, c.params(d.Type.Params)...)
	if d.Body != nil {
		n.Children = append(n.Children, &syntax.Node{Kind: syntax.KindBlock, Span: c.span(d.Body)})
	}
	return n
}

func (c *converter) params(fl *ast.FieldList) []*syntax.Node {
	if fl == nil {
		return nil
	}
	var out []*syntax.Node
	for _, f := range fl.List {
		if len(f.Names) == 0 {
			out = append(out, &syntax.Node{Kind: syntax.KindParameter, Span: c.span(f)})
			continue
		}
		for _, name := range f.Names {
			out = append(out, &syntax.Node{
				Kind:     syntax.KindParameter,
				Text:     name.Name,
				Span:     c.span(name),
				Children: []*syntax.Node{c.ident(name)},
			})
		}
	}
	return out
}

func (c *converter) genDecl(d *ast.GenDecl) []*syntax.Node {
	if d.Tok == token.IMPORT {
		return nil
	}

	if !d.Lparen.IsValid() {
		if len(d.Specs) != 1 {
			return nil
		}
		n := c.spec(d.Tok, d.Specs[0], d.Doc)
		// The keyword belongs to the declaration.
		start := c.pos(d.Pos())
		n.Span.Line, n.Span.Col = start.Line, start.Column
		return []*syntax.Node{n}
	}

	group := &syntax.Node{Kind: syntax.KindDeclGroup, Text: d.Tok.String(), Span: c.span(d)}
	group.Children = append(group.Children, c.doc(d.Doc)...)
	for _, s := range d.Specs {
		group.Children = append(group.Children, c.spec(d.Tok, s, nil))
	}
	return []*syntax.Node{group}
}

// spec converts a value or type spec. groupDoc is the doc of an
// unparenthesized declaration and takes the place of the spec's own doc.
func (c *converter) spec(tok token.Token, s ast.Spec, groupDoc *ast.CommentGroup) *syntax.Node {
	switch s := s.(type) {
	case *ast.ValueSpec:
		kind := syntax.KindFieldDef
		if tok == token.CONST {
			kind = syntax.KindConstDef
		}
		n := &syntax.Node{Kind: kind, Text: s.Names[0].Name, Span: c.span(s)}
		n.Children = append(n.Children, c.doc(firstDoc(groupDoc, s.Doc))...)
		for _, name := range s.Names {
			n.Children = append(n.Children, c.ident(name))
		}
		return n

	case *ast.TypeSpec:
		n := &syntax.Node{Kind: syntax.KindTypeDef, Text: s.Name.Name, Span: c.span(s)}
		n.Children = append(n.Children, c.doc(firstDoc(groupDoc, s.Doc))...)
		n.Children = append(n.Children, c.ident(s.Name))
		n.Children = append(n.Children, c.typeMembers(s.Type)...)
		return n
	}
	return &syntax.Node{Kind: syntax.KindOther, Span: c.span(s)}
}

func firstDoc(docs ...*ast.CommentGroup) *ast.CommentGroup {
	for _, d := range docs {
		if d != nil {
			return d
		}
	}
	return nil
}

// typeMembers converts struct fields and interface methods.
func (c *converter) typeMembers(expr ast.Expr) []*syntax.Node {
	var out []*syntax.Node
	switch t := expr.(type) {
	case *ast.StructType:
		for _, f := range t.Fields.List {
			if len(f.Names) == 0 {
				continue // embedded
			}
			n := &syntax.Node{Kind: syntax.KindFieldDef, Text: f.Names[0].Name, Span: c.span(f)}
			n.Children = append(n.Children, c.doc(f.Doc)...)
			for _, name := range f.Names {
				n.Children = append(n.Children, c.ident(name))
			}
			out = append(out, n)
		}
	case *ast.InterfaceType:
		for _, f := range t.Methods.List {
			ft, ok := f.Type.(*ast.FuncType)
			if !ok || len(f.Names) == 0 {
				continue
			}
			n := &syntax.Node{Kind: syntax.KindMethodDef, Text: f.Names[0].Name, Span: c.span(f)}
			n.Children = append(n.Children, c.doc(f.Doc)...)
			n.Children = append(n.Children, c.ident(f.Names[0]))
			n.Children = append(n.Children, c.params(ft.Params)...)
			out = append(out, n)
		}
	}
	return out
}

// doc converts a doc comment into a Doc node and suppression annotations.
func (c *converter) doc(cg *ast.CommentGroup) []*syntax.Node {
	if cg == nil {
		return nil
	}
	var out []*syntax.Node
	if text := cg.Text(); text != "" {
		out = append(out, &syntax.Node{Kind: syntax.KindDoc, Text: text, Span: c.span(cg)})
	}
	for _, cm := range cg.List {
		args, ok := parseSuppressDirective(cm.Text)
		if !ok {
			continue
		}
		span := c.span(cm)
		ann := &syntax.Node{Kind: syntax.KindAnnotation, Text: SuppressDirective, Span: span}
		for _, a := range args {
			ann.Children = append(ann.Children, &syntax.Node{Kind: syntax.KindString, Text: a, Span: span})
		}
		out = append(out, ann)
	}
	return out
}

// parseSuppressDirective parses
//
//	//checkstyle:suppress name[,name...] [- reason]
//
// Directives follow the Go convention of no space after the slashes.
func parseSuppressDirective(text string) ([]string, bool) {
	rest, ok := strings.CutPrefix(text, "//"+SuppressDirective)
	if !ok || (rest != "" && rest[0] != ' ' && rest[0] != '\t') {
		return nil, false
	}
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}

	args := strings.FieldsFunc(rest, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	return args, true
}
