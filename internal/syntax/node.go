package syntax

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrParse marks front-end failures to parse a source file.
var ErrParse = errors.New("parse error")

// Kind tags a syntax node.
type Kind uint8

// Node kinds understood by the engine. Front ends map their grammar onto
// these; anything without a mapping becomes KindOther.
const (
	KindOther Kind = iota
	KindFile
	KindDeclGroup
	KindTypeDef
	KindMethodDef
	KindCtorDef
	KindFieldDef
	KindConstDef
	KindParameter
	KindAnnotation
	KindDoc
	KindIdent
	KindString
	KindBlock
	KindCatch
	// KindVarDef is a local variable or enum constant.
	KindVarDef

	numKinds
)

var kindNames = [...]string{
	KindOther:      "Other",
	KindFile:       "File",
	KindDeclGroup:  "DeclGroup",
	KindTypeDef:    "TypeDef",
	KindMethodDef:  "MethodDef",
	KindCtorDef:    "CtorDef",
	KindFieldDef:   "FieldDef",
	KindConstDef:   "ConstDef",
	KindParameter:  "Parameter",
	KindAnnotation: "Annotation",
	KindDoc:        "Doc",
	KindIdent:      "Ident",
	KindString:     "String",
	KindBlock:      "Block",
	KindCatch:      "Catch",
	KindVarDef:     "VarDef",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsDecl reports whether nodes of this kind declare something that an
// annotation can be attached to.
func (k Kind) IsDecl() bool {
	switch k {
	case KindDeclGroup, KindTypeDef, KindMethodDef, KindCtorDef,
		KindFieldDef, KindConstDef, KindParameter, KindVarDef:
		return true
	}
	return false
}

// DeclKinds returns every declaration kind.
func DeclKinds() []Kind {
	var kinds []Kind
	for k := Kind(0); k < numKinds; k++ {
		if k.IsDecl() {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// KindSet is a set of node kinds.
type KindSet uint64

// NewKindSet returns a set holding kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Has reports whether k is in the set.
func (s KindSet) Has(k Kind) bool {
	return s&(1<<k) != 0
}

// Node is an immutable syntax tree node.
//
// Text holds the declared name for declarations, the name for identifiers
// and annotations, the unquoted value for string literals, the comment text
// for docs and the package name (if any) for files.
type Node struct {
	Kind     Kind
	Span     Span
	Text     string
	Children []*Node
}

// Child returns the first direct child of the given kind, or nil.
func (n *Node) Child(kind Kind) *Node {
	for _, c := range n.Children {
		if c.Kind == kind {
			return c
		}
	}
	return nil
}

// ChildrenOf returns the direct children of the given kind.
func (n *Node) ChildrenOf(kind Kind) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Kind == kind {
			out = append(out, c)
		}
	}
	return out
}

// Inspect traverses n depth-first in source order. If f returns false the
// children of that node are skipped.
func Inspect(n *Node, f func(*Node) bool) {
	if n == nil || !f(n) {
		return
	}
	for _, c := range n.Children {
		Inspect(c, f)
	}
}

// Comment is a source comment kept outside the tree.
type Comment struct {
	Span Span
	Text string
}

// Body returns the comment text without its delimiters.
func (c Comment) Body() string {
	t := c.Text
	switch {
	case strings.HasPrefix(t, "//"):
		return strings.TrimPrefix(t, "//")
	case strings.HasPrefix(t, "/*"):
		return strings.TrimSuffix(strings.TrimPrefix(t, "/*"), "*/")
	}
	return t
}

// File is a parsed source file.
type File struct {
	Name     string
	Root     *Node
	Comments []Comment
	Lines    int
}
