// Package suppress records in-source suppression markers.
//
// # Markers
//
// A marker is an annotation attached to a declaration:
//
//	@SuppressWarnings("membername")
//	@SuppressWarnings({"checkstyle:paramnum", "all"})
//
//	//checkstyle:suppress membername,paramnum
//	func f(...) {}
//
// Each string argument becomes an [Entry] covering the span of the annotated
// declaration. The "checkstyle:" prefix is optional; "all" suppresses every
// check.
//
// # Lifetime
//
// The [Scanner] is a check. It records into an [Entries] value that is reset
// at the start of every file and read by the suppression filter bound to the
// same pipeline run.
package suppress

import (
	"strings"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// TypeName is the registered module type of the scanner.
const TypeName = "SuppressWarningsHolder"

// Markers are the annotation names recognised as suppression markers.
var Markers = []string{
	"SuppressWarnings",
	"java.lang.SuppressWarnings",
	"checkstyle:suppress",
}

const argPrefix = "checkstyle:"

// Scanner records suppression entries for the declarations it sees.
type Scanner struct {
	check.Base
	entries *Entries
	decls   []*syntax.Node
}

// NewScanner returns a scanner resolving arguments through aliases.
func NewScanner(base check.Base, aliases *AliasTable) *Scanner {
	return &Scanner{Base: base, entries: NewEntries(aliases)}
}

// Entries returns the file-scoped entry set.
func (s *Scanner) Entries() *Entries {
	return s.entries
}

// Kinds implements check.Check.
func (s *Scanner) Kinds() []syntax.Kind {
	return append(syntax.DeclKinds(), syntax.KindAnnotation)
}

// BeginFile implements check.BeginFiler.
func (s *Scanner) BeginFile(*check.Context) {
	s.entries.Reset()
	s.decls = s.decls[:0]
}

// Enter implements check.Enterer.
func (s *Scanner) Enter(_ *check.Context, n *syntax.Node) {
	if n.Kind.IsDecl() {
		s.decls = append(s.decls, n)
		return
	}
	if n.Kind != syntax.KindAnnotation || !IsMarker(n.Text) || len(s.decls) == 0 {
		return
	}

	covered := s.decls[len(s.decls)-1].Span
	for _, arg := range Arguments(n) {
		s.entries.Add(Entry{Target: s.resolve(arg), Covered: covered})
	}
}

// Leave implements check.Leaver.
func (s *Scanner) Leave(_ *check.Context, n *syntax.Node) {
	if n.Kind.IsDecl() && len(s.decls) > 0 {
		s.decls = s.decls[:len(s.decls)-1]
	}
}

func (s *Scanner) resolve(arg string) string {
	if arg == Wildcard {
		return Wildcard
	}
	return s.entries.Aliases().Resolve(arg)
}

// IsMarker reports whether an annotation name is a suppression marker.
func IsMarker(name string) bool {
	for _, m := range Markers {
		if name == m {
			return true
		}
	}
	return false
}

// Arguments returns the string arguments of a marker annotation with
// surrounding space and the "checkstyle:" prefix removed. Empty arguments
// are dropped.
func Arguments(annotation *syntax.Node) []string {
	var args []string
	syntax.Inspect(annotation, func(n *syntax.Node) bool {
		if n.Kind != syntax.KindString {
			return true
		}
		arg := strings.TrimSpace(n.Text)
		arg = strings.TrimPrefix(arg, argPrefix)
		if arg != "" {
			args = append(args, arg)
		}
		return false
	})
	return args
}
