package checks

import (
	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// declNames returns the name identifiers of a declaration.
func declNames(n *syntax.Node) []*syntax.Node {
	return n.ChildrenOf(syntax.KindIdent)
}

// hasAnnotation reports whether a declaration carries one of the named
// annotations, either directly or inside a modifier list.
func hasAnnotation(n *syntax.Node, names ...string) bool {
	for _, c := range n.Children {
		switch c.Kind {
		case syntax.KindAnnotation:
			if matchesAny(c.Text, names) {
				return true
			}
		case syntax.KindOther:
			for _, a := range c.ChildrenOf(syntax.KindAnnotation) {
				if matchesAny(a.Text, names) {
					return true
				}
			}
		}
	}
	return false
}

func matchesAny(s string, names []string) bool {
	for _, n := range names {
		if s == n {
			return true
		}
	}
	return false
}

func packageName(ctx *check.Context) string {
	if ctx.File == nil || ctx.File.Root == nil {
		return ""
	}
	return ctx.File.Root.Text
}
