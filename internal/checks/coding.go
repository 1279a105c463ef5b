package checks

import (
	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/registry"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

const IllegalCatchTypeName = "coding.IllegalCatchCheck"

// DefaultIllegalClassNames are the catch types reported by default.
var DefaultIllegalClassNames = []string{"Error", "Exception", "RuntimeException", "Throwable"}

// IllegalCatch reports catch clauses naming a type in Illegal. Qualified
// names are compared by their simple name.
type IllegalCatch struct {
	check.Base
	Illegal map[string]bool
}

// Kinds implements check.Check.
func (c *IllegalCatch) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindCatch}
}

// Enter implements check.Enterer.
func (c *IllegalCatch) Enter(ctx *check.Context, n *syntax.Node) {
	for _, t := range n.ChildrenOf(syntax.KindIdent) {
		if c.Illegal[check.SimpleName(t.Text)] {
			ctx.Reportf(n.Span, "Catching '%s' is not allowed.", t.Text)
		}
	}
}

func newIllegalCatch(m *config.Module) (check.Check, error) {
	base, err := registry.Base(IllegalCatchTypeName, m)
	if err != nil {
		return nil, err
	}
	illegal := make(map[string]bool)
	for _, name := range m.List("illegalClassNames", DefaultIllegalClassNames...) {
		illegal[check.SimpleName(name)] = true
	}
	return &IllegalCatch{Base: base, Illegal: illegal}, nil
}
