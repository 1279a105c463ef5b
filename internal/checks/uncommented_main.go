package checks

import (
	"regexp"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/registry"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

const UncommentedMainTypeName = "UncommentedMainCheck"

// UncommentedMain reports main functions left in code that is not a program
// entry point: any package other than "main" whose name does not match
// ExcludedPackages.
type UncommentedMain struct {
	check.Base
	ExcludedPackages *regexp.Regexp

	skipFile bool
}

// Kinds implements check.Check.
func (c *UncommentedMain) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindMethodDef}
}

// BeginFile implements check.BeginFiler.
func (c *UncommentedMain) BeginFile(ctx *check.Context) {
	pkg := packageName(ctx)
	c.skipFile = pkg == "main" || (pkg != "" && c.ExcludedPackages.MatchString(pkg))
}

// Enter implements check.Enterer.
func (c *UncommentedMain) Enter(ctx *check.Context, n *syntax.Node) {
	if c.skipFile || n.Text != "main" {
		return
	}
	ctx.Report(syntax.LineSpan(n.Span.Line), "Uncommented main method found.")
}

func newUncommentedMain(m *config.Module) (check.Check, error) {
	base, err := registry.Base(UncommentedMainTypeName, m)
	if err != nil {
		return nil, err
	}
	excluded, err := m.Regexp("excludedPackages", "^$")
	if err != nil {
		return nil, err
	}
	return &UncommentedMain{Base: base, ExcludedPackages: excluded}, nil
}
