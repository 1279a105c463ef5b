package checks

import (
	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/registry"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

const JavadocTypeTypeName = "javadoc.JavadocTypeCheck"

// JavadocType reports type declarations without a doc comment.
type JavadocType struct {
	check.Base
}

// Kinds implements check.Check.
func (c *JavadocType) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindTypeDef}
}

// Enter implements check.Enterer.
func (c *JavadocType) Enter(ctx *check.Context, n *syntax.Node) {
	if n.Child(syntax.KindDoc) == nil {
		ctx.Report(syntax.LineSpan(n.Span.Line), "Missing a Javadoc comment.")
	}
}

func newJavadocType(m *config.Module) (check.Check, error) {
	base, err := registry.Base(JavadocTypeTypeName, m)
	if err != nil {
		return nil, err
	}
	return &JavadocType{Base: base}, nil
}
