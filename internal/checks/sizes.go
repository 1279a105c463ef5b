package checks

import (
	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/registry"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

const (
	ParameterNumberTypeName = "sizes.ParameterNumberCheck"
	FileLengthTypeName      = "sizes.FileLengthCheck"

	DefaultMaxParameters = 7
	DefaultMaxFileLength = 2000
)

// ParameterNumber reports methods and constructors declaring more than Max
// parameters.
type ParameterNumber struct {
	check.Base
	Max              int
	IgnoreOverridden bool
}

// Kinds implements check.Check.
func (c *ParameterNumber) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindMethodDef, syntax.KindCtorDef}
}

// Enter implements check.Enterer.
func (c *ParameterNumber) Enter(ctx *check.Context, n *syntax.Node) {
	count := len(n.ChildrenOf(syntax.KindParameter))
	if count <= c.Max {
		return
	}
	if c.IgnoreOverridden && hasAnnotation(n, "Override", "java.lang.Override") {
		return
	}

	span := n.Span
	if names := declNames(n); len(names) > 0 {
		span = names[0].Span
	}
	ctx.Reportf(span, "More than %d parameters (found %d).", c.Max, count)
}

func newParameterNumber(m *config.Module) (check.Check, error) {
	base, err := registry.Base(ParameterNumberTypeName, m)
	if err != nil {
		return nil, err
	}
	limit, err := m.Int("max", DefaultMaxParameters)
	if err != nil {
		return nil, err
	}
	ignoreOverridden, err := m.Bool("ignoreOverridden", false)
	if err != nil {
		return nil, err
	}
	return &ParameterNumber{Base: base, Max: limit, IgnoreOverridden: ignoreOverridden}, nil
}

// FileLength reports files with more than Max lines.
type FileLength struct {
	check.Base
	Max int
}

// Kinds implements check.Check.
func (c *FileLength) Kinds() []syntax.Kind {
	return []syntax.Kind{syntax.KindFile}
}

// Enter implements check.Enterer.
func (c *FileLength) Enter(ctx *check.Context, _ *syntax.Node) {
	if lines := ctx.File.Lines; lines > c.Max {
		ctx.Reportf(syntax.LineSpan(1), "File length is %d lines (max allowed is %d).", lines, c.Max)
	}
}

func newFileLength(m *config.Module) (check.Check, error) {
	base, err := registry.Base(FileLengthTypeName, m)
	if err != nil {
		return nil, err
	}
	limit, err := m.Int("max", DefaultMaxFileLength)
	if err != nil {
		return nil, err
	}
	return &FileLength{Base: base, Max: limit}, nil
}
