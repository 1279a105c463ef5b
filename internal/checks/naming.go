package checks

import (
	"regexp"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/registry"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

const (
	MemberNameTypeName   = "naming.MemberNameCheck"
	ConstantNameTypeName = "naming.ConstantNameCheck"

	DefaultMemberNameFormat   = `^[a-z][a-zA-Z0-9]*$`
	DefaultConstantNameFormat = `^[A-Z][A-Z0-9]*(_[A-Z0-9]+)*$`
)

// Name reports declared names of one kind that do not match a pattern.
type Name struct {
	check.Base
	kind   syntax.Kind
	format *regexp.Regexp
}

// NewMemberName checks field names.
func NewMemberName(base check.Base, format *regexp.Regexp) *Name {
	return &Name{Base: base, kind: syntax.KindFieldDef, format: format}
}

// NewConstantName checks constant names.
func NewConstantName(base check.Base, format *regexp.Regexp) *Name {
	return &Name{Base: base, kind: syntax.KindConstDef, format: format}
}

// Kinds implements check.Check.
func (c *Name) Kinds() []syntax.Kind {
	return []syntax.Kind{c.kind}
}

// Enter implements check.Enterer.
func (c *Name) Enter(ctx *check.Context, n *syntax.Node) {
	for _, id := range declNames(n) {
		if !c.format.MatchString(id.Text) {
			ctx.Reportf(id.Span, "Name '%s' must match pattern '%s'.", id.Text, c.format)
		}
	}
}

func newNameFactory(typeName, defaultFormat string, build func(check.Base, *regexp.Regexp) *Name) registry.CheckFactory {
	return func(m *config.Module) (check.Check, error) {
		base, err := registry.Base(typeName, m)
		if err != nil {
			return nil, err
		}
		format, err := m.Regexp("format", defaultFormat)
		if err != nil {
			return nil, err
		}
		return build(base, format), nil
	}
}
