// Package check defines the contract every check implements and the
// violation, identity and severity types shared by checks and filters.
package check

import (
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// Check is a pluggable unit of analysis driven by the tree walker.
//
// Kinds is queried once before a walk and must not change during it. The
// file hooks and node callbacks are optional: a check implements whichever
// of [BeginFiler], [Enterer], [Leaver] and [EndFiler] it needs.
type Check interface {
	Identity() Identity
	Severity() Severity
	Kinds() []syntax.Kind
}

// BeginFiler is called before traversal. Per-file state must be reset here.
type BeginFiler interface {
	BeginFile(ctx *Context)
}

// Enterer is called when an interesting node is entered.
type Enterer interface {
	Enter(ctx *Context, n *syntax.Node)
}

// Leaver is called after all children of an interesting node were visited.
type Leaver interface {
	Leave(ctx *Context, n *syntax.Node)
}

// EndFiler is called after traversal.
type EndFiler interface {
	EndFile(ctx *Context)
}

// Base carries the identity and severity of a configured check. Embed it to
// satisfy the Identity and Severity methods of [Check].
type Base struct {
	id       Identity
	severity Severity
}

// NewBase returns a Base for a check of the given registered type.
func NewBase(typeName, id string, severity Severity) Base {
	return Base{id: Identity{Type: typeName, ID: id}, severity: severity}
}

// Identity returns the check identity.
func (b Base) Identity() Identity { return b.id }

// Severity returns the configured severity.
func (b Base) Severity() Severity { return b.severity }
