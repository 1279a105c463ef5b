package filters

import (
	"strings"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/directives/ignore"
	"github.com/thanujayalath/checkstyle/internal/directives/suppress"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// IgnoreCommentTypeName is the registered module type of [IgnoreComment].
const IgnoreCommentTypeName = "SuppressWithNearbyCommentFilter"

// IgnoreComment drops violations on the line of, or the line after, a
// //checkstyle:ignore comment naming their producer.
type IgnoreComment struct {
	reportUnused bool
	aliases      *suppress.AliasTable
	ignores      ignore.Map
}

// NewIgnoreComment returns the filter. With reportUnused, directives that
// suppressed nothing are reported as warnings through Unused.
func NewIgnoreComment(reportUnused bool) *IgnoreComment {
	return &IgnoreComment{reportUnused: reportUnused}
}

// Bind implements Binder. Only the alias table is used.
func (f *IgnoreComment) Bind(entries *suppress.Entries) {
	f.aliases = entries.Aliases()
}

// BeginFile implements FileFilter.
func (f *IgnoreComment) BeginFile(file *syntax.File) {
	f.ignores = ignore.Build(file)
}

// Accept implements Filter.
func (f *IgnoreComment) Accept(v check.Violation) bool {
	if len(f.ignores) == 0 {
		return true
	}
	return !f.ignores.ShouldIgnore(v.Span.Line, f.aliases.Names(v.Producer))
}

// Unused implements UnusedReporter.
func (f *IgnoreComment) Unused() []check.Violation {
	if !f.reportUnused {
		return nil
	}

	producer := check.Identity{Type: IgnoreCommentTypeName}
	var out []check.Violation
	for _, u := range f.ignores.GetUnusedIgnores() {
		msg := "unused checkstyle:ignore directive"
		if len(u.Checkers) > 0 {
			msg += " for check(s): " + strings.Join(u.Checkers, ", ")
		}
		out = append(out, check.Violation{
			Span:     u.Span,
			Message:  msg,
			Severity: check.SeverityWarning,
			Producer: producer,
		})
	}
	return out
}
