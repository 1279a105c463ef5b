package check

import (
	"fmt"

	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// Violation is a single finding. It is never mutated after creation.
type Violation struct {
	Span     syntax.Span
	Message  string
	Severity Severity
	Producer Identity
}

func (v Violation) String() string {
	return fmt.Sprintf("%s: %s", v.Span, v.Message)
}

// Context is handed to a check's callbacks for one file. Violations reported
// through it are attributed to that check.
type Context struct {
	File *syntax.File

	producer   Identity
	severity   Severity
	violations []Violation
}

// NewContext returns a Context reporting on behalf of c.
func NewContext(file *syntax.File, c Check) *Context {
	return &Context{File: file, producer: c.Identity(), severity: c.Severity()}
}

// Report records a violation at span.
func (c *Context) Report(span syntax.Span, msg string) {
	c.violations = append(c.violations, Violation{
		Span:     span,
		Message:  msg,
		Severity: c.severity,
		Producer: c.producer,
	})
}

// Reportf records a formatted violation at span.
func (c *Context) Reportf(span syntax.Span, format string, args ...any) {
	c.Report(span, fmt.Sprintf(format, args...))
}

// Violations returns what was reported so far, in report order.
func (c *Context) Violations() []Violation {
	return c.violations
}
