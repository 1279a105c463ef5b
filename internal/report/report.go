// Package report formats violations for terminals and logs.
package report

import (
	"cmp"
	"fmt"
	"io"
	"slices"

	"github.com/fatih/color"

	"github.com/thanujayalath/checkstyle/internal/check"
)

// Sort orders violations by line, then column. Violations at the same
// position keep their order.
func Sort(vs []check.Violation) {
	slices.SortStableFunc(vs, func(a, b check.Violation) int {
		return cmp.Or(cmp.Compare(a.Span.Line, b.Span.Line), cmp.Compare(a.Span.Col, b.Span.Col))
	})
}

// Format renders one violation as
//
//	file:line[:col]: [severity] message (name)
func Format(file string, v check.Violation) string {
	return fmt.Sprintf("%s:%s: [%s] %s (%s)", file, v.Span, v.Severity, v.Message, v.Producer.Name())
}

// Summary counts the violations printed so far.
type Summary struct {
	Files    int
	Errors   int
	Warnings int
	Infos    int
	Failed   int
}

// Printer writes violations, optionally colored by severity.
type Printer struct {
	w        io.Writer
	severity map[check.Severity]*color.Color
	location *color.Color
	failure  *color.Color
	summary  Summary
}

// NewPrinter returns a printer writing to w.
func NewPrinter(w io.Writer, colored bool) *Printer {
	p := &Printer{
		w: w,
		severity: map[check.Severity]*color.Color{
			check.SeverityError:   color.New(color.FgRed, color.Bold),
			check.SeverityWarning: color.New(color.FgYellow),
			check.SeverityInfo:    color.New(color.FgCyan),
		},
		location: color.New(color.Faint),
		failure:  color.New(color.FgMagenta),
	}
	for _, c := range p.colors() {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p *Printer) colors() []*color.Color {
	out := []*color.Color{p.location, p.failure}
	for _, c := range p.severity {
		out = append(out, c)
	}
	return out
}

// File prints the violations of one file sorted by position.
func (p *Printer) File(name string, vs []check.Violation) {
	p.summary.Files++
	sorted := slices.Clone(vs)
	Sort(sorted)
	for _, v := range sorted {
		switch v.Severity {
		case check.SeverityError:
			p.summary.Errors++
		case check.SeverityWarning:
			p.summary.Warnings++
		case check.SeverityInfo:
			p.summary.Infos++
		}
		tag := "[" + v.Severity.String() + "]"
		if c, ok := p.severity[v.Severity]; ok {
			tag = c.Sprint(tag)
		}
		fmt.Fprintf(p.w, "%s %s %s %s\n",
			p.location.Sprintf("%s:%s:", name, v.Span), tag, v.Message, p.location.Sprintf("(%s)", v.Producer.Name()))
	}
}

// Failure prints a file that could not be checked.
func (p *Printer) Failure(name string, err error) {
	p.summary.Failed++
	fmt.Fprintf(p.w, "%s %s\n", p.location.Sprintf("%s:", name), p.failure.Sprint(err))
}

// Summary returns the counts printed so far.
func (p *Printer) Summary() Summary {
	return p.summary
}

// WriteSummary prints a one-line total.
func (p *Printer) WriteSummary() {
	s := p.summary
	fmt.Fprintf(p.w, "%d file(s) checked: %d error(s), %d warning(s), %d info(s)", s.Files, s.Errors, s.Warnings, s.Infos)
	if s.Failed > 0 {
		fmt.Fprintf(p.w, ", %d file(s) failed", s.Failed)
	}
	fmt.Fprintln(p.w)
}
