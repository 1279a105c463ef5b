// Package syntax defines the language-neutral syntax tree shared by the
// front ends, the tree walker and every check.
package syntax

import "fmt"

// Span is a location or region in a source file.
//
// Lines and columns are 1-based. A zero Col or EndCol means the span carries
// no column information for that boundary, and a zero EndLine means the span
// ends on Line. A span with only Line set denotes a whole line.
type Span struct {
	Line    int
	Col     int
	EndLine int
	EndCol  int
}

// LineSpan returns a whole-line span.
func LineSpan(line int) Span {
	return Span{Line: line}
}

// At returns a single-point span.
func At(line, col int) Span {
	return Span{Line: line, Col: col}
}

// Last returns the last line covered by the span.
func (s Span) Last() int {
	if s.EndLine == 0 {
		return s.Line
	}
	return s.EndLine
}

// HasColumn reports whether the start of the span carries a column.
func (s Span) HasColumn() bool {
	return s.Col > 0
}

// Contains reports whether inner starts within s.
//
// Line containment is always required. Column bounds are applied only on the
// boundary lines of s, and only when both s and inner carry a column there.
func (s Span) Contains(inner Span) bool {
	if inner.Line < s.Line || inner.Line > s.Last() {
		return false
	}
	if inner.Col == 0 {
		return true
	}
	if inner.Line == s.Line && s.Col > 0 && inner.Col < s.Col {
		return false
	}
	if inner.Line == s.Last() && s.EndCol > 0 && inner.Col > s.EndCol {
		return false
	}
	return true
}

// Before reports whether s starts before other. Spans without a column
// sort before spans with one on the same line.
func (s Span) Before(other Span) bool {
	if s.Line != other.Line {
		return s.Line < other.Line
	}
	return s.Col < other.Col
}

func (s Span) String() string {
	if s.Col == 0 {
		return fmt.Sprintf("%d", s.Line)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Col)
}
