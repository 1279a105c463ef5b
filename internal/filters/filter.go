// Package filters holds the filters applied to the violations of a file
// after the walk.
package filters

import (
	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/directives/suppress"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// Filter decides whether a violation is reported.
type Filter interface {
	// Accept returns false to drop v.
	Accept(v check.Violation) bool
}

// FileFilter is a filter that needs the file before filtering it.
type FileFilter interface {
	Filter
	BeginFile(file *syntax.File)
}

// Binder is a filter that reads the suppression entries recorded by the
// scanner of the same run.
type Binder interface {
	Bind(entries *suppress.Entries)
}

// UnusedReporter is a filter that reports its own unused directives after
// a file was filtered.
type UnusedReporter interface {
	Unused() []check.Violation
}

// Apply returns the violations every filter accepts, in their original
// order. Every filter is consulted for every violation, even after an
// earlier one rejected it, so filters tracking their own directives (see
// [UnusedReporter]) record each match.
func Apply(violations []check.Violation, fs []Filter) []check.Violation {
	out := make([]check.Violation, 0, len(violations))
	for _, v := range violations {
		if accepted(v, fs) {
			out = append(out, v)
		}
	}
	return out
}

func accepted(v check.Violation, fs []Filter) bool {
	ok := true
	for _, f := range fs {
		if !f.Accept(v) {
			ok = false
		}
	}
	return ok
}
