package filters

import (
	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/directives/suppress"
)

// SuppressWarningsTypeName is the registered module type of [SuppressWarnings].
const SuppressWarningsTypeName = "SuppressWarningsFilter"

// SuppressWarnings drops violations covered by a suppression marker.
//
// Until it is bound to the entries of a [suppress.Scanner] it accepts every
// violation.
type SuppressWarnings struct {
	entries *suppress.Entries
}

// NewSuppressWarnings returns an unbound filter.
func NewSuppressWarnings() *SuppressWarnings {
	return &SuppressWarnings{}
}

// Bind implements Binder.
func (f *SuppressWarnings) Bind(entries *suppress.Entries) {
	f.entries = entries
}

// Accept implements Filter. It returns false iff an entry names the producer
// of v (see [suppress.AliasTable.Matches]) and covers the span of v.
func (f *SuppressWarnings) Accept(v check.Violation) bool {
	if f.entries.Len() == 0 {
		return true
	}

	aliases := f.entries.Aliases()
	for _, e := range f.entries.All() {
		if e.Covered.Contains(v.Span) && aliases.Matches(v.Producer, e.Target) {
			return false
		}
	}
	return true
}
