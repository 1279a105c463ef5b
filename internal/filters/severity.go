package filters

import "github.com/thanujayalath/checkstyle/internal/check"

// SeverityMatchTypeName is the registered module type of [SeverityMatch].
const SeverityMatchTypeName = "SeverityMatchFilter"

// SeverityMatch drops violations of one severity, or with AcceptOnMatch
// keeps only those.
type SeverityMatch struct {
	Severity      check.Severity
	AcceptOnMatch bool
}

// Accept implements Filter.
func (f SeverityMatch) Accept(v check.Violation) bool {
	return (v.Severity == f.Severity) == f.AcceptOnMatch
}
