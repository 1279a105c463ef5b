package check

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// Severity is the level attached to a violation.
type Severity uint8

const (
	SeverityError Severity = iota
	SeverityWarning
	SeverityInfo
	// SeverityIgnore violations are produced but never reported.
	SeverityIgnore
)

// ErrUnknownSeverity is returned by [ParseSeverity].
var ErrUnknownSeverity = errors.New("unknown severity")

func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	case SeverityInfo:
		return "info"
	case SeverityIgnore:
		return "ignore"
	}
	return "unknown"
}

// ParseSeverity parses a severity name, case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "error":
		return SeverityError, nil
	case "warning", "warn":
		return SeverityWarning, nil
	case "info":
		return SeverityInfo, nil
	case "ignore":
		return SeverityIgnore, nil
	}
	return 0, errors.Wrapf(ErrUnknownSeverity, "%q", s)
}
