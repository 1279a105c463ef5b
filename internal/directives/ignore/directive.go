// Package ignore handles //checkstyle:ignore directives.
package ignore

import (
	"slices"
	"strings"

	"github.com/thanujayalath/checkstyle/internal/syntax"
)

const prefix = "checkstyle:ignore"

// Entry tracks an ignore directive and its usage.
type Entry struct {
	span     syntax.Span     // Position of the ignore comment
	checkers []string        // List of check names (empty = all)
	used     map[string]bool // Track usage per check name
	usedAny  bool
}

// Map tracks ignore entries by line number.
type Map map[int]*Entry

// Build scans a file's comments for ignore directives and returns a map.
func Build(file *syntax.File) Map {
	m := make(Map)

	for _, c := range file.Comments {
		if checkers, ok := parseIgnoreComment(c.Body()); ok {
			m[c.Span.Line] = &Entry{
				span:     c.Span,
				checkers: checkers,
				used:     make(map[string]bool),
			}
		}
	}

	return m
}

// parseIgnoreComment parses an ignore directive and returns the check names.
// Returns nil slice if no specific checks are specified (ignore all).
// Returns false if not an ignore comment.
//
// Supported formats:
//   - //checkstyle:ignore                          -> ignore all checks
//   - //checkstyle:ignore membername               -> ignore specific check
//   - //checkstyle:ignore membername,paramnum      -> ignore multiple checks
//   - //checkstyle:ignore - reason                 -> ignore all with comment
//   - //checkstyle:ignore membername - reason      -> ignore specific with comment
func parseIgnoreComment(text string) ([]string, bool) {
	text = strings.TrimSpace(text)

	if !strings.HasPrefix(text, prefix) {
		return nil, false
	}

	rest := strings.TrimPrefix(text, prefix)
	if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
		return nil, false // e.g. checkstyle:ignored
	}
	rest = strings.TrimSpace(rest)

	if rest == "" || strings.HasPrefix(rest, "//") {
		return nil, true
	}

	// Stop at comment markers: " - ", " // ", or " //"
	if idx := strings.Index(rest, " - "); idx >= 0 {
		rest = rest[:idx]
	}
	if idx := strings.Index(rest, " //"); idx >= 0 {
		rest = rest[:idx]
	}
	if strings.HasPrefix(rest, "- ") || rest == "-" {
		return nil, true
	}

	rest = strings.TrimSpace(rest)
	if rest == "" {
		return nil, true
	}

	parts := strings.Split(rest, ",")
	checkers := make([]string, 0, len(parts))

	for _, part := range parts {
		name := strings.TrimSpace(part)
		if name != "" {
			checkers = append(checkers, name)
		}
	}

	return checkers, true
}

// ShouldIgnore returns true if the given line should be ignored for a check
// known under any of names. It checks if the same line or the previous line
// has an ignore comment. When an ignore is used, it marks the entry as used.
func (m Map) ShouldIgnore(line int, names []string) bool {
	if m.shouldIgnoreEntry(m[line], names) {
		return true
	}
	if m.shouldIgnoreEntry(m[line-1], names) {
		return true
	}

	return false
}

// shouldIgnoreEntry checks if an entry ignores a check known under names.
func (m Map) shouldIgnoreEntry(entry *Entry, names []string) bool {
	if entry == nil {
		return false
	}

	// Empty checkers list means ignore all
	if len(entry.checkers) == 0 {
		entry.usedAny = true
		return true
	}

	for _, c := range entry.checkers {
		for _, name := range names {
			if c == name {
				entry.used[c] = true
				entry.usedAny = true
				return true
			}
		}
	}

	return false
}

// Unused represents an unused ignore directive.
type Unused struct {
	Span     syntax.Span
	Checkers []string // Unused check names (empty if entire directive is unused)
}

// GetUnusedIgnores returns ignore directives that were not used, in line
// order.
func (m Map) GetUnusedIgnores() []Unused {
	var unused []Unused

	for _, line := range m.lines() {
		entry := m[line]
		if len(entry.checkers) == 0 {
			if !entry.usedAny {
				unused = append(unused, Unused{Span: entry.span})
			}
			continue
		}

		var unusedCheckers []string
		for _, c := range entry.checkers {
			if !entry.used[c] {
				unusedCheckers = append(unusedCheckers, c)
			}
		}
		if len(unusedCheckers) > 0 {
			unused = append(unused, Unused{
				Span:     entry.span,
				Checkers: unusedCheckers,
			})
		}
	}

	return unused
}

func (m Map) lines() []int {
	lines := make([]int, 0, len(m))
	for line := range m {
		lines = append(lines, line)
	}
	slices.Sort(lines)
	return lines
}
