package suppress

import "github.com/thanujayalath/checkstyle/internal/syntax"

// Wildcard is the suppression target matching every check.
const Wildcard = "all"

// Entry is one recorded suppression.
type Entry struct {
	// Target is a resolved check name or [Wildcard].
	Target  string
	Covered syntax.Span
}

// Entries is the file-scoped set of suppressions shared by a [Scanner] and
// the filter bound to it. The scanner resets it at the start of each file.
type Entries struct {
	aliases *AliasTable
	list    []Entry
}

// NewEntries returns an empty set resolving names through aliases.
func NewEntries(aliases *AliasTable) *Entries {
	return &Entries{aliases: aliases}
}

// Aliases returns the alias table used to record and match entries.
func (e *Entries) Aliases() *AliasTable {
	if e == nil {
		return nil
	}
	return e.aliases
}

// Reset drops every entry.
func (e *Entries) Reset() {
	e.list = e.list[:0]
}

// Add records an entry.
func (e *Entries) Add(entry Entry) {
	e.list = append(e.list, entry)
}

// Len returns the number of entries. A nil set is empty.
func (e *Entries) Len() int {
	if e == nil {
		return 0
	}
	return len(e.list)
}

// All returns the entries in record order. The slice must not be modified.
func (e *Entries) All() []Entry {
	if e == nil {
		return nil
	}
	return e.list
}
