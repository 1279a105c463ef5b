package suppress

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"

	"github.com/thanujayalath/checkstyle/internal/check"
)

// ErrMalformedAlias is returned for an aliasList element that is not a
// typeName=alias pair.
var ErrMalformedAlias = errors.New("malformed alias")

// AliasTable maps check types to the names a suppression argument may use
// for them. It is immutable after construction and safe for concurrent use.
type AliasTable struct {
	// byType is keyed by simple type name.
	byType map[string][]string
	known  map[string]bool
}

// NewAliasTable builds a table from type name to aliases.
func NewAliasTable(aliases map[string][]string) *AliasTable {
	t := &AliasTable{
		byType: make(map[string][]string, len(aliases)),
		known:  make(map[string]bool),
	}
	for typeName, list := range aliases {
		key := check.SimpleName(typeName)
		for _, a := range list {
			t.byType[key] = append(t.byType[key], a)
			t.known[a] = true
		}
	}
	return t
}

// ParseAliasList parses the comma separated typeName=alias pairs of the
// aliasList property. The same type may appear more than once.
func ParseAliasList(list string) (*AliasTable, error) {
	aliases := make(map[string][]string)
	for _, pair := range strings.Split(list, ",") {
		pair = strings.TrimSpace(pair)
		if pair == "" {
			continue
		}
		typeName, alias, ok := strings.Cut(pair, "=")
		typeName, alias = strings.TrimSpace(typeName), strings.TrimSpace(alias)
		if !ok || typeName == "" || alias == "" {
			return nil, errors.Wrapf(ErrMalformedAlias, "%q", pair)
		}
		aliases[typeName] = append(aliases[typeName], alias)
	}
	return NewAliasTable(aliases), nil
}

// Aliases returns the configured aliases of a type followed by its default
// name.
func (t *AliasTable) Aliases(typeName string) []string {
	var out []string
	if t != nil {
		out = append(out, t.byType[check.SimpleName(typeName)]...)
	}
	return append(out, check.DefaultName(typeName))
}

// Names returns every string a suppression target may equal to match a
// violation produced by id: the explicit identifier, the configured aliases
// and the default name. Any of them matches; none takes precedence.
func (t *AliasTable) Names(id check.Identity) []string {
	var out []string
	if id.ID != "" {
		out = append(out, id.ID)
	}
	return append(out, t.Aliases(id.Type)...)
}

// Matches reports whether a recorded suppression target names the check
// identified by id. The explicit identifier and configured aliases must
// match exactly; the default name matches regardless of case, so
// "UncommentedMain" names the uncommentedmain check.
func (t *AliasTable) Matches(id check.Identity, target string) bool {
	switch {
	case target == Wildcard:
		return true
	case id.ID != "" && id.ID == target:
		return true
	case t != nil && lo.Contains(t.byType[check.SimpleName(id.Type)], target):
		return true
	}
	return strings.EqualFold(target, check.DefaultName(id.Type))
}

// Resolve maps a suppression argument to the name it is recorded under.
// Configured aliases resolve to themselves. Arguments spelling a check type
// ("MemberNameCheck", "naming.MemberNameCheck") resolve to the default
// name. Anything else is returned verbatim so it can still match an
// explicit check identifier.
func (t *AliasTable) Resolve(arg string) string {
	if t != nil && t.known[arg] {
		return arg
	}
	if strings.HasSuffix(arg, "Check") || strings.Contains(arg, ".") {
		return check.DefaultName(arg)
	}
	return arg
}
