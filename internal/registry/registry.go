package registry

import (
	"slices"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/filters"
)

// ErrUnknownModule is returned by Lookup for a name that is not registered.
var ErrUnknownModule = errors.New("unknown module")

// CheckFactory builds a check from its configuration.
type CheckFactory func(m *config.Module) (check.Check, error)

// FilterFactory builds a filter from its configuration.
type FilterFactory func(m *config.Module) (filters.Filter, error)

// Entry is a registered module type. Exactly one of NewCheck and NewFilter
// is set.
type Entry struct {
	TypeName  string
	NewCheck  CheckFactory
	NewFilter FilterFactory
}

// IsCheck reports whether the entry builds checks.
func (e *Entry) IsCheck() bool {
	return e.NewCheck != nil
}

// Registry maps module type names to factories.
type Registry struct {
	entries []*Entry
	byName  map[string]*Entry
}

// New creates a new empty registry.
func New() *Registry {
	return &Registry{byName: make(map[string]*Entry)}
}

// RegisterCheck adds a check type.
func (r *Registry) RegisterCheck(typeName string, f CheckFactory) {
	r.add(&Entry{TypeName: typeName, NewCheck: f})
}

// RegisterFilter adds a filter type.
func (r *Registry) RegisterFilter(typeName string, f FilterFactory) {
	r.add(&Entry{TypeName: typeName, NewFilter: f})
}

// add indexes an entry under its canonical name, its simple name and its
// simple name without the "Check" suffix. The canonical name always wins;
// shorter names keep their first owner.
func (r *Registry) add(e *Entry) {
	r.entries = append(r.entries, e)
	r.byName[e.TypeName] = e

	simple := check.SimpleName(e.TypeName)
	for _, name := range []string{simple, strings.TrimSuffix(simple, "Check")} {
		if _, taken := r.byName[name]; !taken && name != "" {
			r.byName[name] = e
		}
	}
}

// Lookup resolves a configured module name.
func (r *Registry) Lookup(name string) (*Entry, error) {
	if e, ok := r.byName[name]; ok {
		return e, nil
	}
	return nil, errors.Wrapf(ErrUnknownModule, "%q", name)
}

// TypeNames returns the canonical names of all registered types, sorted.
func (r *Registry) TypeNames() []string {
	names := make([]string, len(r.entries))
	for i, e := range r.entries {
		names[i] = e.TypeName
	}
	slices.Sort(names)
	return names
}

// Base reads the identity and severity shared by every check module.
func Base(typeName string, m *config.Module) (check.Base, error) {
	severity := check.SeverityError
	if s, ok := m.Prop("severity"); ok {
		var err error
		if severity, err = check.ParseSeverity(s); err != nil {
			return check.Base{}, errors.Mark(errors.Wrapf(err, "%s", m.Name), config.ErrInvalidProperty)
		}
	}
	return check.NewBase(typeName, m.Identifier(), severity), nil
}
