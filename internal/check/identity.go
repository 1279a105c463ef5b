package check

import "strings"

// Identity names a check instance.
//
// Type is the registered module type name. ID is the optional explicit
// identifier assigned in configuration. Two checks of the same type without
// an ID are indistinguishable.
type Identity struct {
	Type string
	ID   string
}

// Name returns the explicit identifier if set, otherwise the default name
// derived from the type.
func (id Identity) Name() string {
	if id.ID != "" {
		return id.ID
	}
	return DefaultName(id.Type)
}

func (id Identity) String() string {
	return id.Name()
}

// SimpleName returns the type name without its package qualifier.
func SimpleName(typeName string) string {
	if i := strings.LastIndexByte(typeName, '.'); i >= 0 {
		return typeName[i+1:]
	}
	return typeName
}

// DefaultName derives the default check name from a module type name: the
// simple name with a trailing "Check" removed, lower-cased.
//
//	naming.MemberNameCheck -> membername
//	UncommentedMain        -> uncommentedmain
func DefaultName(typeName string) string {
	name := SimpleName(typeName)
	if trimmed := strings.TrimSuffix(name, "Check"); trimmed != "" {
		name = trimmed
	}
	return strings.ToLower(name)
}
