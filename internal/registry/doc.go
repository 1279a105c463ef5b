// Package registry maps module type names to factories.
//
// # Overview
//
// Every check and filter a configuration may name is registered once under
// its canonical type name. Configurations can use the canonical name, the
// simple name or the simple name without its "Check" suffix:
//
//	naming.MemberNameCheck
//	MemberNameCheck
//	MemberName
//
// # Registering Modules
//
//	reg := registry.New()
//	reg.RegisterCheck("naming.MemberNameCheck", func(m *config.Module) (check.Check, error) {
//	    base, err := registry.Base("naming.MemberNameCheck", m)
//	    ...
//	})
//	reg.RegisterFilter("SuppressWarningsFilter", func(*config.Module) (filters.Filter, error) {
//	    return filters.NewSuppressWarnings(), nil
//	})
//
// # Common Properties
//
// [Base] reads the properties every check understands:
//
//	┌──────────┬─────────────────────────────────────────────┐
//	│ Property │ Meaning                                     │
//	├──────────┼─────────────────────────────────────────────┤
//	│ id       │ explicit identifier used by suppressions    │
//	│ severity │ error, warning, info or ignore              │
//	└──────────┴─────────────────────────────────────────────┘
package registry
