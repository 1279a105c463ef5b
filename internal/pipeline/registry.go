package pipeline

import (
	"github.com/cockroachdb/errors"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/checks"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/directives/suppress"
	"github.com/thanujayalath/checkstyle/internal/filters"
	"github.com/thanujayalath/checkstyle/internal/registry"
)

// DefaultRegistry returns a registry holding the built-in checks, the
// suppression scanner and the built-in filters.
func DefaultRegistry() *registry.Registry {
	r := registry.New()
	checks.Register(r)
	r.RegisterCheck(suppress.TypeName, newHolder)
	r.RegisterFilter(filters.SuppressWarningsTypeName, newSuppressWarningsFilter)
	r.RegisterFilter(filters.SeverityMatchTypeName, newSeverityMatchFilter)
	r.RegisterFilter(filters.IgnoreCommentTypeName, newIgnoreCommentFilter)
	return r
}

func newHolder(m *config.Module) (check.Check, error) {
	base, err := registry.Base(suppress.TypeName, m)
	if err != nil {
		return nil, err
	}
	aliases, err := suppress.ParseAliasList(m.String("aliasList", ""))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s", m.Name), config.ErrInvalidProperty)
	}
	return suppress.NewScanner(base, aliases), nil
}

func newSuppressWarningsFilter(*config.Module) (filters.Filter, error) {
	return filters.NewSuppressWarnings(), nil
}

func newSeverityMatchFilter(m *config.Module) (filters.Filter, error) {
	severity, err := check.ParseSeverity(m.String("severity", check.SeverityIgnore.String()))
	if err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "%s", m.Name), config.ErrInvalidProperty)
	}
	acceptOnMatch, err := m.Bool("acceptOnMatch", false)
	if err != nil {
		return nil, err
	}
	return filters.SeverityMatch{Severity: severity, AcceptOnMatch: acceptOnMatch}, nil
}

func newIgnoreCommentFilter(m *config.Module) (filters.Filter, error) {
	reportUnused, err := m.Bool("reportUnused", false)
	if err != nil {
		return nil, err
	}
	return filters.NewIgnoreComment(reportUnused), nil
}
