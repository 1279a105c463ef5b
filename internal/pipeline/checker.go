// Package pipeline builds a checker from a module tree and runs it over
// source files.
//
// The tree has a root "Checker" module whose children are "TreeWalker"
// modules holding checks, and filters. At most one SuppressWarningsHolder
// may appear; its entries are bound to every filter that reads them.
//
//	Checker
//	├── TreeWalker
//	│   ├── SuppressWarningsHolder
//	│   └── naming.MemberNameCheck
//	└── SuppressWarningsFilter
package pipeline

import (
	"context"
	"runtime"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/directives/suppress"
	"github.com/thanujayalath/checkstyle/internal/filters"
	"github.com/thanujayalath/checkstyle/internal/registry"
	"github.com/thanujayalath/checkstyle/internal/syntax"
	"github.com/thanujayalath/checkstyle/internal/walker"
)

// Module names with a structural meaning.
const (
	CheckerName    = "Checker"
	TreeWalkerName = "TreeWalker"
)

// ErrInvalidTree marks a module placed where it cannot be used.
var ErrInvalidTree = errors.New("invalid module tree")

// FileResult is the outcome of checking one file.
type FileResult struct {
	File       string
	Violations []check.Violation
	Failures   []walker.Failure
	// Err is set when the file could not be read, parsed or checked.
	Err error
}

// Count returns the number of violations of the given severity.
func (r *FileResult) Count(severity check.Severity) int {
	return lo.CountBy(r.Violations, func(v check.Violation) bool {
		return v.Severity == severity
	})
}

// Option configures a Checker.
type Option func(*Checker)

// WithJobs bounds the number of files checked concurrently. Zero or less
// means GOMAXPROCS.
func WithJobs(n int) Option {
	return func(c *Checker) {
		if n > 0 {
			c.jobs = n
		}
	}
}

// WithLogger sets the logger receiving check failures.
func WithLogger(l *log.Logger) Option {
	return func(c *Checker) {
		c.logger = l
	}
}

type planned struct {
	module *config.Module
	entry  *registry.Entry
}

// Checker is a validated module tree. It is safe for concurrent use: every
// file gets fresh module instances.
type Checker struct {
	walkers [][]planned
	filters []planned
	jobs    int
	logger  *log.Logger
}

// New validates root against reg and returns a checker for it.
func New(root *config.Module, reg *registry.Registry, opts ...Option) (*Checker, error) {
	if root == nil || root.Name != CheckerName {
		return nil, errors.Wrapf(ErrInvalidTree, "root module must be %s", CheckerName)
	}

	c := &Checker{jobs: runtime.GOMAXPROCS(0), logger: log.Default()}
	for _, opt := range opts {
		opt(c)
	}

	holders := 0
	for _, child := range root.Children {
		if child.Name == TreeWalkerName {
			plan, n, err := planWalker(child, reg)
			if err != nil {
				return nil, err
			}
			holders += n
			c.walkers = append(c.walkers, plan)
			continue
		}

		e, err := reg.Lookup(child.Name)
		if err != nil {
			return nil, err
		}
		if e.IsCheck() {
			return nil, errors.Wrapf(ErrInvalidTree, "check %s must be inside %s", child.Name, TreeWalkerName)
		}
		if _, err := e.NewFilter(child); err != nil {
			return nil, err
		}
		c.filters = append(c.filters, planned{module: child, entry: e})
	}

	if holders > 1 {
		return nil, errors.Wrapf(ErrInvalidTree, "%d %s modules, at most one allowed", holders, suppress.TypeName)
	}
	return c, nil
}

// planWalker validates a TreeWalker's children and returns them with the
// number of suppression scanners among them. Checks may share an explicit
// id; a suppression naming it then applies to all of them.
func planWalker(m *config.Module, reg *registry.Registry) ([]planned, int, error) {
	var plan []planned
	holders := 0
	for _, child := range m.Children {
		e, err := reg.Lookup(child.Name)
		if err != nil {
			return nil, 0, err
		}
		if !e.IsCheck() {
			return nil, 0, errors.Wrapf(ErrInvalidTree, "filter %s must not be inside %s", child.Name, TreeWalkerName)
		}
		if _, err := e.NewCheck(child); err != nil {
			return nil, 0, err
		}
		if e.TypeName == suppress.TypeName {
			holders++
		}
		plan = append(plan, planned{module: child, entry: e})
	}
	return plan, holders, nil
}

// run is the set of module instances checking one file.
type run struct {
	walkers []*walker.Walker
	filters []filters.Filter
}

func (c *Checker) instantiate() (*run, error) {
	r := &run{}
	var entries *suppress.Entries
	for _, plan := range c.walkers {
		w := walker.New()
		for _, p := range plan {
			ch, err := p.entry.NewCheck(p.module)
			if err != nil {
				return nil, err
			}
			if s, ok := ch.(*suppress.Scanner); ok {
				entries = s.Entries()
			}
			w.Register(ch)
		}
		r.walkers = append(r.walkers, w)
	}

	for _, p := range c.filters {
		f, err := p.entry.NewFilter(p.module)
		if err != nil {
			return nil, err
		}
		if b, ok := f.(filters.Binder); ok && entries != nil {
			b.Bind(entries)
		}
		r.filters = append(r.filters, f)
	}
	return r, nil
}

// Process checks one parsed file. Violations of ignore severity are
// dropped before filtering; directives reported unused by filters are
// appended after the filtered violations.
func (c *Checker) Process(ctx context.Context, file *syntax.File) FileResult {
	res := FileResult{File: file.Name}
	if err := ctx.Err(); err != nil {
		res.Err = err
		return res
	}

	r, err := c.instantiate()
	if err != nil {
		res.Err = err
		return res
	}

	var violations []check.Violation
	for _, w := range r.walkers {
		out := w.Walk(file)
		violations = append(violations, out.Violations...)
		res.Failures = append(res.Failures, out.Failures...)
	}
	for _, f := range res.Failures {
		c.logger.Warn("check failed", "check", f.Check.Name(), "file", f.File, "hook", f.Hook, "err", f.Err)
	}

	violations = lo.Reject(violations, func(v check.Violation, _ int) bool {
		return v.Severity == check.SeverityIgnore
	})
	for _, f := range r.filters {
		if ff, ok := f.(filters.FileFilter); ok {
			ff.BeginFile(file)
		}
	}
	res.Violations = filters.Apply(violations, r.filters)

	for _, f := range r.filters {
		if u, ok := f.(filters.UnusedReporter); ok {
			res.Violations = append(res.Violations, u.Unused()...)
		}
	}
	return res
}

// ParseFunc reads and parses one file.
type ParseFunc func(ctx context.Context, path string) (*syntax.File, error)

// ProcessAll parses and checks files concurrently. Results are in the order
// of paths. A file that fails to parse has its error recorded and does not
// stop the others; the returned error is only set when ctx ends the run.
func (c *Checker) ProcessAll(ctx context.Context, paths []string, parse ParseFunc) ([]FileResult, error) {
	results := make([]FileResult, len(paths))
	if len(paths) == 0 {
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(c.jobs, len(paths)))

	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			file, err := parse(gctx, path)
			if err != nil {
				c.logger.Debug("skipping file", "file", path, "err", err)
				results[i] = FileResult{File: path, Err: err}
				return nil
			}
			results[i] = c.Process(gctx, file)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
