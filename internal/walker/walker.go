// Package walker drives registered checks over a syntax tree in a single
// depth-first pass.
package walker

import (
	"github.com/cockroachdb/errors"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// ErrCheckPanic marks failures raised by a panicking check callback.
var ErrCheckPanic = errors.New("check panicked")

// Failure attributes a callback failure to a check and a file.
type Failure struct {
	Check check.Identity
	File  string
	Hook  string
	Err   error
}

func (f Failure) Error() string {
	return f.File + ": " + f.Check.Name() + "." + f.Hook + ": " + f.Err.Error()
}

func (f Failure) Unwrap() error { return f.Err }

// Result is the outcome of one walk.
type Result struct {
	// Violations in check registration order, then traversal order.
	Violations []check.Violation
	Failures   []Failure
}

// Walker holds an ordered list of checks.
type Walker struct {
	checks []check.Check
}

// New creates a walker with the given checks registered in order.
func New(checks ...check.Check) *Walker {
	w := &Walker{}
	for _, c := range checks {
		w.Register(c)
	}
	return w
}

// Register appends a check. Checks are invoked in registration order.
func (w *Walker) Register(c check.Check) {
	w.checks = append(w.checks, c)
}

// Checks returns the registered checks.
func (w *Walker) Checks() []check.Check {
	return w.checks
}

// binding is the per-walk state of one registered check.
type binding struct {
	check  check.Check
	kinds  syntax.KindSet
	ctx    *check.Context
	enter  check.Enterer
	leave  check.Leaver
	failed bool
}

// Walk traverses file once and returns every violation the checks reported.
func (w *Walker) Walk(file *syntax.File) *Result {
	res := &Result{}

	bindings := make([]*binding, len(w.checks))
	for i, c := range w.checks {
		b := &binding{
			check: c,
			kinds: syntax.NewKindSet(c.Kinds()...),
			ctx:   check.NewContext(file, c),
		}
		b.enter, _ = c.(check.Enterer)
		b.leave, _ = c.(check.Leaver)
		bindings[i] = b
	}

	for _, b := range bindings {
		if bf, ok := b.check.(check.BeginFiler); ok {
			invoke(res, file, b, "BeginFile", func() { bf.BeginFile(b.ctx) })
		}
	}

	visit(res, file, bindings, file.Root)

	for _, b := range bindings {
		if ef, ok := b.check.(check.EndFiler); ok && !b.failed {
			invoke(res, file, b, "EndFile", func() { ef.EndFile(b.ctx) })
		}
	}

	for _, b := range bindings {
		res.Violations = append(res.Violations, b.ctx.Violations()...)
	}

	return res
}

func visit(res *Result, file *syntax.File, bindings []*binding, n *syntax.Node) {
	if n == nil {
		return
	}

	for _, b := range bindings {
		if b.enter == nil || b.failed || !b.kinds.Has(n.Kind) {
			continue
		}
		invoke(res, file, b, "Enter", func() { b.enter.Enter(b.ctx, n) })
	}

	for _, c := range n.Children {
		visit(res, file, bindings, c)
	}

	for _, b := range bindings {
		if b.leave == nil || b.failed || !b.kinds.Has(n.Kind) {
			continue
		}
		invoke(res, file, b, "Leave", func() { b.leave.Leave(b.ctx, n) })
	}
}

// invoke runs one callback. A panic disables the check for the rest of the
// file and is recorded as a Failure; other checks keep running.
func invoke(res *Result, file *syntax.File, b *binding, hook string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			b.failed = true
			res.Failures = append(res.Failures, Failure{
				Check: b.check.Identity(),
				File:  file.Name,
				Hook:  hook,
				Err:   errors.Wrapf(ErrCheckPanic, "%v", r),
			})
		}
	}()
	fn()
}
