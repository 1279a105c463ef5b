// Package checkstyle provides a go/analysis based analyzer that runs a
// configurable set of checks over Go files and honors in-source
// suppressions.
package checkstyle

import (
	"context"
	"flag"
	"go/ast"
	"go/token"

	"github.com/cockroachdb/errors"
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"

	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/pipeline"
	"github.com/thanujayalath/checkstyle/internal/source/gosrc"
	"github.com/thanujayalath/checkstyle/internal/syntax"
)

// Flags for the analyzer.
var configPath string

func init() {
	Analyzer.Flags.StringVar(&configPath, "config", "",
		"module tree to run (.yaml, .yml or .toml); the built-in tree is used when empty")
}

// Analyzer is the main analyzer for checkstyle.
var Analyzer = &analysis.Analyzer{
	Name:     "checkstyle",
	Doc:      "runs configurable style checks and honors //checkstyle:suppress and //checkstyle:ignore directives",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
	Flags:    flag.FlagSet{},
}

// ErrNoInspector is returned when the inspect pass result is missing.
var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	checker, err := loadChecker()
	if err != nil {
		return nil, err
	}

	// Build set of files to skip
	skipFiles := buildSkipFiles(pass)

	insp.Preorder([]ast.Node{(*ast.File)(nil)}, func(n ast.Node) {
		file := n.(*ast.File)
		tf := pass.Fset.File(file.Pos())
		if tf == nil || skipFiles[tf.Name()] {
			return
		}

		res := checker.Process(context.Background(), gosrc.Convert(pass.Fset, file))
		for _, f := range res.Failures {
			pass.Reportf(file.Package, "check %s failed: %v", f.Check.Name(), f.Err)
		}
		for _, v := range res.Violations {
			pass.Report(analysis.Diagnostic{
				Pos:      position(tf, v.Span),
				Category: v.Producer.Name(),
				Message:  v.Message + " (" + v.Producer.Name() + ")",
			})
		}
	})

	return nil, nil
}

func loadChecker() (*pipeline.Checker, error) {
	root := pipeline.DefaultConfig()
	if configPath != "" {
		var err error
		if root, err = config.LoadFile(configPath); err != nil {
			return nil, err
		}
	}
	return pipeline.New(root, pipeline.DefaultRegistry())
}

// buildSkipFiles creates a set of filenames to skip.
// Generated files are always skipped.
func buildSkipFiles(pass *analysis.Pass) map[string]bool {
	skipFiles := make(map[string]bool)

	for _, file := range pass.Files {
		if ast.IsGenerated(file) {
			skipFiles[pass.Fset.Position(file.Pos()).Filename] = true
		}
	}

	return skipFiles
}

// position maps a span start to a token position in tf. A span without a
// column maps to the start of its line.
func position(tf *token.File, s syntax.Span) token.Pos {
	line := min(max(s.Line, 1), tf.LineCount())
	pos := tf.LineStart(line)
	if s.Col > 1 {
		pos += token.Pos(s.Col - 1)
	}
	return pos
}
