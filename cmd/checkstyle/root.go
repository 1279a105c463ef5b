package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/thanujayalath/checkstyle/internal/check"
	"github.com/thanujayalath/checkstyle/internal/config"
	"github.com/thanujayalath/checkstyle/internal/pipeline"
	"github.com/thanujayalath/checkstyle/internal/report"
)

// errFindings is returned when violations at or above the failing severity
// were reported. Its message is not printed.
var errFindings = errors.New("violations found")

type options struct {
	config   string
	excludes []string
	jobs     int
	color    string
	failOn   string
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:           "checkstyle [flags] [path...]",
		Short:         "Check Go and Java sources against a module configuration",
		Long:          `Runs the configured checks over every .go and .java file below the given paths (default ".") and reports the violations left after suppression.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.config, "config", "c", "", "module tree (.yaml, .yml or .toml); the built-in tree is used when empty")
	flags.StringSliceVar(&opts.excludes, "exclude", nil, "glob of paths to skip, relative to each root (repeatable, ** allowed)")
	flags.IntVarP(&opts.jobs, "jobs", "j", 0, "files checked concurrently (default GOMAXPROCS)")
	flags.StringVar(&opts.color, "color", "auto", "colorize output (auto|always|never)")
	flags.StringVar(&opts.failOn, "fail-on", "error", "lowest severity that makes the run fail (error|warning|info)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log skipped files and check failures in detail")

	cmd.AddCommand(newModulesCmd())
	return cmd
}

func newModulesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modules",
		Short: "List the registered check and filter types",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			for _, name := range pipeline.DefaultRegistry().TypeNames() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}
}

func runCheck(cmd *cobra.Command, opts *options, args []string) error {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{Prefix: "checkstyle"})
	if opts.verbose {
		logger.SetLevel(log.DebugLevel)
	}

	failOn, err := check.ParseSeverity(opts.failOn)
	if err != nil || failOn == check.SeverityIgnore {
		return errors.Newf("invalid --fail-on %q", opts.failOn)
	}
	colored, err := useColor(opts.color)
	if err != nil {
		return err
	}

	root := pipeline.DefaultConfig()
	if opts.config != "" {
		if root, err = config.LoadFile(opts.config); err != nil {
			return err
		}
	}
	checker, err := pipeline.New(root, pipeline.DefaultRegistry(), pipeline.WithJobs(opts.jobs), pipeline.WithLogger(logger))
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	if len(args) == 0 {
		args = []string{"."}
	}
	paths, err := discover(args, opts.excludes)
	if err != nil {
		return err
	}
	logger.Debug("discovered files", "count", len(paths))

	results, err := checker.ProcessAll(cmd.Context(), paths, pipeline.ParseFile)
	if err != nil {
		return err
	}

	p := report.NewPrinter(cmd.OutOrStdout(), colored)
	failed := false
	for _, res := range results {
		if res.Err != nil {
			p.Failure(res.File, res.Err)
			failed = true
			continue
		}
		p.File(res.File, res.Violations)
		for _, v := range res.Violations {
			if v.Severity <= failOn {
				failed = true
			}
		}
	}
	p.WriteSummary()

	if failed {
		return errFindings
	}
	return nil
}

func useColor(mode string) (bool, error) {
	switch mode {
	case "auto":
		return !color.NoColor && os.Getenv("NO_COLOR") == "", nil
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	return false, errors.Newf("invalid --color %q", mode)
}
