// Package runner orchestrates the parse -> analyse -> fix -> output pipeline.
package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"runtime"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/donaldgifford/memberfmt/internal/config"
	"github.com/donaldgifford/memberfmt/internal/formatter"
	"github.com/donaldgifford/memberfmt/internal/lint"
	"github.com/donaldgifford/memberfmt/internal/logutil"
	"github.com/donaldgifford/memberfmt/internal/parser"
	"github.com/donaldgifford/memberfmt/internal/rules"
	"github.com/donaldgifford/memberfmt/pkg/diff"
)

// Exit codes.
const (
	ExitOK       = 0
	ExitFindings = 1
	ExitError    = 2
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

const stdinName = "<stdin>"

// Options configures the runner behavior.
type Options struct {
	// Paths are files or directories. Directories are walked for *.cs
	// files. No paths means stdin.
	Paths []string

	Check bool
	Diff  bool
	Write bool

	// FixMode overrides the configured fix mode ("type" or "member").
	FixMode string
	// Format is FormatText (default) or FormatJSON.
	Format string
	// Jobs overrides the configured number of parallel files.
	Jobs int

	ConfigPath string
	LogLevel   string
	Quiet      bool
	Verbose    bool
	NoColor    bool

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Rules defaults to every registered rule.
	Rules []lint.Rule
	// NewProvider creates a parser for one file. Defaults to tree-sitter.
	NewProvider func() (parser.Provider, error)
}

// fileResult is the outcome for one input.
type fileResult struct {
	path  string
	src   []byte
	out   []byte // Fixed text; nil when no fixing was requested.
	diags []lint.Diagnostic
	err   error
}

func (r *fileResult) changed() bool {
	return r.out != nil && string(r.out) != string(r.src)
}

type runner struct {
	opts     *Options
	cfg      *config.Config
	analyzer *lint.Analyzer
	fix      formatter.Options
	logger   *slog.Logger
	printer  *printer
}

// Run executes the pipeline and returns an exit code.
func Run(ctx context.Context, opts *Options) int {
	if opts.Stdin == nil {
		opts.Stdin = os.Stdin
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.NewProvider == nil {
		opts.NewProvider = newCSharpProvider
	}

	r, err := newRunner(opts)
	if err != nil {
		writeErr(opts.Stderr, "memberfmt: %v\n", err)
		return ExitError
	}

	if len(opts.Paths) == 0 {
		return r.runStdin(ctx)
	}
	return r.runPaths(ctx)
}

func newRunner(opts *Options) (*runner, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	logger := logutil.NewLogger(opts.Stderr, logutil.Level(cfg.LogLevel, opts.LogLevel, opts.Quiet, opts.Verbose))

	modeName := cfg.Fix.Mode
	if opts.FixMode != "" {
		modeName = opts.FixMode
	}
	mode, err := formatter.ParseMode(modeName)
	if err != nil {
		return nil, err
	}

	switch opts.Format {
	case "":
		opts.Format = FormatText
	case FormatText, FormatJSON:
	default:
		return nil, fmt.Errorf("unknown output format %q (want text or json)", opts.Format)
	}

	lintCfg, err := cfg.LintConfig()
	if err != nil {
		return nil, err
	}
	ruleSet := opts.Rules
	if ruleSet == nil {
		ruleSet = rules.All()
		if err := checkRuleIDs(cfg); err != nil {
			return nil, err
		}
	}

	return &runner{
		opts:     opts,
		cfg:      cfg,
		analyzer: lint.NewAnalyzer(ruleSet, lintCfg, logger),
		fix:      formatter.Options{Mode: mode, MaxPasses: cfg.Fix.MaxPasses, Logger: logger},
		logger:   logger,
		printer:  newPrinter(opts.Stdout, opts.NoColor),
	}, nil
}

// fixing reports whether fixes are computed for the given input.
func (r *runner) fixing(stdin bool) bool {
	if r.opts.Check {
		return false
	}
	return r.opts.Diff || r.opts.Write || stdin
}

func (r *runner) runStdin(ctx context.Context) int {
	src, err := io.ReadAll(r.opts.Stdin)
	if err != nil {
		writeErr(r.opts.Stderr, "memberfmt: reading stdin: %v\n", err)
		return ExitError
	}

	res := r.process(ctx, stdinName, src, r.fixing(true))
	if res.err != nil {
		writeErr(r.opts.Stderr, "memberfmt: %v\n", res.err)
		return ExitError
	}

	switch {
	case r.opts.Check:
		return r.report([]*fileResult{res})
	case r.opts.Diff:
		return r.printDiffs([]*fileResult{res})
	default:
		writeOut(r.opts.Stdout, string(res.out))
		return ExitOK
	}
}

func (r *runner) runPaths(ctx context.Context) int {
	exitCode := ExitOK

	files, errs := collectFiles(r.opts.Paths, r.cfg)
	for _, err := range errs {
		writeErr(r.opts.Stderr, "memberfmt: %v\n", err)
		exitCode = ExitError
	}

	results := r.processAll(ctx, files)

	var ok []*fileResult
	for _, res := range results {
		if res.err != nil {
			writeErr(r.opts.Stderr, "memberfmt: %v\n", res.err)
			exitCode = ExitError
			continue
		}
		ok = append(ok, res)
	}

	var code int
	switch {
	case r.opts.Check:
		code = r.report(ok)
	case r.opts.Diff:
		code = r.printDiffs(ok)
	case r.opts.Write:
		code = r.writeFiles(ok)
	default:
		code = r.report(ok)
	}
	return max(exitCode, code)
}

// processAll handles files in parallel; results keep the input order.
func (r *runner) processAll(ctx context.Context, files []string) []*fileResult {
	jobs := r.opts.Jobs
	if jobs <= 0 {
		jobs = r.cfg.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]*fileResult, len(files))
	fix := r.fixing(false)

	var g errgroup.Group
	g.SetLimit(jobs)
	for i, path := range files {
		g.Go(func() error {
			src, err := os.ReadFile(path)
			if err != nil {
				results[i] = &fileResult{path: path, err: err}
				return nil
			}
			results[i] = r.process(ctx, path, src, fix)
			return nil
		})
	}
	_ = g.Wait()

	r.logger.Debug("processed files", "files", len(files), "jobs", jobs)
	return results
}

// process analyses one input and, when fix is set, runs the fix loop.
// Each call owns its parser.
func (r *runner) process(ctx context.Context, path string, src []byte, fix bool) *fileResult {
	res := &fileResult{path: path, src: src}
	r.logger.Info("processing", "path", path)

	p, err := r.opts.NewProvider()
	if err != nil {
		res.err = err
		return res
	}

	if fix {
		out, err := formatter.Run(ctx, p, r.analyzer, path, src, r.fix)
		if err != nil {
			res.err = err
			return res
		}
		res.out = out.Output
		res.diags = out.Diagnostics
		r.logger.Debug("fixed file", "path", path, "passes", out.Passes, "edits", out.Applied, "remaining", len(out.Diagnostics))
		return res
	}

	file, err := p.Parse(ctx, path, src)
	if err != nil {
		res.err = fmt.Errorf("parsing %s: %w", path, err)
		return res
	}
	res.diags, res.err = r.analyzer.Analyze(file)
	r.logger.Debug("analyzed file", "path", path, "types", len(file.Types), "diagnostics", len(res.diags))
	return res
}

// report prints diagnostics and returns ExitFindings when there are any.
func (r *runner) report(results []*fileResult) int {
	var diags []lint.Diagnostic
	for _, res := range results {
		diags = append(diags, res.diags...)
	}

	if r.opts.Format == FormatJSON {
		if err := r.printer.printJSON(diags); err != nil {
			writeErr(r.opts.Stderr, "memberfmt: writing output: %v\n", err)
			return ExitError
		}
	} else if !r.opts.Quiet {
		r.printer.printText(diags)
	}

	if len(diags) > 0 {
		return ExitFindings
	}
	return ExitOK
}

func (r *runner) printDiffs(results []*fileResult) int {
	code := ExitOK
	for _, res := range results {
		if !res.changed() {
			continue
		}
		writeOut(r.opts.Stdout, diff.Unified(res.path, string(res.src), string(res.out)))
		code = ExitFindings
	}
	return code
}

// writeFiles rewrites changed files. Findings the fix loop could not
// resolve are reported.
func (r *runner) writeFiles(results []*fileResult) int {
	code := ExitOK
	var remaining []*fileResult
	for _, res := range results {
		if len(res.diags) > 0 {
			remaining = append(remaining, res)
		}
		if !res.changed() {
			continue
		}

		mode := os.FileMode(0o644)
		if info, err := os.Stat(res.path); err == nil {
			mode = info.Mode().Perm()
		}
		if err := os.WriteFile(res.path, res.out, mode); err != nil {
			writeErr(r.opts.Stderr, "memberfmt: writing %s: %v\n", res.path, err)
			code = ExitError
			continue
		}
		r.logger.Info("wrote file", "path", res.path)
	}

	if len(remaining) > 0 {
		code = max(code, r.report(remaining))
	}
	return code
}

// checkRuleIDs rejects config entries for rules that are not registered.
func checkRuleIDs(cfg *config.Config) error {
	for _, id := range slices.Sorted(maps.Keys(cfg.Rules)) {
		if _, ok := rules.Lookup(id); !ok {
			return fmt.Errorf("rules.%s: unknown rule", id)
		}
	}
	return nil
}

func newCSharpProvider() (parser.Provider, error) {
	p := parser.NewCSharp()
	if p == nil {
		return nil, parser.ErrNoCGO
	}
	return p, nil
}

// writeOut writes to stdout.
func writeOut(w io.Writer, s string) {
	fmt.Fprint(w, s)
}

// writeErr formats and writes to stderr.
func writeErr(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}
