package formatter

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/donaldgifford/memberfmt/internal/lint"
	"github.com/donaldgifford/memberfmt/internal/logutil"
	"github.com/donaldgifford/memberfmt/internal/parser"
)

// DefaultMaxPasses bounds the analyse and fix loop.
const DefaultMaxPasses = 10

// Options configures Run.
type Options struct {
	Mode      lint.FixKind
	MaxPasses int
	Logger    *slog.Logger
}

// Result is the outcome of Run.
type Result struct {
	Output []byte

	// Passes counts the passes that changed the text.
	Passes int

	// Applied counts edits over all passes.
	Applied int

	// Diagnostics are those of the final analysis, i.e. the findings
	// left once fixing stopped.
	Diagnostics []lint.Diagnostic
}

// Changed reports whether any fix was applied.
func (r *Result) Changed() bool {
	return r.Applied > 0
}

// Run analyses src and applies the configured fix of every diagnostic,
// re-parsing after each pass. Edits that overlap an earlier edit in the
// same pass, such as a nested type inside a type being reordered, are
// picked up by a later pass. Run stops when a pass changes nothing or
// after opts.MaxPasses passes.
func Run(ctx context.Context, p parser.Provider, a *lint.Analyzer, path string, src []byte, opts Options) (*Result, error) {
	maxPasses := opts.MaxPasses
	if maxPasses <= 0 {
		maxPasses = DefaultMaxPasses
	}
	logger := opts.Logger
	if logger == nil {
		logger = logutil.NewDiscardLogger()
	}

	res := &Result{Output: src}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		file, err := p.Parse(ctx, path, res.Output)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}

		diags, err := a.Analyze(file)
		if err != nil {
			return nil, err
		}
		res.Diagnostics = diags

		if res.Passes == maxPasses {
			logger.Debug("fix pass limit reached", "path", path, "passes", res.Passes, "remaining", len(diags))
			return res, nil
		}

		edits := Edits(diags, opts.Mode)
		if len(edits) == 0 {
			return res, nil
		}

		out, n := ApplyEdits(res.Output, edits)
		if n == 0 {
			return res, nil
		}
		res.Output = out
		res.Passes++
		res.Applied += n
		logger.Debug("applied fixes", "path", path, "pass", res.Passes, "edits", n)
	}
}
