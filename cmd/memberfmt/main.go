// Package main is the entry point for memberfmt.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	_ "github.com/donaldgifford/memberfmt/internal/rules" // Register rules via init().
	"github.com/donaldgifford/memberfmt/internal/runner"
)

// Build-time variables set via ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// exitError carries an exit code out of a command.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cmd := newRootCmd(stdin, stdout, stderr)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return runner.ExitOK
	}
	var exit *exitError
	if errors.As(err, &exit) {
		return exit.code
	}
	fmt.Fprintf(stderr, "memberfmt: %v\n", err)
	return runner.ExitError
}

func newRootCmd(stdin io.Reader, stdout, stderr io.Writer) *cobra.Command {
	opts := &runner.Options{}

	cmd := &cobra.Command{
		Use:   "memberfmt [flags] [paths...]",
		Short: "Check and fix the order of members in C# types",
		Long: `memberfmt reports C# classes, structs, interfaces, records and record
structs whose members are not ordered as fields, properties, delegates,
events, indexers, constructors, destructors, methods and nested types,
each group sorted by accessibility, const/static/readonly and name.

Directories are walked for *.cs files. With no paths, source is read from
stdin and the fixed source is written to stdout.`,
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Paths = args
			opts.Stdin = stdin
			opts.Stdout = stdout
			opts.Stderr = stderr
			if code := runner.Run(cmd.Context(), opts); code != runner.ExitOK {
				return &exitError{code: code}
			}
			return nil
		},
	}
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("memberfmt {{.Version}} (" + commit + ") " + date + "\n")

	f := cmd.Flags()
	f.BoolVar(&opts.Check, "check", false, "report findings without fixing; exit 1 if there are any")
	f.BoolVar(&opts.Diff, "diff", false, "print a unified diff of the fixes")
	f.BoolVarP(&opts.Write, "write", "w", false, "write fixes back to the files")
	f.StringVar(&opts.FixMode, "fix-mode", "", "fix a whole type at once (type) or one member per pass (member)")
	f.StringVar(&opts.Format, "format", runner.FormatText, "diagnostic output format (text|json)")
	f.StringVar(&opts.ConfigPath, "config", "", "path to config file")
	f.IntVar(&opts.Jobs, "jobs", 0, "number of files processed in parallel (default GOMAXPROCS)")
	f.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress informational output")
	f.BoolVarP(&opts.Verbose, "verbose", "v", false, "log files as they are processed")
	f.StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")
	f.BoolVar(&opts.NoColor, "no-color", false, "disable colored output")
	cmd.MarkFlagsMutuallyExclusive("check", "diff", "write")

	cmd.AddCommand(newRulesCmd(), newVersionCmd())
	return cmd
}
