package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/you-not-fish/fcheck/internal/check"
	"github.com/you-not-fish/fcheck/internal/report"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

func newCheckCmd(opts *options) *cobra.Command {
	var (
		jobs    int
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Validate one or more FC source files",
		Long: `Validate each FILE independently and print its verdict.
Files are checked in parallel; verdicts are printed in argument order.
The exit status is 1 if any file is rejected.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := opts.config()
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), args, conf, jobs, verbose)
		},
	}
	cmd.Flags().IntVarP(&jobs, "jobs", "j", runtime.GOMAXPROCS(0), "maximum number of files checked at once")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "print per-file timing to stderr")
	return cmd
}

// fileResult is the outcome of one independent validation run.
type fileResult struct {
	buf     *syntax.Buffer
	verdict check.Verdict
	elapsed time.Duration
}

// runCheck validates files concurrently. Runs share nothing but conf,
// which is only read.
func runCheck(ctx context.Context, stdout, stderr io.Writer, files []string, conf *check.Config, jobs int, verbose bool) error {
	results := make([]fileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, name := range files {
		i, name := i, name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(name)
			if err != nil {
				return fmt.Errorf("reading source: %w", err)
			}
			start := time.Now()
			buf := syntax.NewBuffer(name, data)
			results[i] = fileResult{
				buf:     buf,
				verdict: check.ValidateBuffer(buf, conf),
				elapsed: time.Since(start),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return &exitError{code: 2, err: err}
	}

	rejected := 0
	for _, r := range results {
		if err := report.Fprint(stdout, r.buf, r.verdict); err != nil {
			return &exitError{code: 2, err: err}
		}
		if verbose {
			fmt.Fprintf(stderr, "%s: checked in %s\n", r.buf.Filename(), r.elapsed)
		}
		if !r.verdict.WellFormed {
			rejected++
		}
	}
	if rejected > 0 {
		return &exitError{code: 1}
	}
	return nil
}
