package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/fcheck/internal/check"
	"github.com/you-not-fish/fcheck/internal/report"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

func newASTCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "ast FILE",
		Short: "Print the syntax tree of an FC source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAST(cmd.OutOrStdout(), args[0], format)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text or json)")
	return cmd
}

// runAST parses a file and prints its syntax tree. Only the parser runs;
// semantic errors are not reported here.
func runAST(w io.Writer, filename, format string) error {
	if format != "text" && format != "json" {
		return &exitError{code: 2, err: fmt.Errorf("unknown format %q (want text or json)", format)}
	}

	buf, err := readBuffer(filename)
	if err != nil {
		return err
	}

	prog, err := syntax.Parse(buf)
	if err != nil {
		if err := report.Fprint(w, buf, check.Verdict{Diagnostic: check.DiagnosticFor(err)}); err != nil {
			return &exitError{code: 2, err: err}
		}
		return &exitError{code: 1}
	}

	switch format {
	case "json":
		if err := syntax.FprintJSON(w, prog); err != nil {
			return &exitError{code: 2, err: err}
		}
	default:
		syntax.Fprint(w, prog)
	}
	return nil
}
