package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/fcheck/internal/check"
	"github.com/you-not-fish/fcheck/internal/report"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

func newTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens FILE",
		Short: "Print the token stream of an FC source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(cmd.OutOrStdout(), args[0])
		},
	}
}

// runTokens scans a file and prints all tokens with positions.
func runTokens(w io.Writer, filename string) error {
	buf, err := readBuffer(filename)
	if err != nil {
		return err
	}

	items, err := syntax.Tokenize(buf)

	fmt.Fprintf(w, "%-20s %-16s %-10s %s\n", "POSITION", "CLASS", "TOKEN", "LITERAL")
	fmt.Fprintf(w, "%-20s %-16s %-10s %s\n", strings.Repeat("-", 20), strings.Repeat("-", 16), strings.Repeat("-", 10), strings.Repeat("-", 20))
	for _, it := range items {
		fmt.Fprintf(w, "%-20s %-16s %-10s %s\n", it.Pos, it.Class(), it.Tok, formatLiteral(it))
	}

	if err != nil {
		fmt.Fprintln(w)
		if err := report.Fprint(w, buf, check.Verdict{Diagnostic: check.DiagnosticFor(err)}); err != nil {
			return &exitError{code: 2, err: err}
		}
		return &exitError{code: 1}
	}
	return nil
}

// formatLiteral escapes literal text for display.
func formatLiteral(it syntax.Item) string {
	if it.Class() == syntax.ClassStringLit || it.Class() == syntax.ClassCharLit {
		return it.String()
	}
	return strconv.Quote(it.Lit)
}

// readBuffer reads a whole source file.
func readBuffer(filename string) (*syntax.Buffer, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, &exitError{code: 2, err: err}
	}
	defer f.Close()

	buf, err := syntax.ReadBuffer(filename, f)
	if err != nil {
		return nil, &exitError{code: 2, err: fmt.Errorf("reading %s: %w", filename, err)}
	}
	return buf, nil
}
