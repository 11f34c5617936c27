package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/you-not-fish/fcheck/internal/check"
	"github.com/you-not-fish/fcheck/internal/symbols"
)

// Version information
const Version = "0.1.0-dev"

// options holds the flags shared by all subcommands.
type options struct {
	builtins []string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "fcheck",
		Short: "Lexer, parser and validator for FC programs",
		Long: `fcheck decides whether FC programs are lexically and syntactically
well-formed and reports the first error when they are not.

Commands:
  check   Validate one or more source files
  tokens  Print the token stream of a file
  ast     Print the syntax tree of a file
  repl    Check programs typed interactively
`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringArrayVarP(&opts.builtins, "builtin", "b", nil,
		"declare or override a built-in function as name=N, or name=N+ for at least N arguments")

	root.AddCommand(
		newCheckCmd(opts),
		newTokensCmd(),
		newASTCmd(),
		newReplCmd(opts),
		newVersionCmd(),
	)
	return root
}

// config builds the checker configuration from the default built-ins
// plus any --builtin overrides.
func (o *options) config() (*check.Config, error) {
	builtins := symbols.DefaultBuiltins()
	for _, text := range o.builtins {
		sig, err := symbols.ParseSignature(text)
		if err != nil {
			return nil, &exitError{code: 2, err: err}
		}
		builtins = append(builtins, sig)
	}
	return &check.Config{Builtins: builtins}, nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "fcheck version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "go version %s\n", runtime.Version())
		},
	}
}
