package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/you-not-fish/fcheck/internal/check"
	"github.com/you-not-fish/fcheck/internal/report"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

const (
	promptMain  = "fc> "
	promptCont  = "... "
	historyFile = ".fcheck_history"
)

const banner = `fcheck interactive mode
Type a program and finish it with an empty line. :builtins lists built-ins, :quit exits.`

func newReplCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Check programs typed interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf, err := opts.config()
			if err != nil {
				return err
			}
			return runRepl(cmd.OutOrStdout(), conf)
		},
	}
}

func runRepl(w io.Writer, conf *check.Config) error {
	fmt.Fprintln(w, banner)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if histPath := historyPath(); histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	s := &session{w: w, conf: conf}
	for {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Fprintln(w)
			return nil
		}
		quit, err := s.eval(src)
		if err != nil {
			return &exitError{code: 2, err: err}
		}
		if quit {
			return nil
		}
		if strings.TrimSpace(src) != "" {
			ln.AppendHistory(strings.ReplaceAll(strings.TrimSpace(src), "\n", " "))
		}
	}
}

// historyPath returns the history file location, or "" if the home
// directory is unknown.
func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// readProgram reads lines until an empty line. A line starting with ':'
// on its own is returned immediately as a command.
// It reports false at end of input.
func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		switch {
		case errors.Is(err, io.EOF):
			return b.String(), b.Len() > 0
		case errors.Is(err, liner.ErrPromptAborted):
			return "", true // Ctrl-C discards the pending program
		case err != nil:
			return "", false
		}

		if strings.TrimSpace(line) == "" {
			return b.String(), true
		}
		if b.Len() == 0 && strings.HasPrefix(strings.TrimSpace(line), ":") {
			return line, true
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
}

// session checks the programs entered in one interactive run.
type session struct {
	w    io.Writer
	conf *check.Config
	n    int // programs checked so far
}

// eval handles one entry and reports whether the session should end.
// A non-nil error means output could not be written.
func (s *session) eval(src string) (quit bool, err error) {
	cmd := strings.TrimSpace(src)
	switch {
	case cmd == "":
		return false, nil
	case cmd == ":quit" || cmd == ":q":
		return true, nil
	case cmd == ":builtins":
		for _, sig := range s.conf.Builtins {
			if _, err := fmt.Fprintf(s.w, "  %s\n", sig); err != nil {
				return true, err
			}
		}
		return false, nil
	case strings.HasPrefix(cmd, ":"):
		_, err := fmt.Fprintf(s.w, "unknown command %s. Type :quit to exit.\n", cmd)
		return err != nil, err
	}

	s.n++
	buf := syntax.NewBuffer(fmt.Sprintf("<input %d>", s.n), []byte(src))
	if err := report.Fprint(s.w, buf, check.ValidateBuffer(buf, s.conf)); err != nil {
		return true, err
	}
	return false, nil
}
