// Package report renders verdicts as human-readable text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/you-not-fish/fcheck/internal/check"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

// Accepted is the message printed for a well-formed program.
const Accepted = "Your program is lexically and syntactically correct!!"

// Fprint writes v to w. A rejected verdict is rendered as
//
//	file:line:col: error: message
//	    source line
//	    ^
//
// The source excerpt is omitted when buf is nil or the position is not in buf.
func Fprint(w io.Writer, buf *syntax.Buffer, v check.Verdict) error {
	label := ""
	if buf != nil && buf.Filename() != "" {
		label = buf.Filename() + ": "
	}

	if v.WellFormed {
		_, err := fmt.Fprintf(w, "%s%s\n", label, Accepted)
		return err
	}

	d := v.Diagnostic
	if d == nil {
		_, err := fmt.Fprintf(w, "%serror: program rejected\n", label)
		return err
	}

	if _, err := fmt.Fprintf(w, "%s\n", d); err != nil {
		return err
	}
	if buf == nil {
		return nil
	}
	line, ok := buf.Line(d.Pos.Line())
	if !ok {
		return nil
	}
	_, err := fmt.Fprintf(w, "    %s\n    %s^\n", expandTabs(line), caretIndent(linePrefix(buf, line, d.Pos)))
	return err
}

// linePrefix returns the text of line that precedes pos.
func linePrefix(buf *syntax.Buffer, line string, pos syntax.Pos) string {
	start, ok := buf.Offset(syntax.NewPos(buf.Filename(), pos.Line(), 1))
	if !ok {
		return ""
	}
	end, ok := buf.Offset(pos)
	if !ok || end-start > len(line) {
		return line
	}
	return string(buf.Bytes()[start:end])
}

// expandTabs replaces tabs so the caret lines up in any terminal.
func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", "    ")
}

// caretIndent returns the padding that puts a caret just after prefix.
func caretIndent(prefix string) string {
	var b strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			b.WriteString("    ")
		} else {
			b.WriteByte(' ')
		}
	}
	return b.String()
}
