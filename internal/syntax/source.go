package syntax

import (
	"bytes"
	"io"
	"unicode/utf8"
)

// Buffer holds the raw text of one program together with its label.
// It gives random access to source lines for diagnostics.
// A Buffer is never modified after construction.
type Buffer struct {
	filename string
	data     []byte
	lines    []int // byte offset of the start of each line
}

// NewBuffer creates a Buffer over data. The caller must not modify data afterwards.
func NewBuffer(filename string, data []byte) *Buffer {
	b := &Buffer{filename: filename, data: data, lines: []int{0}}
	for i, c := range data {
		if c == '\n' {
			b.lines = append(b.lines, i+1)
		}
	}
	return b
}

// ReadBuffer reads all of r into a new Buffer.
func ReadBuffer(filename string, r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return NewBuffer(filename, data), nil
}

// Filename returns the label the buffer was created with.
func (b *Buffer) Filename() string { return b.filename }

// Bytes returns the raw source text.
func (b *Buffer) Bytes() []byte { return b.data }

// NumLines returns the number of lines in the buffer.
// An empty buffer has one (empty) line.
func (b *Buffer) NumLines() int { return len(b.lines) }

// Line returns the text of the 1-based line n, without its line terminator.
func (b *Buffer) Line(n uint32) (string, bool) {
	if n == 0 || int(n) > len(b.lines) {
		return "", false
	}
	start := b.lines[n-1]
	end := len(b.data)
	if int(n) < len(b.lines) {
		end = b.lines[n] - 1
	}
	return string(bytes.TrimSuffix(b.data[start:end], []byte{'\r'})), true
}

// Offset returns the byte offset of pos within the buffer.
func (b *Buffer) Offset(pos Pos) (int, bool) {
	if !pos.IsValid() || int(pos.line) > len(b.lines) {
		return 0, false
	}
	offs := b.lines[pos.line-1] + int(pos.col) - 1
	if offs > len(b.data) {
		return 0, false
	}
	return offs, true
}

// source is a character reader with position tracking over a Buffer.
type source struct {
	buf *Buffer

	line uint32 // current line number (1-based)
	col  uint32 // current column number (1-based, byte offset)

	ch   rune // current character, -1 for EOF
	w    int  // byte width of ch
	offs int  // byte offset of the next character
}

func newSource(buf *Buffer) source {
	s := source{
		buf:  buf,
		line: 1,
		col:  0,  // incremented to 1 by the first nextch
		ch:   -1, // "before first char"
		w:    1,
	}
	s.nextch()
	return s
}

// nextch reads the next character and updates the position.
// (line, col) always refers to s.ch after nextch returns.
func (s *source) nextch() {
	if s.ch == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col += uint32(s.w)
	}

	data := s.buf.data
	if s.offs >= len(data) {
		s.ch = -1
		return
	}

	r, w := utf8.DecodeRune(data[s.offs:])
	s.ch = r
	s.w = w
	s.offs += w
}

// peek returns the character after s.ch without consuming anything.
func (s *source) peek() rune {
	data := s.buf.data
	if s.offs >= len(data) {
		return -1
	}
	r, _ := utf8.DecodeRune(data[s.offs:])
	return r
}

func (s *source) pos() Pos {
	return NewPos(s.buf.filename, s.line, s.col)
}

func isLetter(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || r == '_'
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// isWhitespace reports whether r is skipped between tokens.
// Newlines are included: FC has no newline-sensitive syntax.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n' || r == '\f' || r == '\v'
}
