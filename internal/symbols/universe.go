package symbols

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/you-not-fish/fcheck/internal/syntax"
)

// Signature is the arity of a callable. The checker only counts arguments;
// parameter and result types are not checked.
type Signature struct {
	Name     string
	Params   int  // number of fixed parameters
	Variadic bool // accepts any number of arguments beyond Params
}

// Accepts reports whether a call with nargs arguments matches s.
func (s Signature) Accepts(nargs int) bool {
	if s.Variadic {
		return nargs >= s.Params
	}
	return nargs == s.Params
}

// Want describes the accepted argument count, e.g. "1" or "at least 1".
func (s Signature) Want() string {
	if s.Variadic {
		return "at least " + strconv.Itoa(s.Params)
	}
	return strconv.Itoa(s.Params)
}

// String formats s as name=N, or name=N+ when variadic.
func (s Signature) String() string {
	if s.Variadic {
		return fmt.Sprintf("%s=%d+", s.Name, s.Params)
	}
	return fmt.Sprintf("%s=%d", s.Name, s.Params)
}

// ParseSignature parses the name=N and name=N+ forms produced by String.
func ParseSignature(text string) (Signature, error) {
	name, arity, ok := strings.Cut(text, "=")
	name = strings.TrimSpace(name)
	arity = strings.TrimSpace(arity)
	if !ok || name == "" || arity == "" {
		return Signature{}, fmt.Errorf("invalid built-in signature %q: want name=N or name=N+", text)
	}
	if syntax.LookupKeyword(name).IsKeyword() {
		return Signature{}, fmt.Errorf("invalid built-in signature %q: %s is a keyword", text, name)
	}

	sig := Signature{Name: name}
	if strings.HasSuffix(arity, "+") {
		sig.Variadic = true
		arity = strings.TrimSuffix(arity, "+")
	}
	n, err := strconv.Atoi(arity)
	if err != nil || n < 0 {
		return Signature{}, fmt.Errorf("invalid built-in signature %q: bad parameter count", text)
	}
	sig.Params = n
	return sig, nil
}

// DefaultBuiltins returns a fresh copy of the standard library surface
// available to every FC program.
func DefaultBuiltins() []Signature {
	return []Signature{
		{Name: "printf", Params: 1, Variadic: true}, // format, values...
		{Name: "gets"},                              // reads one line
		{Name: "atoi", Params: 1},                   // string to integer
		{Name: "puts", Params: 1},
		{Name: "getchar"},
	}
}

// NewUniverse creates a root scope holding one Builtin per signature.
// Later signatures replace earlier ones with the same name, so callers can
// override defaults by appending.
func NewUniverse(builtins []Signature) *Scope {
	u := NewScope(nil, syntax.NoPos, "universe")
	for _, sig := range builtins {
		b := NewBuiltin(sig)
		b.setParent(u)
		u.elems[sig.Name] = b
	}
	return u
}
