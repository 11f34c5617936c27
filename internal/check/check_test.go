package check

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"github.com/you-not-fish/fcheck/internal/symbols"
	"github.com/you-not-fish/fcheck/internal/syntax"
)

// verdictString renders v the way the .want files in testdata spell it.
func verdictString(v Verdict) string {
	if v.WellFormed {
		return "ok"
	}
	d := v.Diagnostic
	if d == nil {
		return "rejected without diagnostic"
	}
	return fmt.Sprintf("%s %d:%d %s", d.Code, d.Pos.Line(), d.Pos.Col(), d.Message)
}

// TestCorpus runs every NAME.c in testdata/*.txtar and compares the verdict
// with NAME.want.
func TestCorpus(t *testing.T) {
	archives, err := filepath.Glob("testdata/*.txtar")
	if err != nil {
		t.Fatal(err)
	}
	if len(archives) == 0 {
		t.Fatal("no test archives found")
	}

	for _, file := range archives {
		ar, err := txtar.ParseFile(file)
		if err != nil {
			t.Fatal(err)
		}

		wants := make(map[string]string)
		for _, f := range ar.Files {
			if name, ok := strings.CutSuffix(f.Name, ".want"); ok {
				wants[name] = strings.TrimSpace(string(f.Data))
			}
		}

		for _, f := range ar.Files {
			name, ok := strings.CutSuffix(f.Name, ".c")
			if !ok {
				continue
			}
			t.Run(filepath.Base(file)+"/"+name, func(t *testing.T) {
				want, ok := wants[name]
				if !ok {
					t.Fatalf("%s has no %s.want", file, name)
				}
				got := verdictString(Validate(f.Name, f.Data, nil))
				if got != want {
					t.Errorf("verdict:\n got: %s\nwant: %s", got, want)
				}
			})
		}
	}
}

func TestSampleProgram(t *testing.T) {
	src, err := os.ReadFile("testdata/PrimeNumbers.c")
	if err != nil {
		t.Fatal(err)
	}
	v := Validate("PrimeNumbers.c", src, nil)
	if !v.WellFormed {
		t.Fatalf("sample rejected: %s", v.Diagnostic)
	}
}

func TestValidateIdempotent(t *testing.T) {
	srcs := []string{
		"int main() { return 0; }",
		"int main() { return x; }",
		"int x 5",
		"int x = @;",
	}
	for _, src := range srcs {
		first := verdictString(Validate("t.c", []byte(src), nil))
		for i := 0; i < 3; i++ {
			if got := verdictString(Validate("t.c", []byte(src), nil)); got != first {
				t.Errorf("%q: run %d = %s, first run = %s", src, i, got, first)
			}
		}
	}
}

func TestDiagnosticString(t *testing.T) {
	v := Validate("prog.c", []byte("int main() {\n  return y;\n}"), nil)
	if v.WellFormed {
		t.Fatal("expected rejection")
	}
	want := "prog.c:2:10: error: undeclared identifier y"
	if got := v.Diagnostic.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if !v.Diagnostic.Code.IsSemantic() {
		t.Errorf("%v.IsSemantic() = false", v.Diagnostic.Code)
	}
}

func TestCodeString(t *testing.T) {
	tests := []struct {
		code     Code
		want     string
		semantic bool
	}{
		{LexError, "LexError", false},
		{SyntaxError, "SyntaxError", false},
		{DuplicateDeclaration, "DuplicateDeclaration", true},
		{UndeclaredIdentifier, "UndeclaredIdentifier", true},
		{ArityMismatch, "ArityMismatch", true},
		{Code(0), "Code(0)", false},
		{Code(42), "Code(42)", false},
	}
	for _, tt := range tests {
		if got := tt.code.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
		if got := tt.code.IsSemantic(); got != tt.semantic {
			t.Errorf("%s.IsSemantic() = %v, want %v", tt.want, got, tt.semantic)
		}
	}
}

func TestCustomBuiltins(t *testing.T) {
	src := []byte("int main() { exit(1); printf(); }")

	v := Validate("t.c", src, nil)
	if got := verdictString(v); got != "UndeclaredIdentifier 1:14 undeclared function exit" {
		t.Errorf("default builtins: %s", got)
	}

	builtins := append(symbols.DefaultBuiltins(),
		symbols.Signature{Name: "exit", Params: 1},
		symbols.Signature{Name: "printf", Params: 0, Variadic: true},
	)
	v = Validate("t.c", src, &Config{Builtins: builtins})
	if !v.WellFormed {
		t.Errorf("custom builtins: %s", verdictString(v))
	}

	// An empty, non-nil list declares no built-ins at all.
	v = Validate("t.c", []byte("int main() { return atoi(\"1\"); }"), &Config{Builtins: []symbols.Signature{}})
	if got := verdictString(v); got != "UndeclaredIdentifier 1:21 undeclared function atoi" {
		t.Errorf("no builtins: %s", got)
	}
}

func TestCheckerBuiltinTable(t *testing.T) {
	c := &Checker{conf: &Config{}}
	if got := len(c.builtins()); got != len(symbols.DefaultBuiltins()) {
		t.Errorf("nil Builtins: got %d entries, want the default table", got)
	}

	c = &Checker{conf: &Config{Builtins: []symbols.Signature{{Name: "exit", Params: 1}}}}
	got := c.builtins()
	if len(got) != 1 || got[0].Name != "exit" {
		t.Errorf("configured Builtins: got %v, want [exit=1]", got)
	}
}

func TestDuplicateBuiltinMessage(t *testing.T) {
	// A built-in lives in the universe, so redeclaring it at program
	// level shadows it rather than conflicting with it.
	v := Validate("t.c", []byte("int printf;\nint main() { printf = 1; }"), nil)
	if !v.WellFormed {
		t.Errorf("shadowing a built-in rejected: %s", verdictString(v))
	}
}

func TestCheckInfo(t *testing.T) {
	src := `int g;
int f(int p) {
    int l = p;
    {
        int l = g;
        return l;
    }
}
int main() { return f(g); }`

	prog, err := syntax.Parse(syntax.NewBuffer("info.c", []byte(src)))
	if err != nil {
		t.Fatal(err)
	}
	info := &Info{}
	if err := Check(prog, nil, info); err != nil {
		t.Fatalf("Check: %v", err)
	}

	defs := make(map[string]int)
	for name, obj := range info.Defs {
		if name.Value != obj.Name() {
			t.Errorf("Defs[%s] = %s", name.Value, obj.Name())
		}
		defs[name.Value]++
	}
	for name, n := range map[string]int{"g": 1, "f": 1, "main": 1, "p": 1, "l": 2} {
		if defs[name] != n {
			t.Errorf("%s defined %d times, want %d", name, defs[name], n)
		}
	}

	// The inner 'return l' must resolve to the block-local l.
	var innerL *syntax.Name
	syntax.Inspect(prog, func(n syntax.Node) bool {
		if r, ok := n.(*syntax.ReturnStmt); ok {
			if name, ok := r.Result.(*syntax.Name); ok && name.Value == "l" {
				innerL = name
			}
		}
		return true
	})
	if innerL == nil {
		t.Fatal("return l not found")
	}
	obj := info.Uses[innerL]
	if obj == nil {
		t.Fatal("use of l not recorded")
	}
	if got := symbols.Depth(obj); got != 3 {
		t.Errorf("l resolved in scope at depth %d, want 3", got)
	}

	// Scopes: program, two functions, one nested block.
	if len(info.Scopes) != 4 {
		t.Errorf("got %d scopes, want 4", len(info.Scopes))
	}
	if s := info.Scopes[prog]; s == nil || s.Lookup("main") == nil {
		t.Errorf("program scope missing main")
	}
}

func TestCheckerStateIsPerRun(t *testing.T) {
	conf := &Config{}
	bad := []byte("int main() { return zz; }")
	good := []byte("int main() { int zz; return zz; }")

	if Validate("a.c", bad, conf).WellFormed {
		t.Fatal("bad program accepted")
	}
	if v := Validate("b.c", good, conf); !v.WellFormed {
		t.Fatalf("good program rejected after a bad one: %s", verdictString(v))
	}
	if conf.Builtins != nil {
		t.Error("Validate modified the caller's Config")
	}
}

func TestDiagnosticForForeignError(t *testing.T) {
	if d := DiagnosticFor(os.ErrNotExist); d != nil {
		t.Errorf("DiagnosticFor(os.ErrNotExist) = %v, want nil", d)
	}
}
