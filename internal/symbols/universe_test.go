package symbols

import (
	"strings"
	"testing"
)

func TestParseSignature(t *testing.T) {
	tests := []struct {
		text    string
		want    Signature
		wantErr string
	}{
		{text: "foo=2", want: Signature{Name: "foo", Params: 2}},
		{text: "log=1+", want: Signature{Name: "log", Params: 1, Variadic: true}},
		{text: " bar = 0 ", want: Signature{Name: "bar"}},
		{text: "any=0+", want: Signature{Name: "any", Variadic: true}},
		{text: "foo", wantErr: "want name=N"},
		{text: "=2", wantErr: "want name=N"},
		{text: "foo=", wantErr: "want name=N"},
		{text: "foo=x", wantErr: "bad parameter count"},
		{text: "foo=-1", wantErr: "bad parameter count"},
		{text: "while=1", wantErr: "is a keyword"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, err := ParseSignature(tt.text)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("ParseSignature(%q) error = %v, want %q", tt.text, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseSignature(%q): %v", tt.text, err)
			}
			if got != tt.want {
				t.Errorf("ParseSignature(%q) = %+v, want %+v", tt.text, got, tt.want)
			}
		})
	}
}

func TestSignatureRoundTrip(t *testing.T) {
	for _, sig := range DefaultBuiltins() {
		got, err := ParseSignature(sig.String())
		if err != nil {
			t.Fatalf("ParseSignature(%q): %v", sig, err)
		}
		if got != sig {
			t.Errorf("round trip %v = %v", sig, got)
		}
	}
}

func TestSignatureAccepts(t *testing.T) {
	fixed := Signature{Name: "atoi", Params: 1}
	variadic := Signature{Name: "printf", Params: 1, Variadic: true}

	tests := []struct {
		sig   Signature
		nargs int
		want  bool
	}{
		{fixed, 0, false},
		{fixed, 1, true},
		{fixed, 2, false},
		{variadic, 0, false},
		{variadic, 1, true},
		{variadic, 5, true},
	}
	for _, tt := range tests {
		if got := tt.sig.Accepts(tt.nargs); got != tt.want {
			t.Errorf("%v.Accepts(%d) = %v, want %v", tt.sig, tt.nargs, got, tt.want)
		}
	}

	if got := fixed.Want(); got != "1" {
		t.Errorf("Want() = %q, want 1", got)
	}
	if got := variadic.Want(); got != "at least 1" {
		t.Errorf("Want() = %q, want \"at least 1\"", got)
	}
}

func TestNewUniverse(t *testing.T) {
	u := NewUniverse(DefaultBuiltins())

	for _, name := range []string{"printf", "gets", "atoi", "puts", "getchar"} {
		obj := u.Lookup(name)
		if obj == nil {
			t.Errorf("universe lacks %s", name)
			continue
		}
		if obj.Kind() != BuiltinKind {
			t.Errorf("%s kind = %v, want %v", name, obj.Kind(), BuiltinKind)
		}
		if obj.Pos().IsValid() {
			t.Errorf("%s has a source position", name)
		}
	}
	if u.Depth() != 0 || u.Parent() != nil {
		t.Errorf("universe is not a root scope")
	}
}

func TestNewUniverseOverride(t *testing.T) {
	builtins := append(DefaultBuiltins(), Signature{Name: "printf", Params: 2}, Signature{Name: "exit", Params: 1})
	u := NewUniverse(builtins)

	printf := u.Lookup("printf").(Callable)
	if sig := printf.Signature(); sig.Params != 2 || sig.Variadic {
		t.Errorf("printf = %v, want printf=2", sig)
	}
	if u.Lookup("exit") == nil {
		t.Error("exit not declared")
	}
	if u.Len() != 6 {
		t.Errorf("Len() = %d, want 6", u.Len())
	}
}

func TestDefaultBuiltinsIsCopy(t *testing.T) {
	a := DefaultBuiltins()
	a[0].Params = 99
	if b := DefaultBuiltins(); b[0].Params == 99 {
		t.Error("DefaultBuiltins shares its backing array")
	}
}
