package typeset

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "plain text untouched", in: "Software Engineer", want: "Software Engineer"},
		{name: "ampersand", in: "C++ & Co.", want: `C++ \& Co.`},
		{name: "percent", in: "grew 40%", want: `grew 40\%`},
		{name: "dollar", in: "$1M budget", want: `\$1M budget`},
		{name: "hash", in: "#1 team", want: `\#1 team`},
		{name: "underscore", in: "snake_case", want: `snake\_case`},
		{name: "braces", in: "{json}", want: `\{json\}`},
		{name: "tilde", in: "~/projects", want: `\textasciitilde{}/projects`},
		{name: "caret", in: "x^2", want: `x\textasciicircum{}2`},
		{name: "backslash", in: `a\b`, want: `a\textbackslash{}b`},
		{name: "mixed", in: `R&D (50%_share)`, want: `R\&D (50\%\_share)`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// Escaping twice double-escapes. That is the documented footgun, not a bug:
// the pipeline escapes exactly once, so the test pins the behavior down.
func TestEscapeNotIdempotent(t *testing.T) {
	once := Escape("&")
	twice := Escape(once)
	if once != `\&` {
		t.Fatalf("first pass = %q", once)
	}
	if twice == once {
		t.Fatalf("expected double escape to differ, got %q twice", twice)
	}
}
