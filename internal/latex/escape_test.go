package latex

import "testing"

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain ascii passes through", "A Study of Enzymes", "A Study of Enzymes"},
		{"e acute", "café", `caf{\'{e}}`},
		{"ampersand", "A & B", `A {\&} B`},
		{"percent", "50% faster", `50{\%} faster`},
		{"micro sign", "10 µm", `10 $\mathrm{\mu}$m`},
		{"greek alpha", "α-helix", `$\upalpha$-helix`},
		{"sharp s", "Straße", `Stra{\ss}e`},
		{"empty", "", ""},
		{"combining acute escapes independently", "e\u0301", "e" + mustLookup(t, '\u0301')},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape(tt.input)
			if got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func mustLookup(t *testing.T, r rune) string {
	t.Helper()
	repl, ok := Lookup(r)
	if !ok {
		t.Fatalf("Lookup(%q) missing from table", r)
	}
	return repl
}

func TestEscapeIsDeterministic(t *testing.T) {
	input := "Enzyme études & 100% µ-scale"
	first := Escape(input)
	second := Escape(input)
	if first != second {
		t.Errorf("Escape is not deterministic: %q vs %q", first, second)
	}
}

// Escaping a table-target code point inside surrounding text must match
// escaping it in isolation: replacement is a pure per-rune mapping with
// no ordering dependency.
func TestEscapeIsPositionIndependent(t *testing.T) {
	isolated := Escape("é")
	embedded := Escape("abcédef")
	if embedded != "abc"+isolated+"def" {
		t.Errorf("embedded escape %q does not contain isolated escape %q", embedded, isolated)
	}
}

// The table deliberately contains entries whose replacements introduce
// new table-target runes (backslashes, braces), so a second pass is not
// a no-op. Callers escape exactly once; this pins the non-idempotence
// down so nobody "fixes" it by re-running the escaper.
func TestEscapeSecondPassAltersOutput(t *testing.T) {
	once := Escape("é")
	twice := Escape(once)
	if twice == once {
		t.Errorf("second pass should alter already-escaped text, got %q both times", once)
	}
}

func TestDirectTableLookup(t *testing.T) {
	repl, ok := Lookup('é')
	if !ok {
		t.Fatal("U+00E9 missing from escape table")
	}
	if repl != `{\'{e}}` {
		t.Errorf("table[U+00E9] = %q, want %q", repl, `{\'{e}}`)
	}
}

func TestTableCoversOverAThousandCodePoints(t *testing.T) {
	if n := TableSize(); n < 1000 {
		t.Errorf("escape table has %d entries, expected over a thousand", n)
	}
}
