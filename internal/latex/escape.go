// Package latex converts Unicode text to LaTeX-safe text for BibTeX fields.
package latex

import "strings"

// Escape replaces every code point present in the escape table with its
// LaTeX replacement text. Code points absent from the table pass through
// unchanged. The replacement is a pure per-rune mapping, so it must be
// applied exactly once per field: replacements introduce backslashes and
// braces that are themselves table keys, and a second pass would mangle
// them.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if repl, ok := uniToTeX[r]; ok {
			b.WriteString(repl)
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Lookup returns the table replacement for a single code point and
// whether the code point is in the table.
func Lookup(r rune) (string, bool) {
	repl, ok := uniToTeX[r]
	return repl, ok
}

// TableSize returns the number of code points in the escape table.
func TableSize() int {
	return len(uniToTeX)
}
