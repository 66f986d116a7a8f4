// Package typeset prepares user text for the backend's LaTeX-based
// rendering pipeline: special-character escaping and date normalization.
package typeset

import "strings"

var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\textasciicircum{}`,
)

// Escape substitutes every LaTeX special character in s. Any other rune
// passes through untouched and the empty string maps to itself, so the
// function is total. It is NOT idempotent: escaping already-escaped text
// double-escapes, so callers must escape exactly once, on the way to the
// render and generate endpoints.
func Escape(s string) string {
	if s == "" {
		return ""
	}
	return escaper.Replace(s)
}
