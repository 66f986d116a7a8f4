package typeset

import "regexp"

var yearMonth = regexp.MustCompile(`^\d{4}-\d{2}$`)

// NormalizeDate canonicalizes a date string to YYYY-MM-DD. Month-granular
// input (the month-picker shape, YYYY-MM) gets "-01" appended; full dates
// pass through. Anything else is forwarded unchanged rather than rejected;
// the backend is the validator of last resort. Idempotent.
func NormalizeDate(s string) string {
	if yearMonth.MatchString(s) {
		return s + "-01"
	}
	return s
}
