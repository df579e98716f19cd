package normalize

import (
	"strings"
	"time"
)

// Present is the literal models use for ongoing dates.
const Present = "present"

// IsPresent reports whether s is the "present" literal.
func IsPresent(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), Present)
}

// ParseFlexibleDate accepts "YYYY-MM", a bare "YYYY", or the "present"
// literal (mapped to now). Anything else is absent, never an error.
func ParseFlexibleDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if IsPresent(s) {
		return time.Now(), true
	}
	for _, layout := range []string{"2006-01", "2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// YearOf returns the calendar year of a flexible date, if parseable.
func YearOf(s string) (int, bool) {
	t, ok := ParseFlexibleDate(s)
	if !ok {
		return 0, false
	}
	return t.Year(), true
}
