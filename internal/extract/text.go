package extract

import (
	"regexp"
	"strings"
)

var (
	reSpaces   = regexp.MustCompile(`[ \t\r\f\v]+`)
	reNewlines = regexp.MustCompile(`\n+`)
)

// NormalizeWhitespace collapses whitespace runs while preserving line
// boundaries, and trims the result.
func NormalizeWhitespace(s string) string {
	s = strings.ReplaceAll(s, " ", " ")
	s = reSpaces.ReplaceAllString(s, " ")
	s = reNewlines.ReplaceAllString(s, "\n")
	return strings.TrimSpace(s)
}
