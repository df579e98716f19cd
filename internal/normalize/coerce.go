package normalize

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Helpers that treat the model payload as an untrusted, weakly-typed
// document: every access is type-checked, every miss degrades to a zero
// value. All pure functions.

func stringField(m map[string]any, key string) string {
	s, _ := m[key].(string)
	return strings.TrimSpace(s)
}

func intField(m map[string]any, key string) (int, bool) {
	switch v := m[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

func mapField(m map[string]any, key string) map[string]any {
	mm, _ := m[key].(map[string]any)
	return mm
}

// stringSlice coerces v to a list of non-empty strings, dropping entries of
// any other type, and truncates to max (0 = unbounded). A missing or
// wrong-shaped source yields an empty, non-nil slice.
func stringSlice(v any, max int) []string {
	out := []string{}
	items, ok := v.([]any)
	if !ok {
		return out
	}
	for _, it := range items {
		s, ok := it.(string)
		if !ok {
			continue
		}
		if s = strings.TrimSpace(s); s == "" {
			continue
		}
		out = append(out, s)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// objectSlice coerces v to a list of JSON objects, dropping anything else.
func objectSlice(v any) []map[string]any {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		if m, ok := it.(map[string]any); ok {
			out = append(out, m)
		}
	}
	return out
}

// truncateString hard-bounds free text to max runes.
func truncateString(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	return string([]rune(s)[:max])
}
