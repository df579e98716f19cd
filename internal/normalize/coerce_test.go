package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntField(t *testing.T) {
	m := map[string]any{
		"float":    float64(7),
		"int":      3,
		"digits":   " 42 ",
		"overflow": "99999999999999999999",
		"junk":     "4x",
		"empty":    "",
		"bool":     true,
	}

	n, ok := intField(m, "float")
	assert.True(t, ok)
	assert.Equal(t, 7, n)

	n, ok = intField(m, "int")
	assert.True(t, ok)
	assert.Equal(t, 3, n)

	n, ok = intField(m, "digits")
	assert.True(t, ok)
	assert.Equal(t, 42, n)

	for _, key := range []string{"overflow", "junk", "empty", "bool", "missing"} {
		_, ok := intField(m, key)
		assert.False(t, ok, "key %q", key)
	}
}

func TestTruncateString_RuneBoundary(t *testing.T) {
	assert.Equal(t, "ééé", truncateString("ééééé", 3))
	assert.Equal(t, "abc", truncateString("abc", 10))
}
