package constants

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMIMEForExt(t *testing.T) {
	mt, ok := MIMEForExt(".PDF")
	assert.True(t, ok)
	assert.Equal(t, MIMEPDF, mt)

	mt, ok = MIMEForExt("docx")
	assert.True(t, ok)
	assert.Equal(t, MIMEWordOOXML, mt)

	_, ok = MIMEForExt(".png")
	assert.False(t, ok)
}

func TestMapMIMEToFormat(t *testing.T) {
	f, ok := MapMIMEToFormat(MIMEPDF)
	assert.True(t, ok)
	assert.Equal(t, PDF, f)

	f, ok = MapMIMEToFormat(MIMEWordLegacy)
	assert.True(t, ok)
	assert.Equal(t, DOCX, f)

	_, ok = MapMIMEToFormat("text/plain")
	assert.False(t, ok)
}
