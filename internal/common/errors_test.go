package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("broken xref table")
	err := NewAppError(ErrPDFExtraction, "decode upload.pdf", cause)

	assert.ErrorIs(t, err, ErrPDFExtraction)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrFileTooLarge)
	assert.Contains(t, err.Error(), "decode upload.pdf")
	assert.Contains(t, err.Error(), "broken xref table")
}

func TestAppError_NestedKindsBothMatch(t *testing.T) {
	inner := NewAppError(ErrOperationTimedOut, "pdf text exceeded 30s", nil)
	outer := NewAppError(ErrPDFExtraction, "decode upload.pdf", inner)

	assert.ErrorIs(t, outer, ErrPDFExtraction)
	assert.ErrorIs(t, outer, ErrOperationTimedOut)
}

func TestWrapError(t *testing.T) {
	assert.NoError(t, WrapError(nil, "context"))

	base := errors.New("no document.xml found")
	wrapped := WrapError(base, "decode resume.docx")
	assert.ErrorIs(t, wrapped, base)
	assert.Contains(t, wrapped.Error(), "decode resume.docx")
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "this file is too large to process",
		UserMessage(NewAppError(ErrFileTooLarge, "12 MiB", nil)))
	assert.Equal(t, "this file type is not supported",
		UserMessage(NewAppError(ErrUnsupportedFileType, "image/png", nil)))
	// tool internals never leak
	assert.Equal(t, "could not process this file",
		UserMessage(NewAppError(ErrOCRWorkerInit, "tesseract unavailable", nil)))
}
