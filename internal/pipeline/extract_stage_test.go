package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/extract"
)

type stubExtractor struct {
	calls  int
	result extract.Result
	err    error
}

func (s *stubExtractor) Extract(_ context.Context, _ string) (extract.Result, error) {
	s.calls++
	return s.result, s.err
}

func writeFixture(t *testing.T, size int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "upload.pdf")
	require.NoError(t, os.WriteFile(path, make([]byte, size), 0o600))
	return path
}

func newTestStage(maxBytes int64, ex extract.TextExtractor) (*ExtractStage, *stubExtractor) {
	stub, _ := ex.(*stubExtractor)
	return NewExtractStage(maxBytes, extract.NewDispatcher(ex, ex), nil), stub
}

func TestExtractStage_Succeeds(t *testing.T) {
	stub := &stubExtractor{result: extract.Result{
		Text:     "resume text",
		Method:   extract.MethodDirectPDF,
		Pages:    2,
		Duration: 5 * time.Millisecond,
	}}
	stage, _ := newTestStage(1<<20, stub)

	res, err := stage.Run(context.Background(), extract.Request{
		FilePath: writeFixture(t, 128),
		MIMEType: constants.MIMEPDF,
	})
	require.NoError(t, err)
	assert.Equal(t, "resume text", res.Text)
	assert.Equal(t, extract.MethodDirectPDF, res.Method)
	assert.Equal(t, 1, stub.calls)
}

func TestExtractStage_SizeGuardRunsBeforeExtraction(t *testing.T) {
	stub := &stubExtractor{}
	stage, _ := newTestStage(64, stub)

	_, err := stage.Run(context.Background(), extract.Request{
		FilePath: writeFixture(t, 4096),
		MIMEType: constants.MIMEPDF,
	})
	assert.ErrorIs(t, err, common.ErrFileTooLarge)
	assert.Zero(t, stub.calls)
}

func TestExtractStage_MissingFile(t *testing.T) {
	stub := &stubExtractor{}
	stage, _ := newTestStage(1<<20, stub)

	_, err := stage.Run(context.Background(), extract.Request{
		FilePath: filepath.Join(t.TempDir(), "nope.pdf"),
		MIMEType: constants.MIMEPDF,
	})
	assert.ErrorIs(t, err, common.ErrFileNotFound)
	assert.Zero(t, stub.calls)
}

func TestExtractStage_UnsupportedMIME(t *testing.T) {
	stub := &stubExtractor{}
	stage, _ := newTestStage(1<<20, stub)

	_, err := stage.Run(context.Background(), extract.Request{
		FilePath: writeFixture(t, 128),
		MIMEType: "image/png",
	})
	assert.ErrorIs(t, err, common.ErrUnsupportedFileType)
	assert.Zero(t, stub.calls)
}

func TestExtractStage_ExtractorErrorPropagates(t *testing.T) {
	stub := &stubExtractor{err: common.NewAppError(common.ErrPDFExtraction, "broken xref", nil)}
	stage, _ := newTestStage(1<<20, stub)

	_, err := stage.Run(context.Background(), extract.Request{
		FilePath: writeFixture(t, 128),
		MIMEType: constants.MIMEPDF,
	})
	assert.ErrorIs(t, err, common.ErrPDFExtraction)
	assert.Equal(t, 1, stub.calls)
}
