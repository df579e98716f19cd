package extract

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
)

type stubDecoder struct {
	calls int
	text  string
	err   error
	delay time.Duration
}

func (s *stubDecoder) DecodeText([]byte) (string, error) {
	s.calls++
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	return s.text, s.err
}

func newTestPDFExtractor(dec *stubDecoder, ocr TextExtractor) *PDFExtractor {
	e := NewPDFExtractor(ocr, time.Second, nil)
	e.Decoder = dec
	return e
}

func TestPDFExtractor_DirectTextLayer(t *testing.T) {
	text := strings.Repeat("Senior Engineer with 5 years experience. ", 5) // ~200 chars
	dec := &stubDecoder{text: text}
	ocr := &stubExtractor{}
	e := newTestPDFExtractor(dec, ocr)

	res, err := e.Extract(context.Background(), writeTempFile(t, "resume.pdf", 64))
	require.NoError(t, err)
	assert.Equal(t, MethodDirectPDF, res.Method)
	assert.Greater(t, len(res.Text), 150)
	assert.Equal(t, 1, dec.calls)
	assert.Zero(t, ocr.calls, "ocr must not run when the text layer suffices")
}

func TestPDFExtractor_ScannedFallsThroughToOCR(t *testing.T) {
	dec := &stubDecoder{text: "scan page 1"} // 11 chars, below threshold
	ocr := &stubExtractor{result: Result{Text: strings.Repeat("recognized ", 30), Method: MethodOCR}}
	e := newTestPDFExtractor(dec, ocr)

	res, err := e.Extract(context.Background(), writeTempFile(t, "scan.pdf", 64))
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, res.Method)
	assert.Equal(t, 1, ocr.calls, "ocr runs exactly once")
}

func TestPDFExtractor_WhitespacePaddingDoesNotMeetSufficiencyBar(t *testing.T) {
	// Trimmed length clears the bar, but after whitespace collapsing only a
	// handful of chars remain; the extractor must fall through to OCR.
	dec := &stubDecoder{text: "ab" + strings.Repeat(" ", 80) + "cd"}
	ocr := &stubExtractor{result: Result{Text: strings.Repeat("recognized ", 30), Method: MethodOCR}}
	e := newTestPDFExtractor(dec, ocr)

	res, err := e.Extract(context.Background(), writeTempFile(t, "padded.pdf", 64))
	require.NoError(t, err)
	assert.Equal(t, MethodOCR, res.Method)
	assert.Equal(t, 1, ocr.calls)
}

func TestPDFExtractor_OCRErrorsPropagate(t *testing.T) {
	dec := &stubDecoder{text: ""}
	ocr := &stubExtractor{err: common.NewAppError(common.ErrInsufficientOCRText, "scan.pdf", nil)}
	e := newTestPDFExtractor(dec, ocr)

	_, err := e.Extract(context.Background(), writeTempFile(t, "scan.pdf", 64))
	assert.ErrorIs(t, err, common.ErrInsufficientOCRText)
	assert.Equal(t, 1, ocr.calls)
}

func TestPDFExtractor_DecoderErrorWrapped(t *testing.T) {
	dec := &stubDecoder{err: errors.New("malformed xref table")}
	e := newTestPDFExtractor(dec, &stubExtractor{})

	_, err := e.Extract(context.Background(), writeTempFile(t, "bad.pdf", 64))
	require.ErrorIs(t, err, common.ErrPDFExtraction)
	assert.Contains(t, err.Error(), "malformed xref table")
}

func TestPDFExtractor_DecodeTimeoutWrapped(t *testing.T) {
	dec := &stubDecoder{text: strings.Repeat("x", 200), delay: 200 * time.Millisecond}
	e := newTestPDFExtractor(dec, &stubExtractor{})
	e.Timeout = 10 * time.Millisecond

	_, err := e.Extract(context.Background(), writeTempFile(t, "slow.pdf", 64))
	require.ErrorIs(t, err, common.ErrPDFExtraction)
	assert.ErrorIs(t, err, common.ErrOperationTimedOut)
}

func TestPDFExtractor_MissingFile(t *testing.T) {
	dec := &stubDecoder{}
	e := newTestPDFExtractor(dec, &stubExtractor{})

	_, err := e.Extract(context.Background(), "/does/not/exist.pdf")
	require.ErrorIs(t, err, common.ErrPDFExtraction)
	assert.Zero(t, dec.calls)
}
