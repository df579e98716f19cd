package ocr

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/extract"
)

type fakeWorker struct {
	startErr     error
	recognizeOut string
	recognizeErr error

	startCalls     int
	recognizeCalls int
	terminateCalls int
}

func (f *fakeWorker) start(context.Context) error {
	f.startCalls++
	return f.startErr
}

func (f *fakeWorker) recognize(context.Context, string) (string, error) {
	f.recognizeCalls++
	return f.recognizeOut, f.recognizeErr
}

func (f *fakeWorker) terminate() error {
	f.terminateCalls++
	return nil
}

func newTestAdapter(w *fakeWorker) *Adapter {
	a := NewAdapter(Config{}, slog.Default())
	a.spawn = func() ocrWorker { return w }
	return a
}

func TestAdapter_Success(t *testing.T) {
	w := &fakeWorker{recognizeOut: strings.Repeat("recognized text ", 20)} // ~320 chars
	a := newTestAdapter(w)

	res, err := a.Extract(context.Background(), "scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, extract.MethodOCR, res.Method)
	assert.Greater(t, len(res.Text), 250)
	assert.Equal(t, 1, w.terminateCalls, "worker terminated exactly once")
}

func TestAdapter_StartFailureTerminatesWorker(t *testing.T) {
	w := &fakeWorker{startErr: errors.New("tesseract: executable not found")}
	a := newTestAdapter(w)

	_, err := a.Extract(context.Background(), "scan.pdf")
	require.ErrorIs(t, err, common.ErrOCRWorkerInit)
	assert.Zero(t, w.recognizeCalls)
	assert.Equal(t, 1, w.terminateCalls)
}

func TestAdapter_StartTimeoutTerminatesWorker(t *testing.T) {
	w := &fakeWorker{startErr: common.NewAppError(common.ErrOperationTimedOut, "ocr worker start exceeded 10s", nil)}
	a := newTestAdapter(w)

	_, err := a.Extract(context.Background(), "scan.pdf")
	require.ErrorIs(t, err, common.ErrOCRWorkerInit)
	assert.ErrorIs(t, err, common.ErrOperationTimedOut)
	assert.Equal(t, 1, w.terminateCalls)
}

func TestAdapter_RecognizeErrorTerminatesWorker(t *testing.T) {
	w := &fakeWorker{recognizeErr: errors.New("tesseract crashed")}
	a := newTestAdapter(w)

	_, err := a.Extract(context.Background(), "scan.pdf")
	require.Error(t, err)
	assert.Equal(t, 1, w.terminateCalls)
}

func TestAdapter_RecognizeTimeoutTerminatesWorker(t *testing.T) {
	w := &fakeWorker{recognizeErr: common.NewAppError(common.ErrOperationTimedOut, "ocr recognize exceeded 30s", nil)}
	a := newTestAdapter(w)

	_, err := a.Extract(context.Background(), "scan.pdf")
	require.ErrorIs(t, err, common.ErrOperationTimedOut)
	assert.Equal(t, 1, w.terminateCalls)
}

func TestAdapter_InsufficientTextTerminatesWorker(t *testing.T) {
	w := &fakeWorker{recognizeOut: "faint smudge"} // 12 chars, below threshold
	a := newTestAdapter(w)

	_, err := a.Extract(context.Background(), "scan.pdf")
	require.ErrorIs(t, err, common.ErrInsufficientOCRText)
	assert.Equal(t, 1, w.terminateCalls)
}

func TestAdapter_WhitespacePaddingIsInsufficient(t *testing.T) {
	// Sufficiency is judged after whitespace collapsing, so padding between a
	// few recognized glyphs cannot clear the bar.
	w := &fakeWorker{recognizeOut: "ab" + strings.Repeat(" ", 80) + "cd"}
	a := newTestAdapter(w)

	_, err := a.Extract(context.Background(), "scan.pdf")
	require.ErrorIs(t, err, common.ErrInsufficientOCRText)
	assert.Equal(t, 1, w.terminateCalls)
}

func TestNewAdapter_Defaults(t *testing.T) {
	a := NewAdapter(Config{}, nil)
	assert.Equal(t, "tesseract", a.cfg.Tesseract)
	assert.Equal(t, "pdftoppm", a.cfg.Pdftoppm)
	assert.Equal(t, "eng", a.cfg.Lang)
	assert.Equal(t, 300, a.cfg.DPI)
	assert.Equal(t, 10*time.Second, a.cfg.StartTimeout)
	assert.Equal(t, 30*time.Second, a.cfg.RecognizeTimeout)
}
