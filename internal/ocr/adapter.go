package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/extract"
)

// ocrWorker is what the adapter drives. Narrowed to an interface so tests can
// count lifecycle transitions.
type ocrWorker interface {
	start(ctx context.Context) error
	recognize(ctx context.Context, path string) (string, error)
	terminate() error
}

// Adapter implements extract.TextExtractor over a single-use OCR worker:
// create, recognize, terminate. Once obtained, the worker handle is
// terminated on every exit path: start timeout, recognize timeout, recognize
// error, insufficient text, or success. Termination failures are logged and
// never mask the original error.
type Adapter struct {
	cfg    Config
	logger *slog.Logger
	spawn  func() ocrWorker
}

func NewAdapter(cfg Config, logger *slog.Logger) *Adapter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.Lang == "" {
		cfg.Lang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 300
	}
	if cfg.ArtifactCacheDir == "" {
		cfg.ArtifactCacheDir = os.TempDir()
	}
	if cfg.StartTimeout <= 0 {
		cfg.StartTimeout = 10 * time.Second
	}
	if cfg.RecognizeTimeout <= 0 {
		cfg.RecognizeTimeout = 30 * time.Second
	}
	a := &Adapter{cfg: cfg, logger: logger}
	runner := execRunner{logger: logger}
	a.spawn = func() ocrWorker { return newWorker(cfg, runner, logger) }
	return a
}

func (a *Adapter) Extract(ctx context.Context, path string) (extract.Result, error) {
	start := time.Now()

	w := a.spawn()
	defer func() {
		if err := w.terminate(); err != nil {
			a.logger.Warn("ocr.worker.terminate_failed", "path", path, "error", err)
		}
	}()

	if err := w.start(ctx); err != nil {
		return extract.Result{}, common.NewAppError(common.ErrOCRWorkerInit, "start worker for "+path, err)
	}

	text, err := w.recognize(ctx, path)
	if err != nil {
		if errors.Is(err, common.ErrOperationTimedOut) {
			return extract.Result{}, err
		}
		return extract.Result{}, common.NewAppError(common.ErrPDFExtraction, "recognize "+path, err)
	}

	normalized := extract.NormalizeWhitespace(text)
	if len(normalized) < constants.MinSufficientChars {
		// Empty, corrupted, or unreadable scan: fail loudly instead of
		// returning low-confidence output.
		return extract.Result{}, common.NewAppError(common.ErrInsufficientOCRText,
			fmt.Sprintf("%s yielded %d usable chars", path, len(normalized)), nil)
	}

	a.logger.Info("ocr.extract.ok", "path", path, "chars", len(normalized),
		"elapsed_ms", time.Since(start).Milliseconds())

	return extract.Result{
		Text:     normalized,
		Method:   extract.MethodOCR,
		Pages:    1 + strings.Count(text, "\f"),
		Duration: time.Since(start),
	}, nil
}
