package ocr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/extract"
)

type workerState int

const (
	stateUninitialized workerState = iota
	stateStarting
	stateReady
	stateRecognizing
	stateTerminated
)

// Config for the OCR engine binaries.
type Config struct {
	Tesseract string // binary name or absolute path; if empty -> "tesseract"
	Pdftoppm  string // binary name or absolute path; if empty -> "pdftoppm"

	Lang     string // default "eng"
	DPI      int    // rasterization DPI for scanned PDFs, default 300
	MaxPages int    // 0 = no limit

	TessdataDir      string
	ArtifactCacheDir string

	StartTimeout     time.Duration
	RecognizeTimeout time.Duration
}

// worker is one single-use OCR engine instance. Lifecycle:
// uninitialized -> starting -> ready -> recognizing -> terminated.
// It is owned exclusively by the adapter invocation that created it and never
// survives past one recognize operation.
type worker struct {
	cfg     Config
	runner  Runner
	logger  *slog.Logger
	state   workerState
	workDir string
}

func newWorker(cfg Config, runner Runner, logger *slog.Logger) *worker {
	return &worker{cfg: cfg, runner: runner, logger: logger}
}

// start verifies the engine binary responds and prepares the page workspace.
// The workspace is created before the deadline race begins, so workDir is
// always set by the time start returns and terminate can remove it on the
// timeout path too.
func (w *worker) start(ctx context.Context) error {
	w.state = stateStarting
	dir, err := os.MkdirTemp(w.cfg.ArtifactCacheDir, "ocr-*")
	if err != nil {
		return fmt.Errorf("create workspace: %w", err)
	}
	w.workDir = dir
	_, err = extract.WithTimeout(ctx, w.cfg.StartTimeout, "ocr worker start",
		func(ctx context.Context) (struct{}, error) {
			if _, errb, err := w.runner.Run(ctx, w.cfg.Tesseract, "--version"); err != nil {
				return struct{}{}, fmt.Errorf("tesseract unavailable: %w (%s)", err, truncate(string(errb), 2<<10))
			}
			return struct{}{}, nil
		})
	if err != nil {
		return err
	}
	w.state = stateReady
	return nil
}

// recognize runs OCR over the file, bounded by the recognize timeout. PDFs
// are rasterized page-by-page first; images go straight to the engine.
func (w *worker) recognize(ctx context.Context, path string) (string, error) {
	if w.state != stateReady {
		return "", fmt.Errorf("worker not ready (state %d)", w.state)
	}
	w.state = stateRecognizing
	return extract.WithTimeout(ctx, w.cfg.RecognizeTimeout, "ocr recognize",
		func(ctx context.Context) (string, error) {
			return w.recognizeFile(ctx, path)
		})
}

func (w *worker) recognizeFile(ctx context.Context, path string) (string, error) {
	pages := []string{path}
	if constants.NormalizeExt(filepath.Ext(path)) == "pdf" {
		rendered, err := w.rasterize(ctx, path)
		if err != nil {
			return "", err
		}
		pages = rendered
	}

	var b strings.Builder
	for _, img := range pages {
		args := []string{img, "stdout", "-l", w.cfg.Lang}
		if w.cfg.TessdataDir != "" {
			args = append(args, "--tessdata-dir", w.cfg.TessdataDir)
		}
		out, errb, err := w.runner.Run(ctx, w.cfg.Tesseract, args...)
		if err != nil {
			return "", fmt.Errorf("tesseract %s: %w (%s)", filepath.Base(img), err, truncate(string(errb), 2<<10))
		}
		if b.Len() > 0 {
			b.WriteString("\n\f\n")
		}
		b.Write(out)
	}
	return b.String(), nil
}

func (w *worker) rasterize(ctx context.Context, path string) ([]string, error) {
	prefix := filepath.Join(w.workDir, "page")
	// pdftoppm -r <dpi> -png <in.pdf> <workdir/page>
	_, errb, err := w.runner.Run(ctx, w.cfg.Pdftoppm, "-r", strconv.Itoa(w.cfg.DPI), "-png", path, prefix)
	if err != nil {
		return nil, fmt.Errorf("pdftoppm: %w (%s)", err, truncate(string(errb), 2<<10))
	}
	matches, _ := filepath.Glob(prefix + "-*.png")
	sort.Strings(matches)
	if w.cfg.MaxPages > 0 && len(matches) > w.cfg.MaxPages {
		matches = matches[:w.cfg.MaxPages]
	}
	if len(matches) == 0 {
		return nil, errors.New("pdftoppm produced no images")
	}
	return matches, nil
}

// terminate releases the worker's workspace. Idempotent: the adapter defers
// it so every exit path reaches it, and a second call is a no-op.
func (w *worker) terminate() error {
	if w.state == stateTerminated {
		return nil
	}
	w.state = stateTerminated
	if w.workDir == "" {
		return nil
	}
	return os.RemoveAll(w.workDir)
}
