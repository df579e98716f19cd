package pipeline

import (
	"context"
	"log/slog"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/extract"
)

// ExtractStage runs file validation, format dispatch, and text extraction.
// The size guard runs before any extractor is resolved, so oversized or
// missing files never reach a decoder.
type ExtractStage struct {
	MaxFileBytes int64
	Dispatcher   *extract.Dispatcher
	Logger       *slog.Logger
}

func NewExtractStage(maxFileBytes int64, dispatcher *extract.Dispatcher, logger *slog.Logger) *ExtractStage {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractStage{MaxFileBytes: maxFileBytes, Dispatcher: dispatcher, Logger: logger}
}

func (s *ExtractStage) Run(ctx context.Context, req extract.Request) (extract.Result, error) {
	if err := extract.CheckFile(req.FilePath, s.MaxFileBytes); err != nil {
		s.Logger.Warn("extract.guard.rejected", "path", req.FilePath, "error", err)
		return extract.Result{}, err
	}

	ex, err := s.Dispatcher.Dispatch(req.MIMEType)
	if err != nil {
		s.Logger.Warn("extract.dispatch.rejected", "path", req.FilePath, "mime", req.MIMEType)
		return extract.Result{}, err
	}

	res, err := ex.Extract(ctx, req.FilePath)
	if err != nil {
		s.Logger.Error("extract.failed", "path", req.FilePath, "mime", req.MIMEType, "error", err)
		return extract.Result{}, err
	}

	format, _ := constants.MapMIMEToFormat(req.MIMEType)
	s.Logger.Info("extract.ok",
		"path", req.FilePath,
		"format", string(format),
		"method", res.Method,
		"pages", res.Pages,
		"chars", len(res.Text),
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res, nil
}
