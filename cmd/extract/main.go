package main

import (
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/extract"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/ocr"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/pipeline"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	if len(os.Args) < 2 || len(os.Args) > 3 {
		logger.Error("usage", "cmd", "extract <file> [mime-type]")
		os.Exit(2)
	}
	path := os.Args[1]
	mimeType := ""
	if len(os.Args) == 3 {
		mimeType = os.Args[2]
	} else {
		mt, ok := constants.MIMEForExt(filepath.Ext(path))
		if !ok {
			logger.Error("cannot infer mime type from extension; pass it explicitly", "path", path)
			os.Exit(2)
		}
		mimeType = mt
	}

	cfg := common.LoadConfig()

	ocrAdapter := ocr.NewAdapter(ocr.Config{
		Tesseract:        cfg.OCR.Tesseract,
		Pdftoppm:         cfg.OCR.Pdftoppm,
		Lang:             cfg.OCR.Lang,
		DPI:              cfg.OCR.DPI,
		MaxPages:         cfg.OCR.MaxPages,
		TessdataDir:      cfg.OCR.TessdataDir,
		ArtifactCacheDir: cfg.OCR.ArtifactCacheDir,
		StartTimeout:     cfg.OCR.StartTimeout,
		RecognizeTimeout: cfg.OCR.RecognizeTimeout,
	}, logger)

	dispatcher := extract.NewDispatcher(
		extract.NewPDFExtractor(ocrAdapter, cfg.Extract.PDFTimeout, logger),
		extract.NewDocxExtractor(cfg.Extract.DocxTimeout, logger),
	)
	stage := pipeline.NewExtractStage(cfg.Extract.MaxFileBytes, dispatcher, logger)

	res, err := stage.Run(context.Background(), extract.Request{FilePath: path, MIMEType: mimeType})
	if err != nil {
		logger.Error("extraction failed", "path", path, "error", err, "user_message", common.UserMessage(err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(res); err != nil {
		logger.Error("encode result", "error", err)
		os.Exit(1)
	}
}
