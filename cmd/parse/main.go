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
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/llm/openai"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/ocr"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/pipeline"
)

// parse runs the full pipeline for one file:
//
//	parse resume <file> [mime-type]
//	parse job <file> [mime-type]
func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))
	slog.SetDefault(logger)

	_ = godotenv.Load()

	if len(os.Args) < 3 || len(os.Args) > 4 {
		logger.Error("usage", "cmd", "parse <resume|job> <file> [mime-type]")
		os.Exit(2)
	}
	kind := os.Args[1]
	path := os.Args[2]
	if kind != "resume" && kind != "job" {
		logger.Error("first argument must be 'resume' or 'job'", "arg", kind)
		os.Exit(2)
	}

	mimeType := ""
	if len(os.Args) == 4 {
		mimeType = os.Args[3]
	} else {
		mt, ok := constants.MIMEForExt(filepath.Ext(path))
		if !ok {
			logger.Error("cannot infer mime type from extension; pass it explicitly", "path", path)
			os.Exit(2)
		}
		mimeType = mt
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid config", "error", err)
		os.Exit(2)
	}

	processor := buildProcessor(cfg, logger)

	ctx := context.Background()
	var record any
	var err error
	switch kind {
	case "resume":
		record, err = processor.ProcessResume(ctx, path, mimeType)
	case "job":
		record, err = processor.ProcessJobFile(ctx, path, mimeType)
	}
	if err != nil {
		logger.Error("parse failed", "kind", kind, "path", path, "error", err,
			"user_message", common.UserMessage(err))
		os.Exit(1)
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		logger.Error("encode record", "error", err)
		os.Exit(1)
	}
}

func buildProcessor(cfg *common.Config, logger *slog.Logger) *pipeline.Processor {
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

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	return pipeline.NewProcessor(logger,
		pipeline.NewExtractStage(cfg.Extract.MaxFileBytes, dispatcher, logger),
		pipeline.NewParseStage(client, logger),
	)
}
