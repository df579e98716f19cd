package extract

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
)

// TextLayerDecoder decodes the embedded text stream of a PDF. Stubbed in
// tests to count invocations.
type TextLayerDecoder interface {
	DecodeText(data []byte) (string, error)
}

type pdfDecoder struct{}

func (pdfDecoder) DecodeText(data []byte) (string, error) {
	r, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}
	rs, err := r.GetPlainText()
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, rs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// PDFExtractor attempts direct text-layer extraction and falls through to OCR
// when the yield is below the sufficiency threshold (scanned or image-only
// documents). OCR is expensive, so it only runs when the cheap path fails.
type PDFExtractor struct {
	Decoder TextLayerDecoder
	OCR     TextExtractor
	Timeout time.Duration
	Logger  *slog.Logger
}

func NewPDFExtractor(ocr TextExtractor, timeout time.Duration, logger *slog.Logger) *PDFExtractor {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{Decoder: pdfDecoder{}, OCR: ocr, Timeout: timeout, Logger: logger}
}

func (e *PDFExtractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, common.NewAppError(common.ErrPDFExtraction, "read "+path, err)
	}

	text, err := WithTimeout(ctx, e.Timeout, "pdf text layer", func(context.Context) (string, error) {
		return e.Decoder.DecodeText(data)
	})
	if err != nil {
		e.Logger.Error("extract.pdf.decode_failed", "path", path, "error", err)
		return Result{}, common.NewAppError(common.ErrPDFExtraction, "decode text layer of "+path, err)
	}

	// The sufficiency bar applies to the text as it leaves the extractor, so
	// it is measured after whitespace collapsing.
	normalized := NormalizeWhitespace(text)
	if len(normalized) > constants.MinSufficientChars {
		return Result{
			Text:     normalized,
			Method:   MethodDirectPDF,
			Pages:    1 + strings.Count(text, "\f"),
			Duration: time.Since(start),
		}, nil
	}

	// Thin or missing text layer: the document is a flattened scan.
	e.Logger.Info("extract.pdf.fallback_ocr", "path", path, "text_len", len(normalized))
	if e.OCR == nil {
		return Result{}, common.NewAppError(common.ErrPDFExtraction,
			"no text layer in "+path+" and no ocr fallback configured", nil)
	}
	res, err := e.OCR.Extract(ctx, path)
	if err != nil {
		return Result{}, err
	}
	res.Duration = time.Since(start)
	return res, nil
}
