package extract

import (
	"context"
	"time"
)

// Extraction methods reported in Result.Method.
const (
	MethodDirectPDF = "direct-pdf"
	MethodOCR       = "ocr"
	MethodDocx      = "docx"
)

// Request identifies one document to extract. Immutable, created per call.
type Request struct {
	FilePath string
	MIMEType string
}

// Result is the outcome of the text extraction layer. Text is non-empty and
// its trimmed length meets the sufficiency threshold by the time it leaves an
// extractor; below that the extractor fails instead.
type Result struct {
	Text     string
	Method   string
	Pages    int
	Duration time.Duration
}

// TextExtractor turns a file into raw text.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (Result, error)
}
