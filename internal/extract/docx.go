package extract

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
)

// DocxExtractor extracts raw text from a word-processing document. Word files
// always carry a text layer, so there is no OCR fallback: a thin yield means
// the document itself is unusable.
type DocxExtractor struct {
	Timeout time.Duration
	Logger  *slog.Logger
}

func NewDocxExtractor(timeout time.Duration, logger *slog.Logger) *DocxExtractor {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DocxExtractor{Timeout: timeout, Logger: logger}
}

func (e *DocxExtractor) Extract(ctx context.Context, path string) (Result, error) {
	start := time.Now()

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, common.NewAppError(common.ErrDocxInsufficient, "read "+path, err)
	}

	text, err := WithTimeout(ctx, e.Timeout, "docx text", func(context.Context) (string, error) {
		return decodeDocxText(data)
	})
	if err != nil {
		e.Logger.Error("extract.docx.decode_failed", "path", path, "error", err)
		return Result{}, common.NewAppError(common.ErrDocxInsufficient, "decode "+path, err)
	}

	normalized := NormalizeWhitespace(text)
	if len(normalized) < constants.MinSufficientChars {
		return Result{}, common.NewAppError(common.ErrDocxInsufficient,
			fmt.Sprintf("%s yielded %d usable chars", path, len(normalized)), nil)
	}

	return Result{
		Text:     normalized,
		Method:   MethodDocx,
		Pages:    1,
		Duration: time.Since(start),
	}, nil
}

// word/document.xml structure, namespace-stripped before unmarshal.
type docxDocument struct {
	Body docxBody `xml:"body"`
}

type docxBody struct {
	Paragraphs []docxParagraph `xml:"p"`
	Tables     []docxTable     `xml:"tbl"`
}

type docxParagraph struct {
	Runs []docxRun `xml:"r"`
}

type docxRun struct {
	Text   []string   `xml:"t"`
	Tabs   []struct{} `xml:"tab"`
	Breaks []struct{} `xml:"br"`
}

type docxTable struct {
	Rows []docxTableRow `xml:"tr"`
}

type docxTableRow struct {
	Cells []docxTableCell `xml:"tc"`
}

type docxTableCell struct {
	Paragraphs []docxParagraph `xml:"p"`
}

func decodeDocxText(data []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", common.WrapError(err, "open docx archive")
	}

	var docXML []byte
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				return "", common.WrapError(err, "open document.xml")
			}
			docXML, err = io.ReadAll(rc)
			_ = rc.Close()
			if err != nil {
				return "", common.WrapError(err, "read document.xml")
			}
			break
		}
	}
	if len(docXML) == 0 {
		return "", errors.New("no document.xml found in docx")
	}

	var doc docxDocument
	if err := xml.Unmarshal(docXML, &doc); err != nil {
		return "", common.WrapError(err, "parse document.xml")
	}

	var b strings.Builder
	for _, para := range doc.Body.Paragraphs {
		writeParagraph(&b, para)
	}
	for _, table := range doc.Body.Tables {
		for _, row := range table.Rows {
			var cells []string
			for _, cell := range row.Cells {
				var cb strings.Builder
				for _, para := range cell.Paragraphs {
					writeParagraph(&cb, para)
				}
				cells = append(cells, strings.TrimSpace(cb.String()))
			}
			b.WriteString(strings.Join(cells, " | "))
			b.WriteString("\n")
		}
	}
	return b.String(), nil
}

func writeParagraph(b *strings.Builder, para docxParagraph) {
	for _, run := range para.Runs {
		for _, t := range run.Text {
			b.WriteString(t)
		}
		for range run.Tabs {
			b.WriteString("\t")
		}
		for range run.Breaks {
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
}
