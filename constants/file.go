package constants

import "strings"

// FileFormat is the canonical document format handled by the extraction layer.
type FileFormat string

const (
	PDF  FileFormat = "PDF"
	DOCX FileFormat = "DOCX"
)

// MIME types accepted by the format dispatcher. The declared type is trusted;
// no content sniffing happens before dispatch.
const (
	MIMEPDF        = "application/pdf"
	MIMEWordLegacy = "application/msword"
	MIMEWordOOXML  = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
)

// MaxUploadBytes caps input file size. Enforced before any decoder runs.
const MaxUploadBytes = 10 << 20 // 10 MiB

// MinSufficientChars is the sufficiency threshold: an extraction attempt that
// yields fewer trimmed characters than this produced no usable signal.
const MinSufficientChars = 50

var extToMIME = map[string]string{
	"pdf":  MIMEPDF,
	"doc":  MIMEWordLegacy,
	"docx": MIMEWordOOXML,
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MIMEForExt maps a file extension to its declared MIME type, for callers
// (CLIs) that only have a path.
func MIMEForExt(ext string) (string, bool) {
	mt, ok := extToMIME[NormalizeExt(ext)]
	return mt, ok
}

// MapMIMEToFormat resolves a declared MIME type to a supported format.
func MapMIMEToFormat(mimeType string) (FileFormat, bool) {
	switch mimeType {
	case MIMEPDF:
		return PDF, true
	case MIMEWordLegacy, MIMEWordOOXML:
		return DOCX, true
	default:
		return "", false
	}
}
