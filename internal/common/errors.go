package common

import (
	"errors"
	"fmt"
)

// Error kinds for the extraction pipeline. Lower-level failures are wrapped
// into one of these via AppError so callers can branch with errors.Is without
// seeing internal tool details.
var (
	// Input errors: fail fast, before any parsing cost is incurred.
	ErrFileNotFound        = errors.New("file not found")
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// Extraction errors: recoverable at the caller level, never retried here.
	ErrPDFExtraction       = errors.New("pdf extraction failed")
	ErrDocxInsufficient    = errors.New("docx extraction insufficient")
	ErrOCRWorkerInit       = errors.New("ocr worker init timeout")
	ErrInsufficientOCRText = errors.New("insufficient ocr text")
	ErrOperationTimedOut   = errors.New("operation timed out")

	// Backend errors: "our parser is unavailable", distinct from "your file
	// is unreadable".
	ErrNoModelOutput         = errors.New("no model output")
	ErrInvalidModelResponse  = errors.New("invalid model response")
	ErrMissingRequiredFields = errors.New("missing required fields")
)

// AppError wraps a failure with its taxonomy kind and call-site context
// (phase, file identity). The original cause is preserved for logging.
type AppError struct {
	Kind    error
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Cause}
}

func NewAppError(kind error, message string, cause error) *AppError {
	return &AppError{Kind: kind, Message: message, Cause: cause}
}

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// UserMessage maps an internal error to the generic text shown to end users.
// Only size and type problems are distinguished; everything else collapses to
// a single message so tool internals never leak.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrFileTooLarge):
		return "this file is too large to process"
	case errors.Is(err, ErrUnsupportedFileType):
		return "this file type is not supported"
	default:
		return "could not process this file"
	}
}
