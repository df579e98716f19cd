package extract

import (
	"fmt"

	"github.com/dan404cipher/hireaccel-v2-sub006/constants"
	"github.com/dan404cipher/hireaccel-v2-sub006/internal/common"
)

// Dispatcher maps a declared MIME type to an extractor. Pure lookup: the
// caller-supplied type is trusted, no magic-byte sniffing.
type Dispatcher struct {
	extractors map[string]TextExtractor
}

func NewDispatcher(pdf, docx TextExtractor) *Dispatcher {
	return &Dispatcher{extractors: map[string]TextExtractor{
		constants.MIMEPDF:        pdf,
		constants.MIMEWordLegacy: docx,
		constants.MIMEWordOOXML:  docx,
	}}
}

// Dispatch returns the extractor for mimeType, or an error naming the
// unsupported type.
func (d *Dispatcher) Dispatch(mimeType string) (TextExtractor, error) {
	ex, ok := d.extractors[mimeType]
	if !ok || ex == nil {
		return nil, common.NewAppError(common.ErrUnsupportedFileType,
			fmt.Sprintf("mime type %q", mimeType), nil)
	}
	return ex, nil
}
