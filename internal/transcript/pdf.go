package transcript

import (
	"fmt"
	"io"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/yigit/electa/internal/pkg/apperrors"
)

// TextExtractor produces the concatenated text of every page of an
// uploaded document. A page without extractable text contributes an
// empty string, not an error.
type TextExtractor interface {
	ExtractText(r io.ReaderAt, size int64) (string, error)
}

// PDFExtractor extracts plain text from PDF grade cards.
type PDFExtractor struct{}

// NewPDFExtractor creates the default PDF text extractor.
func NewPDFExtractor() *PDFExtractor {
	return &PDFExtractor{}
}

// ExtractText implements TextExtractor for PDF documents.
func (e *PDFExtractor) ExtractText(r io.ReaderAt, size int64) (string, error) {
	reader, err := pdf.NewReader(r, size)
	if err != nil {
		return "", apperrors.NewCustomError(apperrors.ErrTextExtraction,
			fmt.Sprintf("unreadable document: %v", err))
	}

	var sb strings.Builder
	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			// A page that yields no text is treated as empty
			continue
		}
		sb.WriteString(text)
	}

	return sb.String(), nil
}
