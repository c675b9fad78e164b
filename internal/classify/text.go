package classify

import (
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"
)

// FirstPageText extracts the plain text of the first page of a PDF, for use
// as title evidence. Pages that yield no text (pure image scans) return an
// empty string, not an error.
func FirstPageText(filePath string) (string, error) {
	f, pdfReader, err := pdf.Open(filePath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	if pdfReader.NumPage() < 1 {
		return "", nil
	}

	page := pdfReader.Page(1)
	if page.V.IsNull() {
		return "", nil
	}

	content, err := page.GetPlainText(nil)
	if err != nil {
		return "", nil
	}

	return strings.TrimSpace(content), nil
}
