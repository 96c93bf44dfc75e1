package parser

import (
	"fmt"

	"github.com/lu4p/cat"
)

// textDocument reads a .docx, .txt or .rtf file as a single-page document.
// These formats have no page boundaries the extraction library can track,
// so all content lands on page 1.
type textDocument struct {
	text string
}

func openText(path string) (Document, error) {
	text, err := cat.File(path)
	if err != nil {
		logger.Error("Error extracting content from doc")
		return nil, fmt.Errorf("failed to extract document: %w", err)
	}
	return &textDocument{text: text}, nil
}

func (d *textDocument) IsEncrypted() bool {
	return false
}

func (d *textDocument) Decrypt(password string) error {
	return nil
}

func (d *textDocument) PageCount() int {
	return 1
}

func (d *textDocument) Metadata() map[string]string {
	return map[string]string{}
}

func (d *textDocument) PageText(n int) (string, error) {
	if n != 1 {
		return "", fmt.Errorf("page %d out of range", n)
	}
	return d.text, nil
}

func (d *textDocument) Close() error {
	return nil
}
