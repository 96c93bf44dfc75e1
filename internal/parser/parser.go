package parser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/akolanti/pdfreader/pkg/logger_i"
)

var logger = logger_i.NewLogger("Parser")

// Document is the parsing collaborator contract. Every method may fail with
// an opaque error, the orchestrator classifies them.
type Document interface {
	IsEncrypted() bool
	Decrypt(password string) error
	PageCount() int
	Metadata() map[string]string
	PageText(n int) (string, error)
	Close() error
}

// OpenFunc opens a document reference. Injected into the orchestrator so tests
// can substitute a fake collaborator.
type OpenFunc func(path string) (Document, error)

type docType string

const (
	typePDF  docType = "PDF"
	typeDOCX docType = "DOCX"
	typeERR  docType = "ERROR"
)

func getDocType(docPath string) docType {
	ext := strings.ToLower(filepath.Ext(docPath))
	switch ext {
	case ".pdf":
		return typePDF
	case ".docx", ".txt", ".rtf":
		return typeDOCX
	default:
		return typeERR
	}
}

// Open dispatches on the file extension.
func Open(path string) (Document, error) {
	switch getDocType(path) {
	case typePDF:
		return openPDF(path)
	case typeDOCX:
		return openText(path)
	default:
		return nil, fmt.Errorf("unsupported document type: %s", filepath.Ext(path))
	}
}

// normalizeMetaKey strips the leading name marker some producers keep on
// metadata keys ("/Title" -> "Title").
func normalizeMetaKey(key string) string {
	return strings.TrimPrefix(key, "/")
}
