package parser

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/akolanti/pdfreader/internal/config"
	"github.com/dslipak/pdf"
)

type pdfDocument struct {
	path      string
	file      *os.File
	size      int64
	reader    *pdf.Reader
	encrypted bool
}

func openPDF(path string) (Document, error) {
	logger.Debug("openPDF", "attempting open", path)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pdf: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat pdf: %w", err)
	}

	doc := &pdfDocument{path: path, file: f, size: info.Size()}

	reader, err := newReader(f, info.Size(), nil)
	if err != nil {
		if errors.Is(err, pdf.ErrInvalidPassword) {
			// Content stream stays closed until Decrypt succeeds.
			doc.encrypted = true
			return doc, nil
		}
		f.Close()
		return nil, fmt.Errorf("failed to parse pdf: %w", err)
	}
	doc.reader = reader
	return doc, nil
}

// newReader wraps the library constructors; the library panics on some
// malformed cross-reference tables, so the panic is converted to an error.
func newReader(f *os.File, size int64, pw func() string) (reader *pdf.Reader, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("malformed pdf: %v", p)
		}
	}()
	if pw == nil {
		return pdf.NewReader(f, size)
	}
	return pdf.NewReaderEncrypted(f, size, pw)
}

func (d *pdfDocument) IsEncrypted() bool {
	return d.encrypted
}

// Decrypt offers the supplied password exactly once. The library calls the
// password func repeatedly until it returns "", which it treats as giving up.
func (d *pdfDocument) Decrypt(password string) error {
	attempted := false
	reader, err := newReader(d.file, d.size, func() string {
		if attempted {
			return ""
		}
		attempted = true
		return password
	})
	if err != nil {
		return fmt.Errorf("failed to decrypt pdf: %w", err)
	}
	d.reader = reader
	return nil
}

func (d *pdfDocument) PageCount() int {
	if d.reader == nil {
		return 0
	}
	return d.reader.NumPage()
}

func (d *pdfDocument) Metadata() map[string]string {
	meta := make(map[string]string)
	if d.reader == nil {
		return meta
	}
	info := d.reader.Trailer().Key("Info")
	if info.Kind() != pdf.Dict {
		return meta
	}
	for _, key := range info.Keys() {
		meta[normalizeMetaKey(key)] = valueText(info.Key(key))
	}
	return meta
}

func valueText(v pdf.Value) string {
	switch v.Kind() {
	case pdf.String:
		return v.Text()
	case pdf.Name:
		return v.Name()
	default:
		return v.String()
	}
}

func (d *pdfDocument) PageText(n int) (string, error) {
	if d.reader == nil {
		return "", errors.New("document content is locked")
	}
	page := d.reader.Page(n)
	if page.V.IsNull() {
		logger.Debug("PageText", "page value is null", n)
		return "", nil
	}
	return protectExtract(page)
}

func (d *pdfDocument) Close() error {
	return d.file.Close()
}

func protectExtract(page pdf.Page) (string, error) {
	type result struct {
		content string
		err     error
	}
	resChan := make(chan result, 1)

	go func() {
		defer func() {
			if p := recover(); p != nil {
				resChan <- result{"", fmt.Errorf("page extraction panicked: %v", p)}
			}
		}()
		content, err := page.GetPlainText(nil)
		resChan <- result{content, err}
	}()
	select {
	case r := <-resChan:
		return r.content, r.err
	case <-time.After(config.PageExtractTimeout):
		logger.Error("pageExtract", "timeout")
		return "", errors.New("timeout")
	}
}
