package extract

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/akolanti/pdfreader/internal/data/artifactStore"
	"github.com/akolanti/pdfreader/internal/domain/docModel"
	"github.com/akolanti/pdfreader/internal/metrics"
	"github.com/akolanti/pdfreader/internal/parser"
	"github.com/akolanti/pdfreader/pkg/logger_i"
)

// Service composes the credential gate, page selector, parsing collaborator
// and artifact store into the extract operation. The response mode is fixed
// at construction time.
type Service struct {
	store    *artifactStore.Store
	sessions docModel.SessionStore
	open     parser.OpenFunc
	mode     docModel.ResponseMode
	logger   *logger_i.Logger
}

func NewService(store *artifactStore.Store, sessions docModel.SessionStore, open parser.OpenFunc, mode docModel.ResponseMode) *Service {
	return &Service{
		store:    store,
		sessions: sessions,
		open:     open,
		mode:     mode,
		logger:   logger_i.NewLogger("Extraction Orchestrator"),
	}
}

type Request struct {
	FilePath string
	Password string
	Pages    []int
}

// Extract runs one request to completion. It never lets an internal fault
// escape: every failure comes back as a classified Extraction with Err set.
func (s *Service) Extract(ctx context.Context, req Request) docModel.Extraction {
	start := time.Now()
	ex := s.extract(ctx, req)
	metrics.CaptureExtractionMetrics(statusLabel(ex.Err), time.Since(start))
	if !ex.Success {
		s.logger.Warn("Extraction failed", "file", req.FilePath, "error", ex.Err)
	}
	return ex
}

// The named return doubles as the working result, so a recovered panic keeps
// whatever document facts were already established.
func (s *Service) extract(ctx context.Context, req Request) (ex docModel.Extraction) {
	defer func() {
		if p := recover(); p != nil {
			ex = s.abort(ex, fmt.Errorf("%w: %v", docModel.ErrExtraction, p))
		}
	}()

	if _, err := os.Stat(req.FilePath); err != nil {
		return docModel.Extraction{Err: fmt.Errorf("%w: %s", docModel.ErrNotFound, req.FilePath)}
	}

	doc, err := s.open(req.FilePath)
	if err != nil {
		return docModel.Extraction{Err: fmt.Errorf("%w: %w", docModel.ErrExtraction, err)}
	}
	defer doc.Close()

	ex = docModel.Extraction{IsEncrypted: doc.IsEncrypted()}

	switch unlock(doc, req.Password) {
	case docModel.PasswordRequired:
		ex.Err = docModel.ErrPasswordRequired
		return ex
	case docModel.PasswordRejected:
		ex.Err = docModel.ErrPasswordRejected
		return ex
	}

	ex.TotalPages = doc.PageCount()
	ex.Metadata = doc.Metadata()

	pages := resolvePages(req.Pages, ex.TotalPages)
	ex.ExtractedPages = make([]int, 0, len(pages))

	if s.mode == docModel.ModeInline {
		return s.extractInline(doc, pages, ex)
	}
	return s.extractStaged(ctx, doc, req.FilePath, pages, ex)
}

func (s *Service) extractInline(doc parser.Document, pages []int, ex docModel.Extraction) docModel.Extraction {
	ex.Content = make(map[int]string, len(pages))
	for _, p := range pages {
		text, err := doc.PageText(p)
		if err != nil {
			return s.abort(ex, fmt.Errorf("%w: page %d: %w", docModel.ErrExtraction, p, err))
		}
		ex.Content[p] = text
		ex.ExtractedPages = append(ex.ExtractedPages, p)
		metrics.IncrementPagesExtracted()
	}
	ex.Success = true
	return ex
}

func (s *Service) extractStaged(ctx context.Context, doc parser.Document, filePath string, pages []int, ex docModel.Extraction) docModel.Extraction {
	session := s.store.BeginSession(documentBaseName(filePath))
	ex.SessionID = session.ID
	ex.Directory = s.store.Directory()
	ex.ContentFiles = make(map[int]string, len(pages))

	for _, p := range pages {
		text, err := doc.PageText(p)
		if err != nil {
			return s.abort(ex, fmt.Errorf("%w: page %d: %w", docModel.ErrExtraction, p, err))
		}
		path, err := session.WritePage(p, text)
		if err != nil {
			// earlier sibling artifacts stay orphaned until the sweeper reclaims them
			return s.abort(ex, err)
		}
		ex.ContentFiles[p] = path
		ex.ExtractedPages = append(ex.ExtractedPages, p)
		metrics.IncrementPagesExtracted()
	}

	metaPath, err := session.WriteMetadata(docModel.SessionMetadata{
		Filename:       filepath.Base(filePath),
		TotalPages:     ex.TotalPages,
		IsEncrypted:    ex.IsEncrypted,
		Metadata:       ex.Metadata,
		SessionID:      session.ID,
		ExtractedPages: ex.ExtractedPages,
	})
	if err != nil {
		return s.abort(ex, err)
	}
	ex.MetadataFile = metaPath

	if s.sessions != nil {
		record := docModel.SessionRecord{
			ID:           session.ID,
			Document:     filepath.Base(filePath),
			CreatedTime:  time.Now(),
			Pages:        ex.ExtractedPages,
			MetadataFile: metaPath,
		}
		if err := s.sessions.SaveSession(ctx, record); err != nil {
			s.logger.Error("Failed to register session", "sessionId", session.ID, "error", err)
		}
	}

	ex.Success = true
	return ex
}

// abort drops any partial content from the result; already-written artifacts
// are not rolled back.
func (s *Service) abort(ex docModel.Extraction, err error) docModel.Extraction {
	return docModel.Extraction{
		Err:         err,
		IsEncrypted: ex.IsEncrypted,
		TotalPages:  ex.TotalPages,
	}
}

func documentBaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func statusLabel(err error) string {
	switch {
	case err == nil:
		return "success"
	case errors.Is(err, docModel.ErrNotFound):
		return "not_found"
	case errors.Is(err, docModel.ErrPasswordRequired):
		return "password_required"
	case errors.Is(err, docModel.ErrPasswordRejected):
		return "password_rejected"
	case errors.Is(err, docModel.ErrStorage):
		return "storage_error"
	default:
		return "extraction_error"
	}
}
