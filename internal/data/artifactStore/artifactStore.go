package artifactStore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/akolanti/pdfreader/internal/adapter/utils"
	"github.com/akolanti/pdfreader/internal/config"
	"github.com/akolanti/pdfreader/internal/domain/docModel"
	"github.com/akolanti/pdfreader/internal/metrics"
	"github.com/akolanti/pdfreader/pkg/logger_i"
)

// Store owns one process-wide artifact directory. Every staged page and
// metadata sidecar lives directly under it, namespaced by session id, so the
// sweeper can enumerate everything with a flat glob.
type Store struct {
	dir    string
	logger *logger_i.Logger
}

func DefaultDirectory() string {
	return filepath.Join(os.TempDir(), config.ArtifactDirName)
}

func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("%w: creating artifact directory: %w", docModel.ErrStorage, err)
	}
	store := &Store{
		dir:    dir,
		logger: logger_i.NewLogger("Artifact Store"),
	}
	store.logger.Info("Using artifact directory", "dir", dir)
	return store, nil
}

func (s *Store) Directory() string {
	return s.dir
}

// Session scopes one extraction request's artifacts. The fresh id keeps
// concurrent requests against the same document from colliding on paths.
type Session struct {
	ID string

	store *Store
	base  string
}

func (s *Store) BeginSession(documentBaseName string) *Session {
	session := &Session{
		ID:    utils.NewSessionID(),
		store: s,
		base:  documentBaseName,
	}
	s.logger.Debug("Began session", "sessionId", session.ID, "document", documentBaseName)
	return session
}

// WritePage persists one page's text as a whole file and returns its path.
// Artifacts are immutable once written, only the sweeper removes them.
func (sess *Session) WritePage(page int, text string) (string, error) {
	path := sess.artifactPath(fmt.Sprintf("page_%d.txt", page))
	if err := os.WriteFile(path, []byte(text), 0640); err != nil {
		return "", fmt.Errorf("%w: page %d: %w", docModel.ErrStorage, page, err)
	}
	metrics.IncrementArtifactsWritten()
	return path, nil
}

// WriteMetadata persists the session's JSON sidecar and returns its path.
func (sess *Session) WriteMetadata(record docModel.SessionMetadata) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("%w: encoding metadata: %w", docModel.ErrStorage, err)
	}
	path := sess.artifactPath("metadata.json")
	if err := os.WriteFile(path, data, 0640); err != nil {
		return "", fmt.Errorf("%w: metadata: %w", docModel.ErrStorage, err)
	}
	metrics.IncrementArtifactsWritten()
	return path, nil
}

func (sess *Session) artifactPath(suffix string) string {
	return filepath.Join(sess.store.dir, fmt.Sprintf("%s_%s_%s", sess.base, sess.ID, suffix))
}
