package docModel

import (
	"context"
	"errors"
	"time"
)

type CredentialState string

type ResponseMode string

const (
	NoPasswordNeeded CredentialState = "NoPasswordNeeded"
	PasswordRequired CredentialState = "PasswordRequired"
	PasswordAccepted CredentialState = "PasswordAccepted"
	PasswordRejected CredentialState = "PasswordRejected"

	ModeInline ResponseMode = "inline"
	ModeStaged ResponseMode = "staged"
)

// Error taxonomy. The adapter turns these into structured tool results,
// callers never see a bare protocol error for any of them.
var (
	ErrNotFound         = errors.New("file not found")
	ErrPasswordRequired = errors.New("PDF is protected, please provide a password")
	ErrPasswordRejected = errors.New("incorrect password or could not decrypt PDF")
	ErrExtraction       = errors.New("error extracting content")
	ErrStorage          = errors.New("error writing extracted content")
)

// Extraction is the orchestrator's result for one request.
// Exactly one of Content / ContentFiles is populated on success,
// depending on the configured response mode.
type Extraction struct {
	Success        bool
	Err            error
	IsEncrypted    bool
	TotalPages     int
	ExtractedPages []int
	Metadata       map[string]string

	Content map[int]string

	ContentFiles map[int]string
	SessionID    string
	MetadataFile string
	Directory    string
}

// SessionMetadata is the JSON sidecar written once per staged session.
type SessionMetadata struct {
	Filename       string            `json:"filename"`
	TotalPages     int               `json:"total_pages"`
	IsEncrypted    bool              `json:"is_encrypted"`
	Metadata       map[string]string `json:"metadata"`
	SessionID      string            `json:"session_id"`
	ExtractedPages []int             `json:"extracted_pages"`
}

// SessionRecord is the registry entry for a staged session. Advisory only,
// the artifact directory stays the source of truth for where page content lives.
type SessionRecord struct {
	ID           string    `json:"id"`
	Document     string    `json:"document"`
	CreatedTime  time.Time `json:"created_time"`
	Pages        []int     `json:"pages"`
	MetadataFile string    `json:"metadata_file"`
}

type SessionStore interface {
	SaveSession(ctx context.Context, record SessionRecord) error
	GetSession(ctx context.Context, sessionID string) (SessionRecord, bool)
	DeleteSession(ctx context.Context, sessionID string)
}
