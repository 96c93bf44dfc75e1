package extract

import (
	"github.com/akolanti/pdfreader/internal/domain/docModel"
	"github.com/akolanti/pdfreader/internal/parser"
)

// unlock drives the password handshake for one request. At most one decrypt
// attempt is made; both PasswordRequired and PasswordRejected are terminal,
// the caller retries with a new invocation.
func unlock(doc parser.Document, password string) docModel.CredentialState {
	if !doc.IsEncrypted() {
		return docModel.NoPasswordNeeded
	}
	if password == "" {
		return docModel.PasswordRequired
	}
	if err := doc.Decrypt(password); err != nil {
		return docModel.PasswordRejected
	}
	return docModel.PasswordAccepted
}
