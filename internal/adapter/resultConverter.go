package adapter

import (
	"errors"

	"github.com/akolanti/pdfreader/internal/api"
	"github.com/akolanti/pdfreader/internal/domain/docModel"
)

// ToReadResult flattens the orchestrator's result into the tool contract.
func ToReadResult(ex docModel.Extraction) api.ReadResult {
	result := api.ReadResult{
		Success:        ex.Success,
		IsEncrypted:    ex.IsEncrypted,
		TotalPages:     ex.TotalPages,
		ExtractedPages: ex.ExtractedPages,
		Metadata:       ex.Metadata,
		Content:        ex.Content,
		ContentFiles:   ex.ContentFiles,
		SessionID:      ex.SessionID,
		MetadataFile:   ex.MetadataFile,
		TempDirectory:  ex.Directory,
	}

	if ex.Err != nil {
		result.Error = ex.Err.Error()
		result.PasswordRequired = errors.Is(ex.Err, docModel.ErrPasswordRequired) ||
			errors.Is(ex.Err, docModel.ErrPasswordRejected)
	}
	if result.ExtractedPages == nil {
		result.ExtractedPages = []int{}
	}
	return result
}

// Rejected builds a failure result outside the orchestrator, e.g. rate limiting.
func Rejected(message string) api.ReadResult {
	return api.ReadResult{
		Success:        false,
		Error:          message,
		ExtractedPages: []int{},
	}
}
