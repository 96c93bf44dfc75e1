package api

// ReadRequest is the read_pdf tool input.
type ReadRequest struct {
	FilePath string `json:"file_path" jsonschema:"absolute path to the PDF file"`
	Password string `json:"password,omitempty" jsonschema:"password for encrypted PDFs"`
	Pages    []int  `json:"pages,omitempty" jsonschema:"specific 1-indexed page numbers, all pages when omitted"`
}

// ReadResult is the read_pdf tool output, serialized as structured content.
// Inline mode fills Content, staged mode fills ContentFiles plus the session fields.
type ReadResult struct {
	Success          bool              `json:"success"`
	Error            string            `json:"error,omitempty"`
	PasswordRequired bool              `json:"password_required,omitempty"`
	IsEncrypted      bool              `json:"is_encrypted"`
	TotalPages       int               `json:"total_pages"`
	ExtractedPages   []int             `json:"extracted_pages"`
	Metadata         map[string]string `json:"metadata,omitempty"`

	Content map[int]string `json:"content,omitempty"`

	ContentFiles  map[int]string `json:"content_files,omitempty"`
	SessionID     string         `json:"session_id,omitempty"`
	MetadataFile  string         `json:"metadata_file,omitempty"`
	TempDirectory string         `json:"temp_directory,omitempty"`
}
