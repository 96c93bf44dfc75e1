package parser

import "testing"

func TestGetDocType(t *testing.T) {
	tests := []struct {
		path     string
		expected docType
	}{
		{"/docs/report.pdf", typePDF},
		{"/docs/REPORT.PDF", typePDF},
		{"/docs/notes.docx", typeDOCX},
		{"/docs/readme.txt", typeDOCX},
		{"/docs/legacy.rtf", typeDOCX},
		{"/docs/image.png", typeERR},
		{"/docs/noextension", typeERR},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := getDocType(tt.path); got != tt.expected {
				t.Errorf("getDocType(%q) = %v; want %v", tt.path, got, tt.expected)
			}
		})
	}
}

func TestNormalizeMetaKey(t *testing.T) {
	tests := []struct {
		in       string
		expected string
	}{
		{"/Title", "Title"},
		{"Title", "Title"},
		{"/CreationDate", "CreationDate"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := normalizeMetaKey(tt.in); got != tt.expected {
			t.Errorf("normalizeMetaKey(%q) = %q; want %q", tt.in, got, tt.expected)
		}
	}
}

func TestOpen_UnsupportedType(t *testing.T) {
	if _, err := Open("/docs/image.png"); err == nil {
		t.Error("expected an error for an unsupported document type")
	}
}
