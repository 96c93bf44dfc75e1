package artifactStore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/akolanti/pdfreader/internal/config"
	"github.com/akolanti/pdfreader/internal/domain/docModel"
)

func TestWritePage_PathShape(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	session := store.BeginSession("report")
	if len(session.ID) != config.SessionIDLength {
		t.Fatalf("session id %q has length %d, want %d", session.ID, len(session.ID), config.SessionIDLength)
	}

	path, err := session.WritePage(3, "page three text")
	if err != nil {
		t.Fatalf("WritePage failed: %v", err)
	}

	want := filepath.Join(store.Directory(), fmt.Sprintf("report_%s_page_3.txt", session.ID))
	if path != want {
		t.Errorf("artifact path = %q; want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading artifact back: %v", err)
	}
	if string(data) != "page three text" {
		t.Errorf("artifact content = %q; want %q", data, "page three text")
	}
}

func TestWriteMetadata_Roundtrip(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	session := store.BeginSession("report")

	record := docModel.SessionMetadata{
		Filename:       "report.pdf",
		TotalPages:     5,
		IsEncrypted:    true,
		Metadata:       map[string]string{"Title": "Q2 Numbers"},
		SessionID:      session.ID,
		ExtractedPages: []int{1, 2},
	}

	path, err := session.WriteMetadata(record)
	if err != nil {
		t.Fatalf("WriteMetadata failed: %v", err)
	}

	want := filepath.Join(store.Directory(), fmt.Sprintf("report_%s_metadata.json", session.ID))
	if path != want {
		t.Errorf("metadata path = %q; want %q", path, want)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading sidecar back: %v", err)
	}
	var got docModel.SessionMetadata
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("sidecar is not valid JSON: %v", err)
	}
	if got.SessionID != session.ID || got.TotalPages != 5 || !got.IsEncrypted {
		t.Errorf("sidecar roundtrip mismatch: %+v", got)
	}
}

func TestWritePage_StorageFailure(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	session := store.BeginSession("report")

	// occupy the artifact path with a directory so the write cannot land
	blocked := filepath.Join(store.Directory(), fmt.Sprintf("report_%s_page_1.txt", session.ID))
	if err := os.Mkdir(blocked, 0750); err != nil {
		t.Fatalf("blocking artifact path: %v", err)
	}

	if _, err := session.WritePage(1, "page one text"); !errors.Is(err, docModel.ErrStorage) {
		t.Errorf("WritePage error = %v; want ErrStorage", err)
	}

	if err := os.Remove(blocked); err != nil {
		t.Fatalf("unblocking artifact path: %v", err)
	}
	if _, err := session.WriteMetadata(docModel.SessionMetadata{SessionID: session.ID}); err != nil {
		t.Errorf("store should stay usable after a failed write: %v", err)
	}
}

func TestBeginSession_DistinctIDs(t *testing.T) {
	store, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		session := store.BeginSession("doc")
		if seen[session.ID] {
			t.Fatalf("duplicate session id %q after %d sessions", session.ID, i)
		}
		seen[session.ID] = true
	}
}

func TestNew_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "artifacts")

	store, err := New(dir)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if store.Directory() != dir {
		t.Errorf("Directory() = %q; want %q", store.Directory(), dir)
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		t.Errorf("artifact directory was not created: %v", err)
	}
}
