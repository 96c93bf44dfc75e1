package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/akolanti/pdfreader/internal/data/redisStore"
	"github.com/akolanti/pdfreader/internal/data/store"
	"github.com/akolanti/pdfreader/internal/domain/docModel"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func TestRedisSessionStore_Lifecycle(t *testing.T) {
	// 1. Start miniredis
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	internalStore := redisStore.NewTestStore(client)
	sessionStore := store.TestSessionStore(internalStore)

	ctx := context.Background()
	sessionID := "a1b2c3d4"

	testRecord := docModel.SessionRecord{
		ID:           sessionID,
		Document:     "report.pdf",
		CreatedTime:  time.Now().UTC().Truncate(time.Second),
		Pages:        []int{1, 3},
		MetadataFile: "/tmp/pdf_reader_extracts/report_a1b2c3d4_metadata.json",
	}

	t.Run("Save and Get Roundtrip", func(t *testing.T) {
		// Test Save
		err := sessionStore.SaveSession(ctx, testRecord)
		if err != nil {
			t.Fatalf("SaveSession failed: %v", err)
		}

		// Test Get
		retrieved, found := sessionStore.GetSession(ctx, sessionID)
		if !found {
			t.Fatal("Session was saved but not found in Redis")
		}

		if retrieved.Document != testRecord.Document {
			t.Errorf("Data mismatch! Got %s, want %s",
				retrieved.Document, testRecord.Document)
		}
		if len(retrieved.Pages) != len(testRecord.Pages) {
			t.Errorf("Pages mismatch! Got %v, want %v", retrieved.Pages, testRecord.Pages)
		}
	})

	t.Run("Get Non-Existent Session", func(t *testing.T) {
		_, found := sessionStore.GetSession(ctx, "ghost-id")
		if found {
			t.Error("Expected found=false for non-existent key")
		}
	})

	t.Run("Delete Session", func(t *testing.T) {
		sessionStore.DeleteSession(ctx, sessionID)

		// Verify it's gone from miniredis
		if mr.Exists(sessionID) {
			t.Error("Session still exists in Redis after DeleteSession call")
		}
	})
}

func TestRedisSessionStore_Race(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	sessionStore := store.TestSessionStore(redisStore.NewTestStore(client))

	ctx := context.Background()
	record := docModel.SessionRecord{ID: "race-session"}

	const workers = 50
	for i := 0; i < workers; i++ {
		go func() {
			_ = sessionStore.SaveSession(ctx, record)
			_, _ = sessionStore.GetSession(ctx, "race-session")
		}()
	}
}

func TestInMemorySessionStore_Lifecycle(t *testing.T) {
	sessionStore := store.InitInMemorySessionStore()
	ctx := context.Background()

	record := docModel.SessionRecord{
		ID:       "ffee0011",
		Document: "notes.pdf",
		Pages:    []int{1},
	}

	if err := sessionStore.SaveSession(ctx, record); err != nil {
		t.Fatalf("SaveSession failed: %v", err)
	}

	retrieved, found := sessionStore.GetSession(ctx, record.ID)
	if !found {
		t.Fatal("Session was saved but not found")
	}
	if retrieved.Document != record.Document {
		t.Errorf("Data mismatch! Got %s, want %s", retrieved.Document, record.Document)
	}

	sessionStore.DeleteSession(ctx, record.ID)
	if _, found := sessionStore.GetSession(ctx, record.ID); found {
		t.Error("Session still exists after DeleteSession call")
	}
}
