package store

import (
	"context"
	"sync"

	"github.com/akolanti/pdfreader/internal/domain/docModel"
	"github.com/akolanti/pdfreader/pkg/logger_i"
)

var inMemLogger = logger_i.NewLogger("InMem SessionStore")

type InMemorySessionStore struct {
	sessionMutex *sync.RWMutex
	sessionMap   map[string]docModel.SessionRecord
}

func InitInMemorySessionStore() *InMemorySessionStore {
	return &InMemorySessionStore{
		sessionMutex: new(sync.RWMutex),
		sessionMap:   make(map[string]docModel.SessionRecord),
	}
}

func (store *InMemorySessionStore) SaveSession(ctx context.Context, record docModel.SessionRecord) error {

	store.sessionMutex.Lock()
	defer store.sessionMutex.Unlock()
	store.sessionMap[record.ID] = record
	inMemLogger.Debug(record.ID, " : Saved session to store")
	return nil
}

func (store *InMemorySessionStore) GetSession(ctx context.Context, sessionID string) (docModel.SessionRecord, bool) {
	store.sessionMutex.RLock()
	defer store.sessionMutex.RUnlock()
	result, found := store.sessionMap[sessionID]
	return result, found
}

func (store *InMemorySessionStore) DeleteSession(ctx context.Context, sessionID string) {
	store.sessionMutex.Lock()
	defer store.sessionMutex.Unlock()
	delete(store.sessionMap, sessionID)
}
