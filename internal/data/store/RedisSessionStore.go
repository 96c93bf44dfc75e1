package store

import (
	"context"
	"encoding/json"

	"github.com/akolanti/pdfreader/internal/config"
	"github.com/akolanti/pdfreader/internal/data/redisStore"
	"github.com/akolanti/pdfreader/internal/domain/docModel"
	"github.com/akolanti/pdfreader/pkg/logger_i"
)

// RedisSessionStore keeps session records with a TTL equal to the retention
// window, so registry entries age out together with their artifacts.
type RedisSessionStore struct {
	store  *redisStore.Store
	logger *logger_i.Logger
}

// GetRedisSessionStore returns nil when redis is offline; main falls back to
// the in-memory store.
func GetRedisSessionStore(ctx context.Context) *RedisSessionStore {
	internal := redisStore.GetRedisStore(ctx, config.RedisSessionStore)
	if internal == nil {
		return nil
	}
	return &RedisSessionStore{
		store:  internal,
		logger: logger_i.NewLogger("SessionStore"),
	}
}

func (s *RedisSessionStore) SaveSession(ctx context.Context, record docModel.SessionRecord) error {
	log := s.logger.With("sessionId", record.ID)
	log.Debug("saving session")
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	err = s.store.Set(ctx, record.ID, data, config.RedisSessionTTL)
	if err == nil {
		log.Debug("Saved session to Redis")
	}
	return err
}

func (s *RedisSessionStore) GetSession(ctx context.Context, sessionID string) (docModel.SessionRecord, bool) {
	var record docModel.SessionRecord
	log := s.logger.With("sessionId", sessionID)
	log.Debug("getting session")
	val, err := s.store.Get(ctx, sessionID)
	if s.store.IsNil(err) {
		return record, false
	} else if err != nil {
		return record, false
	}

	err = json.Unmarshal([]byte(val), &record)
	if err != nil {
		return record, false
	}

	log.Debug("Session found in Redis")
	return record, true
}

func (s *RedisSessionStore) DeleteSession(ctx context.Context, sessionID string) {
	err := s.store.Del(ctx, sessionID)
	if err != nil {
		s.logger.Error("Error deleting session from Redis", "sessionId", sessionID)
		return
	}
	s.logger.Debug("Session deleted from Redis", "sessionId", sessionID)
}

func TestSessionStore(store *redisStore.Store) *RedisSessionStore {
	return &RedisSessionStore{
		store:  store,
		logger: logger_i.NewLogger("test redis"),
	}
}
