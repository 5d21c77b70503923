package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/tibino/marta/config"
	"github.com/tibino/marta/log"
)

// Store manages all guest sessions
type Store struct {
	sessions map[string]*Session
	mu       sync.RWMutex
	ttl      time.Duration
	redis    *redis.Client
	logger   zerolog.Logger
	now      func() time.Time
}

// DialRedis connects to Redis for session mirroring. Returns nil when Redis
// is unreachable; the store works from memory alone in that case.
func DialRedis(cfg *config.Config) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisURL,
		Password: cfg.RedisPassword,
		DB:       0,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		logger := log.WithComponent("session")
		logger.Warn().Err(err).Msg("redis unavailable, continuing without it")
		return nil
	}
	return client
}

// NewStore creates a session store. The Redis client may be nil.
func NewStore(ttl time.Duration, rdb *redis.Client) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		redis:    rdb,
		logger:   log.WithComponent("session"),
		now:      time.Now,
	}
}

// GetOrCreate looks a session up by id, creating a fresh one on a miss or an
// empty id. Expired sessions are swept first, and the returned session's
// LastSeen is refreshed.
func (s *Store) GetOrCreate(ctx context.Context, sessionID string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep(ctx)

	if sessionID != "" {
		if sess, ok := s.sessions[sessionID]; ok {
			sess.LastSeen = s.now()
			s.mirror(ctx, sess)
			return sess
		}
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		CreatedAt: now,
		LastSeen:  now,
	}
	s.sessions[sess.ID] = sess
	s.mirror(ctx, sess)

	s.logger.Debug().Str("session_id", sess.ID).Msg("session created")
	return sess
}

// Get retrieves a session by id without refreshing it.
func (s *Store) Get(sessionID string) (*Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[sessionID]
	return sess, ok
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// mirror saves session metadata to Redis on a best-effort basis.
func (s *Store) mirror(ctx context.Context, sess *Session) {
	if s.redis == nil {
		return
	}
	s.redis.HSet(ctx, "session:"+sess.ID, map[string]interface{}{
		"created_at": sess.CreatedAt.Format(time.RFC3339),
		"last_seen":  sess.LastSeen.Format(time.RFC3339),
		"language":   sess.Language,
	})
	s.redis.SAdd(ctx, "active_sessions", sess.ID)
	s.redis.Expire(ctx, "session:"+sess.ID, s.ttl)
}

// sweep evicts sessions idle past the TTL. Callers must hold the write lock.
func (s *Store) sweep(ctx context.Context) {
	now := s.now()
	for id, sess := range s.sessions {
		if now.Sub(sess.LastSeen) > s.ttl {
			delete(s.sessions, id)

			if s.redis != nil {
				s.redis.Del(ctx, "session:"+id)
				s.redis.SRem(ctx, "active_sessions", id)
			}
			s.logger.Debug().Str("session_id", id).Msg("session expired")
		}
	}
}

// CleanupExpired removes sessions idle past the TTL.
func (s *Store) CleanupExpired(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sweep(ctx)
}

// StartCleanupRoutine starts periodic cleanup of expired sessions.
func (s *Store) StartCleanupRoutine(ctx context.Context) {
	ticker := time.NewTicker(1 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.CleanupExpired(ctx)
		}
	}
}

// Shutdown drops all sessions and closes the Redis connection.
func (s *Store) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.sessions {
		delete(s.sessions, id)
	}

	if s.redis != nil {
		s.redis.Close()
	}
}
