package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"studybuddy/model"

	"github.com/redis/go-redis/v9"
)

// SessionCache keeps active sessions in Redis so the session middleware
// does not hit Mongo on every request.
type SessionCache struct {
	client *redis.Client
}

var GlobalSessionCache *SessionCache

// NewSessionCache connects to Redis and verifies the connection.
func NewSessionCache(redisURL string) (*SessionCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &SessionCache{client: client}, nil
}

// SetSession caches a session with a TTL matching its expiry.
func (sc *SessionCache) SetSession(session *model.Session) error {
	if session == nil {
		return fmt.Errorf("cannot cache nil session")
	}

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", session.SessionID)

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session has already expired")
	}

	if err := sc.client.Set(ctx, key, data, ttl).Err(); err != nil {
		return fmt.Errorf("failed to cache session: %w", err)
	}

	return nil
}

// GetSession retrieves a session from cache; a nil session means a miss.
func (sc *SessionCache) GetSession(sessionID string) (*model.Session, error) {
	if sessionID == "" {
		return nil, fmt.Errorf("sessionID cannot be empty")
	}

	ctx := context.Background()
	key := fmt.Sprintf("session:%s", sessionID)

	data, err := sc.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session from cache: %w", err)
	}

	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		sc.DeleteSession(sessionID)
		return nil, nil
	}

	return &session, nil
}

// DeleteSession removes a session from cache.
func (sc *SessionCache) DeleteSession(sessionID string) error {
	ctx := context.Background()
	return sc.client.Del(ctx, fmt.Sprintf("session:%s", sessionID)).Err()
}
