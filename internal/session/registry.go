package session

import (
	"context"       // Context for Redis operations
	"encoding/json" // JSON encoding/decoding
	"time"          // TTL durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Session is the identity recorded against an active token.
type Session struct {
	UserID   uint   `json:"user_id"`  // Owning user ID
	Username string `json:"username"` // Owning username
}

// Registry maps opaque session tokens to their owning user with a fixed
// time-to-live. It is the single authority on token validity: logout removes
// the entry, expiry is handled by the store. Multiple concurrent logins for
// one user simply coexist as distinct tokens.
type Registry interface {
	// Put registers a token for the given identity with the supplied TTL.
	Put(ctx context.Context, token string, sess Session, ttl time.Duration) error

	// Get resolves a token. Returns (nil, nil) when the token is unknown
	// or has expired.
	Get(ctx context.Context, token string) (*Session, error)

	// Delete revokes a token. Deleting an absent token is not an error.
	Delete(ctx context.Context, token string) error
}

const keyPrefix = "session:" // Redis key namespace for sessions

// RedisRegistry is the Redis-backed Registry implementation.
type RedisRegistry struct {
	rdb *redis.Client
}

// NewRedisRegistry creates a Registry backed by the given Redis client
func NewRedisRegistry(rdb *redis.Client) *RedisRegistry {
	return &RedisRegistry{rdb: rdb}
}

// Put registers the token; last writer wins, which is acceptable because
// tokens are unique per login.
func (r *RedisRegistry) Put(ctx context.Context, token string, sess Session, ttl time.Duration) error {
	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, keyPrefix+token, b, ttl).Err()
}

// Get resolves the token to its session, or (nil, nil) on a miss
func (r *RedisRegistry) Get(ctx context.Context, token string) (*Session, error) {
	val, err := r.rdb.Get(ctx, keyPrefix+token).Result()
	if err == redis.Nil {
		return nil, nil // Unknown or expired token
	} else if err != nil {
		return nil, err
	}
	var sess Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Delete revokes the token; idempotent
func (r *RedisRegistry) Delete(ctx context.Context, token string) error {
	return r.rdb.Del(ctx, keyPrefix+token).Err()
}
