// Package cache provides a small JSON cache abstraction with a Redis-backed
// implementation and an in-memory fallback for deployments without Redis.
// This is part of the platform layer and contains no business logic.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is the cache contract used by the application. Values are stored as
// JSON so any serializable type can be cached.
type Store interface {
	// GetJSON reads key into dest. The boolean reports whether the key was found.
	GetJSON(ctx context.Context, key string, dest interface{}) (bool, error)
	// SetJSON writes val under key with the given TTL. A zero TTL means no expiry.
	SetJSON(ctx context.Context, key string, val interface{}, ttl time.Duration) error
}

// Redis is a Store backed by a Redis server.
type Redis struct {
	rdb *redis.Client
}

// NewRedis creates a Redis-backed store and verifies connectivity.
func NewRedis(ctx context.Context, addr, password string, db int) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Redis{rdb: rdb}, nil
}

// GetJSON implements Store.
func (r *Redis) GetJSON(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON implements Store.
func (r *Redis) SetJSON(ctx context.Context, key string, val interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}
	return r.rdb.Set(ctx, key, raw, ttl).Err()
}

// Close releases the underlying Redis connection.
func (r *Redis) Close() error {
	return r.rdb.Close()
}

type memoryEntry struct {
	raw       []byte
	expiresAt time.Time
}

// Memory is an in-process Store used when Redis is not configured.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]memoryEntry)}
}

// GetJSON implements Store.
func (m *Memory) GetJSON(_ context.Context, key string, dest interface{}) (bool, error) {
	m.mu.RLock()
	entry, ok := m.entries[key]
	m.mu.RUnlock()

	if !ok {
		return false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		m.mu.Lock()
		delete(m.entries, key)
		m.mu.Unlock()
		return false, nil
	}

	if err := json.Unmarshal(entry.raw, dest); err != nil {
		return false, err
	}
	return true, nil
}

// SetJSON implements Store.
func (m *Memory) SetJSON(_ context.Context, key string, val interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(val)
	if err != nil {
		return err
	}

	entry := memoryEntry{raw: raw}
	if ttl != 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}

	m.mu.Lock()
	m.entries[key] = entry
	m.mu.Unlock()
	return nil
}

var _ Store = (*Redis)(nil)
var _ Store = (*Memory)(nil)
