package otp

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var (
	ErrNotRequested = errors.New("no code was requested for this email")
	ErrExpired      = errors.New("code has expired")
)

// Store holds one-time codes keyed by email with an expiry. The process-local
// implementation is the dev fallback; Redis is used when configured so codes
// survive restarts and are shared across instances.
type Store interface {
	Set(ctx context.Context, email, code string, ttl time.Duration) error
	// Get returns the pending code, ErrExpired when it has lapsed or
	// ErrNotRequested when none exists.
	Get(ctx context.Context, email string) (string, error)
	Delete(ctx context.Context, email string) error
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
}

func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Last request wins, any prior pending code is overwritten
	s.entries[email] = memoryEntry{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Get(ctx context.Context, email string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[email]
	if !ok {
		return "", ErrNotRequested
	}

	if time.Now().After(entry.expiresAt) {
		delete(s.entries, email)
		return "", ErrExpired
	}

	return entry.code, nil
}

func (s *memoryStore) Delete(ctx context.Context, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, email)
	return nil
}

type redisStore struct {
	rdb *redis.Client
}

func NewRedisStore(rdb *redis.Client) Store {
	return &redisStore{rdb: rdb}
}

func redisKey(email string) string {
	return fmt.Sprintf("otp:reset:%s", email)
}

func (s *redisStore) Set(ctx context.Context, email, code string, ttl time.Duration) error {
	return s.rdb.Set(ctx, redisKey(email), code, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, email string) (string, error) {
	code, err := s.rdb.Get(ctx, redisKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// Redis drops expired keys, indistinguishable from never-requested
			return "", ErrNotRequested
		}
		return "", fmt.Errorf("failed to read otp from redis: %w", err)
	}
	return code, nil
}

func (s *redisStore) Delete(ctx context.Context, email string) error {
	return s.rdb.Del(ctx, redisKey(email)).Err()
}
