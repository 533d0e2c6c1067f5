package auth

import (
	"context"
	"crypto/subtle"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// OTPStore holds pending login codes keyed by identifier. A matching
// Verify consumes the code; a mismatch leaves it in place so the user can
// retype it until it expires.
type OTPStore interface {
	Set(ctx context.Context, identifier, code string, ttl time.Duration) error
	Verify(ctx context.Context, identifier, code string) (bool, error)
}

const keyPrefixOTP = "otp:"

// RedisStore keeps codes in Redis so restarts and replicas share state
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed OTP store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Set(ctx context.Context, identifier, code string, ttl time.Duration) error {
	return s.client.Set(ctx, keyPrefixOTP+identifier, code, ttl).Err()
}

func (s *RedisStore) Verify(ctx context.Context, identifier, code string) (bool, error) {
	key := keyPrefixOTP + identifier

	stored, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if subtle.ConstantTimeCompare([]byte(stored), []byte(code)) != 1 {
		return false, nil
	}

	s.client.Del(ctx, key)
	return true, nil
}

// MemoryStore keeps codes in process memory. Used when Redis is not
// configured; codes do not survive a restart.
type MemoryStore struct {
	mu    sync.Mutex
	codes map[string]memoryEntry
}

type memoryEntry struct {
	code      string
	expiresAt time.Time
}

// NewMemoryStore creates an in-memory OTP store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{codes: make(map[string]memoryEntry)}
}

func (s *MemoryStore) Set(ctx context.Context, identifier, code string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codes[identifier] = memoryEntry{code: code, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *MemoryStore) Verify(ctx context.Context, identifier, code string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.codes[identifier]
	if !ok {
		return false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(s.codes, identifier)
		return false, nil
	}

	if subtle.ConstantTimeCompare([]byte(entry.code), []byte(code)) != 1 {
		return false, nil
	}

	delete(s.codes, identifier)
	return true, nil
}
