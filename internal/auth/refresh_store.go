package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const refreshKeyPrefix = "auth:refresh:"

// ErrRefreshTokenNotFound is returned by stores for unknown or expired tokens
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenData stores information about a refresh token
type RefreshTokenData struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	Provider  string    `json:"provider"`
	ExpiresAt time.Time `json:"expires_at"`
	CreatedAt time.Time `json:"created_at"`
}

// RefreshStore persists refresh tokens and one-shot OAuth states
type RefreshStore interface {
	Save(ctx context.Context, token string, data *RefreshTokenData, ttl time.Duration) error
	Get(ctx context.Context, token string) (*RefreshTokenData, error)
	Delete(ctx context.Context, token string) error
	SaveState(ctx context.Context, state string, ttl time.Duration) error
	ConsumeState(ctx context.Context, state string) (bool, error)
}

// RedisRefreshStore keeps refresh tokens in Redis with a TTL per key
type RedisRefreshStore struct {
	client *redis.Client
}

// NewRedisRefreshStore creates a Redis-backed refresh store
func NewRedisRefreshStore(client *redis.Client) *RedisRefreshStore {
	return &RedisRefreshStore{client: client}
}

func (s *RedisRefreshStore) Save(ctx context.Context, token string, data *RefreshTokenData, ttl time.Duration) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to encode refresh token: %w", err)
	}
	return s.client.Set(ctx, refreshKeyPrefix+token, payload, ttl).Err()
}

func (s *RedisRefreshStore) Get(ctx context.Context, token string) (*RefreshTokenData, error) {
	payload, err := s.client.Get(ctx, refreshKeyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrRefreshTokenNotFound
	}
	if err != nil {
		return nil, err
	}
	var data RefreshTokenData
	if err := json.Unmarshal(payload, &data); err != nil {
		return nil, fmt.Errorf("failed to decode refresh token: %w", err)
	}
	return &data, nil
}

func (s *RedisRefreshStore) Delete(ctx context.Context, token string) error {
	return s.client.Del(ctx, refreshKeyPrefix+token).Err()
}

func (s *RedisRefreshStore) SaveState(ctx context.Context, state string, ttl time.Duration) error {
	return s.client.Set(ctx, "auth:state:"+state, 1, ttl).Err()
}

func (s *RedisRefreshStore) ConsumeState(ctx context.Context, state string) (bool, error) {
	deleted, err := s.client.Del(ctx, "auth:state:"+state).Result()
	if err != nil {
		return false, err
	}
	return deleted > 0, nil
}

// MemoryRefreshStore is the in-process store used when Redis is not configured
type MemoryRefreshStore struct {
	mu     sync.Mutex
	tokens map[string]*RefreshTokenData
	states map[string]time.Time
	now    func() time.Time
}

// NewMemoryRefreshStore creates an empty in-memory refresh store
func NewMemoryRefreshStore() *MemoryRefreshStore {
	return &MemoryRefreshStore{
		tokens: make(map[string]*RefreshTokenData),
		states: make(map[string]time.Time),
		now:    time.Now,
	}
}

func (s *MemoryRefreshStore) Save(_ context.Context, token string, data *RefreshTokenData, ttl time.Duration) error {
	stored := *data
	stored.ExpiresAt = s.now().Add(ttl)
	s.mu.Lock()
	s.tokens[token] = &stored
	s.mu.Unlock()
	return nil
}

func (s *MemoryRefreshStore) Get(_ context.Context, token string) (*RefreshTokenData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.tokens[token]
	if !ok {
		return nil, ErrRefreshTokenNotFound
	}
	if !s.now().Before(data.ExpiresAt) {
		delete(s.tokens, token)
		return nil, ErrRefreshTokenNotFound
	}
	copied := *data
	return &copied, nil
}

func (s *MemoryRefreshStore) Delete(_ context.Context, token string) error {
	s.mu.Lock()
	delete(s.tokens, token)
	s.mu.Unlock()
	return nil
}

func (s *MemoryRefreshStore) SaveState(_ context.Context, state string, ttl time.Duration) error {
	s.mu.Lock()
	s.states[state] = s.now().Add(ttl)
	s.mu.Unlock()
	return nil
}

func (s *MemoryRefreshStore) ConsumeState(_ context.Context, state string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	expiresAt, ok := s.states[state]
	delete(s.states, state)
	return ok && s.now().Before(expiresAt), nil
}
