// Package session implements the server-side session store backing the
// trainer/admin scheme (and the external-session variant for customers).
// Sessions are opaque UUID handles mapped to short JSON records in Redis.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNotFound is returned when a handle does not resolve to a live session.
var ErrNotFound = errors.New("session not found")

const keyPrefix = "sess:"

// Record is what introspecting a session handle yields. Role and TrainerID
// drive principal mapping; UserID is set for customer-variant sessions.
type Record struct {
	UserID    string `json:"userId,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	TrainerID string `json:"trainerId,omitempty"`
	CreatedAt int64  `json:"createdAt"`
}

// Store is a Redis-backed session store.
type Store struct {
	redis redis.UniversalClient
	ttl   time.Duration
}

// NewStore creates a session Store with the given default TTL.
func NewStore(client redis.UniversalClient, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Store{redis: client, ttl: ttl}
}

// Create persists a record and returns its opaque handle.
func (s *Store) Create(ctx context.Context, rec Record) (string, error) {
	if rec.CreatedAt == 0 {
		rec.CreatedAt = time.Now().Unix()
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return "", err
	}

	handle := uuid.NewString()
	if err := s.redis.Set(ctx, keyPrefix+handle, data, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("session save: %w", err)
	}
	return handle, nil
}

// Get resolves a handle to its record. Missing or expired handles yield
// ErrNotFound; the TTL is not renewed (no sliding expiry).
func (s *Store) Get(ctx context.Context, handle string) (*Record, error) {
	data, err := s.redis.Get(ctx, keyPrefix+handle).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("session get: %w", err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		// A corrupt blob is indistinguishable from no session to callers.
		return nil, ErrNotFound
	}
	return &rec, nil
}

// Delete removes a session. Deleting an absent handle is not an error, so
// logout stays idempotent.
func (s *Store) Delete(ctx context.Context, handle string) error {
	if handle == "" {
		return nil
	}
	if err := s.redis.Del(ctx, keyPrefix+handle).Err(); err != nil {
		return fmt.Errorf("session delete: %w", err)
	}
	return nil
}

// Ping verifies Redis connectivity.
func (s *Store) Ping(ctx context.Context) error {
	return s.redis.Ping(ctx).Err()
}
