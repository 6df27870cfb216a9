package session

import (
	"context"
	"errors"
	"fmt"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/viper"
	"nightlife-booking/common/constant"
	"nightlife-booking/model"
	"time"
)

var ErrNotFound = errors.New("session not found")

// Store is the single source of truth for session identity. Screens read and
// write through it instead of touching device storage field by field.
type Store struct {
	Cache *redis.Client

	ttl time.Duration
}

func NewStore(cfg *viper.Viper, cache *redis.Client) *Store {
	ttl := cfg.GetDuration("session.ttl")
	if ttl == 0 {
		ttl = constant.SessionDefaultTTL
	}

	return &Store{Cache: cache, ttl: ttl}
}

func (s *Store) Load(ctx context.Context, accountID string) (*model.Session, error) {
	vals, err := s.Cache.HGetAll(ctx, s.key(accountID)).Result()
	if err != nil {
		return nil, err
	}

	if len(vals) == 0 {
		return nil, ErrNotFound
	}

	return &model.Session{
		AccountID: accountID,
		Email:     vals["email"],
		Token:     vals["token"],
		Role:      vals["role"],
		Avatar:    vals["avatar"],
	}, nil
}

// Persist merges only the given fields into the stored session and renews
// its TTL. Unknown fields are rejected so callers cannot smuggle state in.
func (s *Store) Persist(ctx context.Context, accountID string, fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	for field := range fields {
		switch field {
		case "email", "token", "role", "avatar":
		default:
			return fmt.Errorf("unknown session field %q", field)
		}
	}

	key := s.key(accountID)
	if err := s.Cache.HSet(ctx, key, fields).Err(); err != nil {
		return err
	}

	return s.Cache.Expire(ctx, key, s.ttl).Err()
}

func (s *Store) Clear(ctx context.Context, accountID string) error {
	return s.Cache.Del(ctx, s.key(accountID)).Err()
}

func (s *Store) key(accountID string) string {
	return fmt.Sprintf(constant.SessionKey, accountID)
}
