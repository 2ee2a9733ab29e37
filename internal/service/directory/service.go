package directory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/shift-reminder/internal/model"
)

//go:generate mockgen -source=service.go -destination=../../mocks/service/directory/mock.go -package=mocks

type contactRepository interface {
	GetContact(ctx context.Context, userID string) (model.ContactProfile, error)
}

type cache interface {
	SetWithRetry(ctx context.Context, strategy retry.Strategy, key string, value interface{}) error
	GetWithRetry(ctx context.Context, strategy retry.Strategy, key string) (string, error)
}

type cachedProfile struct {
	Profile  model.ContactProfile `json:"profile"`
	CachedAt time.Time            `json:"cached_at"`
}

// Service resolves contact profiles, reading through a Redis cache.
// Entries older than ttl are refreshed from the store, so an opt-out
// takes effect within ttl.
type Service struct {
	repo     contactRepository
	cache    cache
	strategy retry.Strategy
	ttl      time.Duration
	now      func() time.Time
}

// NewService creates a directory service. cache may be nil to always
// read the store.
func NewService(repo contactRepository, cache cache, strategy retry.Strategy, ttl time.Duration) *Service {
	return &Service{repo: repo, cache: cache, strategy: strategy, ttl: ttl, now: time.Now}
}

func cacheKey(userID string) string {
	return "contact:" + userID
}

// GetContact returns the contact profile of a user.
func (s *Service) GetContact(ctx context.Context, userID string) (model.ContactProfile, error) {
	if p, ok := s.fromCache(ctx, userID); ok {
		return p, nil
	}

	p, err := s.repo.GetContact(ctx, userID)
	if err != nil {
		return model.ContactProfile{}, fmt.Errorf("get contact profile: %w", err)
	}

	if s.cache != nil {
		data, err := json.Marshal(cachedProfile{Profile: p, CachedAt: s.now()})
		if err == nil {
			err = s.cache.SetWithRetry(ctx, s.strategy, cacheKey(userID), string(data))
		}
		if err != nil {
			zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to cache contact profile")
		}
	}

	return p, nil
}

func (s *Service) fromCache(ctx context.Context, userID string) (model.ContactProfile, bool) {
	if s.cache == nil {
		return model.ContactProfile{}, false
	}

	val, err := s.cache.GetWithRetry(ctx, s.strategy, cacheKey(userID))
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			zlog.Logger.Error().Err(err).Str("user_id", userID).Msg("failed to get contact profile from cache")
		}
		return model.ContactProfile{}, false
	}

	var cp cachedProfile
	if err := json.Unmarshal([]byte(val), &cp); err != nil {
		zlog.Logger.Warn().Err(err).Str("user_id", userID).Msg("invalid cached contact profile")
		return model.ContactProfile{}, false
	}

	if s.ttl > 0 && s.now().Sub(cp.CachedAt) > s.ttl {
		return model.ContactProfile{}, false
	}

	return cp.Profile, true
}
