// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"wetube_backend/internal/feature/auth/domain/entity"
	"wetube_backend/internal/feature/auth/usecase"
)

// CachingUserRepository decorates a UserRepository with a Redis read-through
// cache for FindByID. Cached users carry no password hash.
// Every write through the decorator drops the cached entry.
// Lookups other than FindByID go straight to the inner repository.
type CachingUserRepository struct {
	usecase.UserRepository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check to ensure CachingUserRepository implements UserRepository.
var _ usecase.UserRepository = (*CachingUserRepository)(nil)

// NewCachingUserRepository decorates a UserRepository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "users".
// A nil rdb disables caching.
func NewCachingUserRepository(rdb *redis.Client, ttl time.Duration, inner usecase.UserRepository, namespace string) *CachingUserRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "users"
	}
	return &CachingUserRepository{
		UserRepository: inner,
		rdb:            rdb,
		ttl:            ttl,
		namespace:      namespace,
	}
}

// FindByID returns the user, checking cache first then falling back to the inner repository.
func (c *CachingUserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.UserRepository.FindByID(ctx, id)
	}

	key := c.cacheKey(id)

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out cachedUser
		if err := json.Unmarshal(b, &out); err == nil {
			return out.toEntity(), nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to the store; misses are not cached
	out, err := c.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache without the password hash (best effort)
	if b, err := json.Marshal(newCachedUser(out)); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// UpdateProfile writes through and invalidates the cached user.
func (c *CachingUserRepository) UpdateProfile(ctx context.Context, user *entity.User) error {
	if err := c.UserRepository.UpdateProfile(ctx, user); err != nil {
		return err
	}
	c.invalidate(ctx, user.ID)
	return nil
}

// UpdatePassword writes through and invalidates the cached user.
func (c *CachingUserRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	if err := c.UserRepository.UpdatePassword(ctx, id, passwordHash); err != nil {
		return err
	}
	c.invalidate(ctx, id)
	return nil
}

// invalidate drops the cached user. Failures are only logged.
func (c *CachingUserRepository) invalidate(ctx context.Context, id string) {
	if c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.cacheKey(id)).Err(); err != nil {
		slog.Warn("failed to invalidate cached user", "user_id", id, "error", err)
	}
}

// cacheKey generates the cache key of a user.
func (c *CachingUserRepository) cacheKey(id string) string {
	return fmt.Sprintf("%s:%s", c.namespace, safe(id))
}

// safe escapes characters that are problematic for Redis keys.
func safe(s string) string {
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, ":", "_")
	return s
}
