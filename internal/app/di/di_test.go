package di

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"wetube_backend/internal/platform/externalapi/oauth"
	"wetube_backend/internal/platform/session"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	return db
}

func TestNewSessionRepository(t *testing.T) {
	db := openTestDB(t)

	t.Run("redis available", func(t *testing.T) {
		mr := miniredis.RunT(t)
		rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer func() { _ = rdb.Close() }()

		repo := NewSessionRepository(rdb, db)

		assert.IsType(t, &session.SessionRedis{}, repo)
	})

	t.Run("fallback to sql", func(t *testing.T) {
		repo := NewSessionRepository(nil, db)

		assert.NotNil(t, repo)
		_, isRedis := repo.(*session.SessionRedis)
		assert.False(t, isRedis)
	})
}

func TestNewOAuthProviders(t *testing.T) {
	providers := NewOAuthProviders(oauth.Config{Timeout: time.Second})

	require.Len(t, providers, 2)
	assert.Equal(t, oauth.GitHubProvider, providers[0].Name())
	assert.Equal(t, oauth.KakaoProvider, providers[1].Name())
}

func TestNewHealthChecks(t *testing.T) {
	db := openTestDB(t)

	checks := NewHealthChecks(db, nil)
	require.Len(t, checks, 1)
	assert.NoError(t, checks["db"](context.Background()))

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer func() { _ = rdb.Close() }()

	checks = NewHealthChecks(db, rdb)
	require.Len(t, checks, 2)
	assert.NoError(t, checks["redis"](context.Background()))

	mr.Close()
	assert.Error(t, checks["redis"](context.Background()))
}
