package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "order-catalog/pkg/errors"
)

func newTestCacheRepo(t *testing.T) (CacheRepositoryInterface, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewRedisCacheRepository(client), mr
}

func TestRedisCacheRepository_SetGet(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "branch:1:menu:v3", `[{"id":1}]`, time.Hour))

	got, err := repo.Get(ctx, "branch:1:menu:v3")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":1}]`, got)
}

func TestRedisCacheRepository_GetMissing(t *testing.T) {
	repo, _ := newTestCacheRepo(t)

	_, err := repo.Get(context.Background(), "no-such-key")
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestRedisCacheRepository_SetRespectsTTL(t *testing.T) {
	repo, mr := newTestCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "branch:1:popular-items", "[]", 15*time.Minute))

	mr.FastForward(16 * time.Minute)
	_, err := repo.Get(ctx, "branch:1:popular-items")
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestRedisCacheRepository_Del(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "a", "1", 0))
	require.NoError(t, repo.Set(ctx, "b", "2", 0))
	require.NoError(t, repo.Del(ctx, "a", "b"))

	_, err := repo.Get(ctx, "a")
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
}

func TestRedisCacheRepository_DelByPattern(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "branch:1:menu:v1", "[]", 0))
	require.NoError(t, repo.Set(ctx, "branch:1:menu:v2", "[]", 0))
	require.NoError(t, repo.Set(ctx, "branch:2:menu:v1", "[]", 0))
	require.NoError(t, repo.Set(ctx, "branch:1:popular-items", "[]", 0))

	require.NoError(t, repo.DelByPattern(ctx, "branch:1:menu:v*"))

	_, err := repo.Get(ctx, "branch:1:menu:v1")
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)
	_, err = repo.Get(ctx, "branch:1:menu:v2")
	assert.ErrorIs(t, err, apperrors.ErrCacheMiss)

	got, err := repo.Get(ctx, "branch:2:menu:v1")
	require.NoError(t, err, "other branches untouched")
	assert.Equal(t, "[]", got)

	_, err = repo.Get(ctx, "branch:1:popular-items")
	assert.NoError(t, err, "non-menu keys untouched")
}

func TestRedisCacheRepository_DelByPatternNoMatches(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	assert.NoError(t, repo.DelByPattern(context.Background(), "branch:9:menu:v*"))
}

func TestRedisCacheRepository_Incr(t *testing.T) {
	repo, _ := newTestCacheRepo(t)
	ctx := context.Background()

	n, err := repo.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.Incr(ctx, "counter")
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}
