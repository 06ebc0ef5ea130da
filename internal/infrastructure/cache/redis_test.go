package cache

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedAuthor struct {
	ID        string `json:"id"`
	BirthDate string `json:"birthDate"`
}

func setupRedis(t *testing.T) *RedisCache {
	t.Helper()

	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	rc := NewRedisCache(addr, "", 15).(*RedisCache)
	if err := rc.Ping(context.Background()); err != nil {
		_ = rc.Close()
		t.Skipf("Skipping test: cannot reach redis: %v", err)
	}
	t.Cleanup(func() { _ = rc.Close() })

	return rc
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	rc := setupRedis(t)
	ctx := context.Background()
	key := "test:authors:list"

	want := []cachedAuthor{{ID: "1", BirthDate: "1990-01-01"}}
	require.NoError(t, rc.Set(ctx, key, want, time.Minute))

	var got []cachedAuthor
	found, err := rc.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	require.NoError(t, rc.Delete(ctx, key))

	found, err = rc.Get(ctx, key, &got)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCache_DeleteNoKeys(t *testing.T) {
	rc := NewRedisCache("localhost:0", "", 0).(*RedisCache)
	defer rc.Close()

	assert.NoError(t, rc.Delete(context.Background()))
}
