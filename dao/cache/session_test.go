package cache

import (
	"Bookgram/config"
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStorageDisabled(t *testing.T) {
	ctx := context.Background()
	for _, s := range []*SessionStorage{nil, NewSessionStorage(nil, &config.Config{})} {
		assert.False(t, s.Enabled())
		assert.NoError(t, s.Bind(ctx, "u1", "t1"))
		ok, err := s.IsActive(ctx, "u1", "anything")
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, s.UnBind(ctx, "u1"))
	}
}

// 需要真实 redis，设置 REDIS_TEST_ADDR 后运行
func TestSessionStorageRedis(t *testing.T) {
	addr := os.Getenv("REDIS_TEST_ADDR")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDR not set")
	}
	rds := redis.NewClient(&redis.Options{Addr: addr})
	defer rds.Close()

	ctx := context.Background()
	s := NewSessionStorage(rds, &config.Config{Redis: &config.Redis{Address: addr, SessionTTL: 60}})
	uid := uuid.NewString()

	ok, err := s.IsActive(ctx, uid, "t1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Bind(ctx, uid, "t1"))
	ok, err = s.IsActive(ctx, uid, "t1")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, s.Bind(ctx, uid, "t2"))
	ok, err = s.IsActive(ctx, uid, "t1")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.UnBind(ctx, uid))
	ok, err = s.IsActive(ctx, uid, "t2")
	require.NoError(t, err)
	assert.False(t, ok)
}
