package cache

import (
	"context"
	"testing"
	"time"

	"quizhub/internal/domain"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisCacheGet(t *testing.T) {
	ctx := context.Background()

	t.Run("hit", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := NewRedisCache(client)

		mock.ExpectGet("quizhub:quiz:view:q1").SetVal(`{"id":"q1"}`)

		val, err := c.Get(ctx, "quizhub:quiz:view:q1")
		require.NoError(t, err)
		assert.Equal(t, `{"id":"q1"}`, val)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("miss translates to the cache-miss sentinel", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := NewRedisCache(client)

		mock.ExpectGet("quizhub:quiz:view:ghost").RedisNil()

		_, err := c.Get(ctx, "quizhub:quiz:view:ghost")
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})
}

func TestRedisCacheSetAndDelete(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	c := NewRedisCache(client)

	mock.ExpectSet("k", "v", 10*time.Minute).SetVal("OK")
	require.NoError(t, c.Set(ctx, "k", "v", 10*time.Minute))

	mock.ExpectDel("k").SetVal(1)
	require.NoError(t, c.Delete(ctx, "k"))

	assert.NoError(t, mock.ExpectationsWereMet())
}
