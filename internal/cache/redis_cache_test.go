package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/nubecart/storefront/internal/cache"
	"github.com/nubecart/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "cart:items:sid-1", cache.Key(cache.CartItemsKeyPrefix, "sid-1"))
	assert.Equal(t, "cart:open:sid-1", cache.Key(cache.CartOpenKeyPrefix, "sid-1"))
}

func TestRedisCache_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Hit", func(t *testing.T) {
		// Arrange
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client)

		mock.ExpectGet("cart:items:sid").SetVal(`[{"id":"11","name":"Mate","price":"1500.00","quantity":2}]`)

		// Act
		var items []models.CartItem
		found, err := c.Get(ctx, "cart:items:sid", &items)

		// Assert
		require.NoError(t, err)
		assert.True(t, found)
		require.Len(t, items, 1)
		assert.Equal(t, "Mate", items[0].Name)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Miss", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client)

		mock.ExpectGet("cart:items:sid").RedisNil()

		var items []models.CartItem
		found, err := c.Get(ctx, "cart:items:sid", &items)

		require.NoError(t, err)
		assert.False(t, found)
		assert.Empty(t, items)
	})

	t.Run("Corrupt Payload", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client)

		mock.ExpectGet("cart:items:sid").SetVal(`{not json`)

		var items []models.CartItem
		found, err := c.Get(ctx, "cart:items:sid", &items)

		assert.False(t, found)
		assert.Error(t, err)
	})
}

func TestRedisCache_Set(t *testing.T) {
	ctx := context.Background()

	t.Run("Persists Without Expiry By Default", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client)

		mock.ExpectSet("cart:open:sid", []byte(`true`), 0).SetVal("OK")

		err := c.Set(ctx, "cart:open:sid", true, 0)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Negative TTL Means No Expiry", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client)

		mock.ExpectSet("cart:open:sid", []byte(`false`), 0).SetVal("OK")

		err := c.Set(ctx, "cart:open:sid", false, -time.Second)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Positive TTL Passes Through", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		c := cache.NewRedisCache(client)

		mock.ExpectSet("k", []byte(`1`), time.Minute).SetVal("OK")

		err := c.Set(ctx, "k", 1, time.Minute)

		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRedisCache_Delete(t *testing.T) {
	ctx := context.Background()

	client, mock := redismock.NewClientMock()
	c := cache.NewRedisCache(client)

	mock.ExpectDel("cart:items:sid").SetVal(1)

	err := c.Delete(ctx, "cart:items:sid")

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
