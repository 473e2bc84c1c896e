package redis

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdempotencyStore_CheckAndSetExisting(t *testing.T) {
	client := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	require.NoError(t, client.Set(ctx, store.prefix+"key", "cached", time.Minute).Err())

	exists, resp, err := store.CheckAndSet(ctx, "key", nil, time.Minute)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "cached", string(resp))
}

func TestIdempotencyStore_CheckAndSetLocksNewKey(t *testing.T) {
	client := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	exists, resp, err := store.CheckAndSet(ctx, "pending", nil, time.Minute)
	require.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, resp)

	val, err := client.Get(ctx, store.prefix+"pending").Result()
	require.NoError(t, err)
	assert.Equal(t, processingPlaceholder, val)
}

func TestIdempotencyStore_Update(t *testing.T) {
	client := newTestRedisClient(t)
	store := NewIdempotencyStore(client)
	ctx := context.Background()

	require.NoError(t, store.Update(ctx, "complete", []byte("done"), time.Minute))

	val, err := client.Get(ctx, store.prefix+"complete").Result()
	require.NoError(t, err)
	assert.Equal(t, "done", val)
}
