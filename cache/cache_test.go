package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewCacheWithClient(client)
}

func TestCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "patient_cache:P-000001", `{"id":"P-000001"}`, time.Minute))

	val, err := c.Get(ctx, "patient_cache:P-000001")
	assert.NoError(t, err)
	assert.Equal(t, `{"id":"P-000001"}`, val)
}

func TestCacheGetMissingKey(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	val, err := c.Get(ctx, "patient_cache:P-999999")
	assert.NoError(t, err)
	assert.Empty(t, val)
}

func TestCacheDelete(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "bed_cache:BED-A-101", "x", time.Minute))
	require.NoError(t, c.Delete(ctx, "bed_cache:BED-A-101"))

	val, err := c.Get(ctx, "bed_cache:BED-A-101")
	assert.NoError(t, err)
	assert.Empty(t, val)
}

func TestCacheDeleteAll(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(t)

	require.NoError(t, c.Set(ctx, "patients_cache", "a", time.Minute))
	require.NoError(t, c.Set(ctx, "patient_cache:P-000001", "b", time.Minute))
	require.NoError(t, c.Set(ctx, "beds_cache", "c", time.Minute))

	require.NoError(t, c.DeleteAll(ctx, "patient*"))

	val, err := c.Get(ctx, "patient_cache:P-000001")
	assert.NoError(t, err)
	assert.Empty(t, val)

	val, err = c.Get(ctx, "beds_cache")
	assert.NoError(t, err)
	assert.Equal(t, "c", val)
}
