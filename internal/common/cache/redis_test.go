package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Kritik-Chaudhary/farmer-support-sub000/internal/common/config"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)

	c, err := New(config.RedisConfig{
		Enabled: true,
		Address: mr.Addr(),
	})
	require.NoError(t, err)
	require.NotNil(t, c)
	return c, mr
}

func TestCache_SetGet(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, ok := c.Get(ctx, "weather:28.61:77.21")
	assert.False(t, ok, "empty cache should miss")

	c.Set(ctx, "weather:28.61:77.21", `{"temp":31}`, time.Minute)

	val, ok := c.Get(ctx, "weather:28.61:77.21")
	assert.True(t, ok)
	assert.Equal(t, `{"temp":31}`, val)
}

func TestCache_Expiry(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	c.Set(ctx, "prices:PB:wheat", `{"rows":[]}`, 30*time.Second)
	mr.FastForward(time.Minute)

	_, ok := c.Get(ctx, "prices:PB:wheat")
	assert.False(t, ok, "expired key should miss")
}

func TestCache_NilSafe(t *testing.T) {
	var c *Cache
	ctx := context.Background()

	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())

	c.Set(ctx, "k", "v", time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok, "nil cache always misses")
}

func TestNew_Disabled(t *testing.T) {
	c, err := New(config.RedisConfig{Enabled: false})
	assert.NoError(t, err)
	assert.Nil(t, c)
}
