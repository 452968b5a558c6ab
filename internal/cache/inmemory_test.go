package cache

import (
	"context"
	"testing"
	"time"

	"github.com/rafaelredel/sglc-prefeituras/internal/config"
	"github.com/rafaelredel/sglc-prefeituras/internal/logger"
	"github.com/stretchr/testify/assert"
)

func newTestCache(enabled bool) *InMemoryCache {
	cfg := config.GetDefaultConfig()
	cfg.Cache.Enabled = enabled
	return NewInMemoryCache(cfg, logger.NewNoopLogger())
}

func TestInMemoryCacheSetGet(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(true)

	key := GenerateKey(PrefixTenantResolution, "user_1")
	assert.Equal(t, "tenant_resolution:v1:user_1", key)

	c.Set(ctx, key, "tenant_a", TenantResolutionTTL)
	v, ok := c.Get(ctx, key)
	assert.True(t, ok)
	assert.Equal(t, "tenant_a", v)

	c.Delete(ctx, key)
	_, ok = c.Get(ctx, key)
	assert.False(t, ok)
}

func TestInMemoryCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(true)

	c.Set(ctx, "k", 1, 10*time.Millisecond)
	time.Sleep(20 * time.Millisecond)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}

func TestInMemoryCacheDeleteByPrefix(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(true)

	c.Set(ctx, GenerateKey(PrefixTenantResolution, "u1"), "t1", 0)
	c.Set(ctx, GenerateKey(PrefixTenantResolution, "u2"), "t1", 0)
	c.Set(ctx, GenerateKey(PrefixUser, "u1"), "x", 0)

	c.DeleteByPrefix(ctx, PrefixTenantResolution)

	_, ok := c.Get(ctx, GenerateKey(PrefixTenantResolution, "u1"))
	assert.False(t, ok)
	_, ok = c.Get(ctx, GenerateKey(PrefixUser, "u1"))
	assert.True(t, ok)
}

func TestInMemoryCacheDisabled(t *testing.T) {
	ctx := context.Background()
	c := newTestCache(false)

	c.Set(ctx, "k", 1, time.Minute)
	_, ok := c.Get(ctx, "k")
	assert.False(t, ok)
}
