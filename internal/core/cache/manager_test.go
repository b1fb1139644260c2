package cache

import (
	"context"
	"testing"
	"time"

	"recipe-importer/internal/infrastructure/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(maxSize int, ttl time.Duration) *config.Config {
	return &config.Config{
		Cache: config.CacheConfig{
			Enabled:         true,
			MaxSize:         maxSize,
			TTL:             ttl,
			CleanupInterval: time.Minute,
		},
	}
}

func TestManagerSetGet(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	key := Key("<html>soup</html>", "https://example.com/soup")

	require.NoError(t, m.Set(ctx, key, `{"title":"Test Soup"}`))

	got, err := m.Get(ctx, key)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"Test Soup"}`, got)
}

func TestManagerMiss(t *testing.T) {
	m := NewManager(testConfig(10, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	_, err := m.Get(context.Background(), "recipe:unknown")
	assert.Error(t, err)
}

func TestManagerExpiry(t *testing.T) {
	m := NewManager(testConfig(10, 10*time.Millisecond))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "recipe:k", "v"))

	time.Sleep(30 * time.Millisecond)

	_, err := m.Get(ctx, "recipe:k")
	assert.Error(t, err)
}

func TestManagerEvictsLRUWhenFull(t *testing.T) {
	m := NewManager(testConfig(2, time.Minute))
	require.NotNil(t, m)
	defer m.Close()

	ctx := context.Background()
	require.NoError(t, m.Set(ctx, "recipe:a", "1"))
	require.NoError(t, m.Set(ctx, "recipe:b", "2"))

	// 提升 a 的訪問次數，b 成為淘汰對象
	_, err := m.Get(ctx, "recipe:a")
	require.NoError(t, err)

	require.NoError(t, m.Set(ctx, "recipe:c", "3"))

	_, err = m.Get(ctx, "recipe:a")
	assert.NoError(t, err)
	_, err = m.Get(ctx, "recipe:b")
	assert.Error(t, err)
}

func TestManagerDisabled(t *testing.T) {
	cfg := testConfig(10, time.Minute)
	cfg.Cache.Enabled = false

	m := NewManager(cfg)
	assert.Nil(t, m)

	// nil 管理器的操作必須安全
	_, err := m.Get(context.Background(), "recipe:k")
	assert.Error(t, err)
	assert.NoError(t, m.Set(context.Background(), "recipe:k", "v"))
	assert.NoError(t, m.Close())
}

func TestKeyIsStable(t *testing.T) {
	a := Key("<html></html>", "https://example.com")
	b := Key("<html></html>", "https://example.com")
	c := Key("<html>x</html>", "https://example.com")

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Contains(t, a, "recipe:")
}
