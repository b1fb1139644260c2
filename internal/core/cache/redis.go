package cache

import (
	"context"
	"fmt"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"github.com/go-redis/redis/v8"
)

// RedisStore Redis 共享緩存，多實例部署時取代記憶體緩存
type RedisStore struct {
	client *redis.Client
	config *config.Config
}

// NewRedisStore 創建 Redis 緩存；設定未開啟時回傳 nil
func NewRedisStore(cfg *config.Config) (*RedisStore, error) {
	if !cfg.Redis.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})

	// 測試連接
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	common.LogInfo("Redis 緩存已連接")
	return &RedisStore{
		client: client,
		config: cfg,
	}, nil
}

// Get 獲取緩存的食譜記錄（JSON 字串）
func (s *RedisStore) Get(ctx context.Context, key string) (string, error) {
	if s == nil || s.client == nil {
		return "", common.ErrCacheDisabled
	}

	data, err := s.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			common.LogCacheMiss("redis", key)
			return "", common.ErrCacheDisabled
		}
		return "", fmt.Errorf("failed to get cache: %w", err)
	}

	common.LogCacheHit("redis", key)
	return data, nil
}

// Set 寫入緩存的食譜記錄
func (s *RedisStore) Set(ctx context.Context, key, value string) error {
	if s == nil || s.client == nil {
		return nil
	}

	if err := s.client.Set(ctx, key, value, s.config.Cache.TTL).Err(); err != nil {
		return fmt.Errorf("failed to set cache: %w", err)
	}
	return nil
}

// Close 關閉 Redis 連接
func (s *RedisStore) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}
