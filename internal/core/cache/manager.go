// Package cache 緩存解析完成的食譜記錄，鍵為頁面內容哈希。
// 記憶體 TTL/LRU 管理器為預設；設定開啟時可改走 Redis 共享緩存。
package cache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// Manager 記憶體緩存管理器
type Manager struct {
	config *config.Config
	mu     sync.RWMutex
	store  map[string]cacheEntry
	stats  cacheStats
}

// cacheEntry 緩存條目
type cacheEntry struct {
	value       string
	expiresAt   time.Time
	createdAt   time.Time
	lastAccess  time.Time
	accessCount int
}

// cacheStats 緩存統計
type cacheStats struct {
	hits      int64
	misses    int64
	evictions int64
	errors    int64
}

// NewManager 創建記憶體緩存管理器；緩存停用時回傳 nil
func NewManager(cfg *config.Config) *Manager {
	if !cfg.Cache.Enabled {
		common.LogInfo("Cache disabled")
		return nil
	}

	m := &Manager{
		config: cfg,
		store:  make(map[string]cacheEntry),
		stats:  cacheStats{},
	}

	// 啟動清理過期緩存的協程
	go m.startCleanup()

	common.LogInfo("快取管理員已初始化",
		zap.Int("最大容量", cfg.Cache.MaxSize),
		zap.Duration("存活時間", cfg.Cache.TTL),
		zap.Duration("清理間隔", cfg.Cache.CleanupInterval),
	)

	return m
}

// Key 由頁面 HTML 與來源 URL 生成緩存鍵
func Key(html, sourceURL string) string {
	return fmt.Sprintf("recipe:%s", common.HashString(html+"|"+sourceURL))
}

// Get 獲取緩存的食譜記錄（JSON 字串）
func (m *Manager) Get(ctx context.Context, key string) (string, error) {
	if m == nil || !m.config.Cache.Enabled {
		return "", common.ErrCacheDisabled
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	entry, exists := m.store[key]
	if !exists {
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", common.ErrCacheDisabled
	}

	// 檢查是否過期
	if time.Now().After(entry.expiresAt) {
		delete(m.store, key)
		m.stats.evictions++
		m.stats.misses++
		common.LogCacheMiss("memory", key)
		return "", common.ErrCacheDisabled
	}

	// 更新訪問統計
	entry.lastAccess = time.Now()
	entry.accessCount++
	m.store[key] = entry
	m.stats.hits++

	common.LogCacheHit("memory", key)
	return entry.value, nil
}

// Set 寫入緩存的食譜記錄
func (m *Manager) Set(ctx context.Context, key, value string) error {
	if m == nil || !m.config.Cache.Enabled {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// 檢查緩存大小：先清過期，仍滿則 LRU，再滿則回錯
	if len(m.store) >= m.config.Cache.MaxSize {
		evicted := m.cleanup()
		common.LogInfo("快取清理執行",
			zap.Int("清理數量", evicted),
		)

		if len(m.store) >= m.config.Cache.MaxSize {
			m.evictLRU()
		}

		if len(m.store) >= m.config.Cache.MaxSize {
			m.stats.errors++
			common.LogWarn("快取已滿",
				zap.Int("目前容量", len(m.store)),
			)
			return common.ErrCacheFull
		}
	}

	now := time.Now()
	m.store[key] = cacheEntry{
		value:      value,
		expiresAt:  now.Add(m.config.Cache.TTL),
		createdAt:  now,
		lastAccess: now,
	}

	return nil
}

// startCleanup 啟動清理過期緩存的協程
func (m *Manager) startCleanup() {
	ticker := time.NewTicker(m.config.Cache.CleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		m.mu.Lock()
		m.cleanup()
		m.mu.Unlock()
	}
}

// cleanup 清理過期的緩存，呼叫端須持有鎖
func (m *Manager) cleanup() int {
	now := time.Now()
	count := 0

	for key, entry := range m.store {
		if now.After(entry.expiresAt) {
			delete(m.store, key)
			count++
			m.stats.evictions++
		}
	}

	return count
}

// evictLRU 淘汰最少訪問的條目，呼叫端須持有鎖
func (m *Manager) evictLRU() {
	var oldestKey string
	var oldestAccess time.Time
	var lowestAccessCount int

	for key, entry := range m.store {
		if oldestKey == "" ||
			entry.accessCount < lowestAccessCount ||
			(entry.accessCount == lowestAccessCount && entry.lastAccess.Before(oldestAccess)) {
			oldestKey = key
			oldestAccess = entry.lastAccess
			lowestAccessCount = entry.accessCount
		}
	}

	if oldestKey != "" {
		delete(m.store, oldestKey)
		m.stats.evictions++
		common.LogInfo("快取已淘汰(LRU)",
			zap.String("鍵", oldestKey),
		)
	}
}

// GetStats 獲取緩存統計信息
func (m *Manager) GetStats() map[string]interface{} {
	if m == nil {
		return map[string]interface{}{"enabled": false}
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	total := m.stats.hits + m.stats.misses
	hitRatio := 0.0
	if total > 0 {
		hitRatio = float64(m.stats.hits) / float64(total)
	}

	return map[string]interface{}{
		"size":      len(m.store),
		"max_size":  m.config.Cache.MaxSize,
		"hits":      m.stats.hits,
		"misses":    m.stats.misses,
		"evictions": m.stats.evictions,
		"errors":    m.stats.errors,
		"hit_ratio": hitRatio,
	}
}

// Close 關閉緩存管理器
func (m *Manager) Close() error {
	if m == nil {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.store = make(map[string]cacheEntry)
	common.LogInfo("快取管理員已關閉",
		zap.Int64("命中次數", m.stats.hits),
		zap.Int64("未命中次數", m.stats.misses),
		zap.Int64("淘汰次數", m.stats.evictions),
	)
	return nil
}
