// Package analytics 記錄解析與分類結果的統計事件。
// 追蹤是旁路行為：在獨立協程執行並隔離 panic，不影響主流程回應。
package analytics

import (
	"sync"

	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// Tracker 統計追蹤器
type Tracker struct {
	mu      sync.Mutex
	parsed  int64
	failed  int64
	fetched int64
	courses map[common.Course]int64
}

// NewTracker 創建統計追蹤器
func NewTracker() *Tracker {
	return &Tracker{
		courses: make(map[common.Course]int64),
	}
}

// TrackParse 記錄一次解析結果
func (t *Tracker) TrackParse(success bool) {
	if t == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				common.LogWarn("統計追蹤發生 panic", zap.Any("panic", r))
			}
		}()

		t.mu.Lock()
		defer t.mu.Unlock()
		if success {
			t.parsed++
		} else {
			t.failed++
		}
	}()
}

// TrackFetch 記錄一次頁面抓取
func (t *Tracker) TrackFetch() {
	if t == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				common.LogWarn("統計追蹤發生 panic", zap.Any("panic", r))
			}
		}()

		t.mu.Lock()
		defer t.mu.Unlock()
		t.fetched++
	}()
}

// TrackClassification 記錄一次分類結果的餐段分布
func (t *Tracker) TrackClassification(c common.CulinaryClassification) {
	if t == nil {
		return
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				common.LogWarn("統計追蹤發生 panic", zap.Any("panic", r))
			}
		}()

		t.mu.Lock()
		defer t.mu.Unlock()
		if c.Course != "" {
			t.courses[c.Course]++
		}
	}()
}

// Snapshot 回傳目前統計快照
func (t *Tracker) Snapshot() map[string]interface{} {
	if t == nil {
		return map[string]interface{}{}
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	courses := make(map[string]int64, len(t.courses))
	for c, n := range t.courses {
		courses[string(c)] = n
	}

	return map[string]interface{}{
		"parsed":  t.parsed,
		"failed":  t.failed,
		"fetched": t.fetched,
		"courses": courses,
	}
}
