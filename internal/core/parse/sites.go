package parse

import (
	"regexp"
	"sync"

	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// SiteExtractor 站點專屬擷取函數，回傳部分草稿
type SiteExtractor func(html, sourceURL string) *Draft

// Registry 站點專屬擷取器註冊表
// 以 URL 樣式配對；沒有註冊任何站點是常態，不是錯誤
type Registry struct {
	mu    sync.RWMutex
	rules []siteRule
}

type siteRule struct {
	pattern *regexp.Regexp
	extract SiteExtractor
}

// NewRegistry 創建空的註冊表
func NewRegistry() *Registry {
	return &Registry{}
}

// Register 註冊一個站點樣式與對應的擷取函數
// pattern 為不合法的正則時回傳錯誤
func (r *Registry) Register(pattern string, extract SiteExtractor) error {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, siteRule{pattern: re, extract: extract})
	return nil
}

// Extract 以來源 URL 配對站點並執行其擷取函數
// 擷取函數內部的任何失敗（含 panic）都在此吞掉，視為該階段「無結果」
func (r *Registry) Extract(html, sourceURL string) (draft *Draft) {
	if sourceURL == "" {
		return nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rule := range r.rules {
		if !rule.pattern.MatchString(sourceURL) {
			continue
		}
		func() {
			defer func() {
				if rec := recover(); rec != nil {
					common.LogWarn("站點擷取器 panic，視為無結果",
						zap.Any("error", rec),
						zap.String("url", sourceURL),
					)
					draft = nil
				}
			}()
			draft = rule.extract(html, sourceURL)
		}()
		return draft
	}
	return nil
}

// defaultRegistry 套件預設註冊表，RegisterSite 寫入、Parse 讀取
var defaultRegistry = NewRegistry()

// RegisterSite 在預設註冊表註冊站點擷取器
func RegisterSite(pattern string, extract SiteExtractor) error {
	return defaultRegistry.Register(pattern, extract)
}
