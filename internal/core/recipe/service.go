// Package recipe 整合抓取、解析、分類與緩存，提供對外的食譜匯入服務。
package recipe

import (
	"context"
	"encoding/json"

	"recipe-importer/internal/core/analytics"
	"recipe-importer/internal/core/cache"
	"recipe-importer/internal/core/classify"
	"recipe-importer/internal/core/fetch"
	"recipe-importer/internal/core/parse"
	"recipe-importer/internal/infrastructure/config"
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// Service 食譜匯入服務
type Service struct {
	config  *config.Config
	fetcher *fetch.Client
	store   cache.Store
	tracker *analytics.Tracker
}

// NewService 創建食譜匯入服務
// store 與 tracker 可為 nil，表示停用對應旁路功能
func NewService(cfg *config.Config, fetcher *fetch.Client, store cache.Store, tracker *analytics.Tracker) *Service {
	return &Service{
		config:  cfg,
		fetcher: fetcher,
		store:   store,
		tracker: tracker,
	}
}

// Parse 解析給定的 HTML 為食譜記錄
// withClassification 為真時在回傳前附上料理分類
func (s *Service) Parse(ctx context.Context, html, sourceURL string, withClassification bool) (*common.ParsedRecipe, error) {
	key := cache.Key(html, sourceURL)

	// 檢查緩存
	if s.store != nil {
		if val, err := s.store.Get(ctx, key); err == nil && val != "" {
			var cached common.ParsedRecipe
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				if withClassification && cached.Classification == nil {
					c := classify.Classify(&cached)
					cached.Classification = &c
				}
				return &cached, nil
			}
			common.LogWarn("緩存內容解析失敗，忽略並重新解析", zap.String("鍵", key))
		}
	}

	recipe, err := parse.Parse(html, sourceURL)
	if err != nil {
		s.tracker.TrackParse(false)
		return nil, err
	}
	s.tracker.TrackParse(true)

	if withClassification {
		c := classify.Classify(recipe)
		recipe.Classification = &c
		s.tracker.TrackClassification(c)
	}

	// 寫入緩存，失敗不影響回應
	if s.store != nil {
		if data, err := json.Marshal(recipe); err == nil {
			_ = s.store.Set(ctx, key, string(data))
		}
	}

	return recipe, nil
}

// Import 抓取 URL 並解析為食譜記錄
// 抓取失敗回傳 FetchError，解析失敗回傳 ValidationError，呼叫端據此區分回應
func (s *Service) Import(ctx context.Context, url string, withClassification bool) (*common.ParsedRecipe, error) {
	result, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	s.tracker.TrackFetch()

	return s.Parse(ctx, result.HTML, result.FinalURL, withClassification)
}

// Classify 計算已解析食譜的料理分類
func (s *Service) Classify(r *common.ParsedRecipe) common.CulinaryClassification {
	c := classify.Classify(r)
	s.tracker.TrackClassification(c)
	return c
}

// Stats 回傳服務統計
func (s *Service) Stats() map[string]interface{} {
	return s.tracker.Snapshot()
}
