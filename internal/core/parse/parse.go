// Package parse 從半結構化 HTML 文件中擷取標準化食譜。
//
// 擷取採多策略管線：JSON-LD 結構化資料優先，其次 microdata、
// 站點專屬擷取器，最後才是啟發式備援。各階段產出部分草稿，
// 依「每欄位取第一個非空值」規則合併後交由驗證器產出 ParsedRecipe。
package parse

import (
	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

// Parse 解析食譜頁面 HTML，回傳通過驗證的 ParsedRecipe
// sourceURL 可為空；僅在草稿缺少必要欄位時回傳 ValidationError
func Parse(html, sourceURL string) (*common.ParsedRecipe, error) {
	return ParseWithRegistry(html, sourceURL, defaultRegistry)
}

// ParseWithRegistry 同 Parse，但使用指定的站點擷取器註冊表
func ParseWithRegistry(html, sourceURL string, registry *Registry) (*common.ParsedRecipe, error) {
	// 優先順序：結構化資料 → microdata → 站點專屬
	structured := ExtractJSONLD(html)
	common.LogExtraction("jsonld", structured != nil)

	micro := ExtractMicrodata(html)
	common.LogExtraction("microdata", micro != nil)

	var site *Draft
	if sourceURL != "" && registry != nil {
		site = registry.Extract(html, sourceURL)
		common.LogExtraction("site", site != nil, zap.String("url", sourceURL))
	}

	merged := mergeDrafts(structured, micro, site)

	// 必要欄位仍空缺時才動用啟發式備援
	if merged.Title == "" || len(merged.Ingredients) == 0 {
		generic := ExtractGeneric(html)
		common.LogExtraction("generic", generic != nil)
		merged = mergeDrafts(merged, generic)
	}

	merged.SourceURL = sourceURL

	record, err := Validate(merged)
	if err != nil {
		common.LogWarn("食譜驗證失敗",
			zap.Error(err),
			zap.String("url", sourceURL),
		)
		return nil, err
	}

	common.LogInfo("食譜解析成功",
		zap.String("title", record.Title),
		zap.Int("ingredients", len(record.Ingredients)),
		zap.Int("instructions", len(record.Instructions)),
	)
	return record, nil
}
