package parse

import (
	"math"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"recipe-importer/internal/pkg/common"
)

var (
	durationPattern    = regexp.MustCompile(`(?i)^PT(?:(\d+)H)?(?:(\d+)M)?`)
	nutritionKeepChars = regexp.MustCompile(`[^0-9.]`)
	digitRunPattern    = regexp.MustCompile(`\d+`)
	newlineRunPattern  = regexp.MustCompile(`\n+`)
)

// ParseDuration 解析 ISO-8601 式的時長字串（PT[nH][nM]）為分鐘數
// 缺值或格式不符時回傳 nil——呼叫端不得以 0 代替「未知」
func ParseDuration(raw string) *int {
	if raw == "" {
		return nil
	}
	m := durationPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return nil
	}
	if m[1] == "" && m[2] == "" {
		return nil
	}
	minutes := 0
	if m[1] != "" {
		h, _ := strconv.Atoi(m[1])
		minutes += h * 60
	}
	if m[2] != "" {
		mm, _ := strconv.Atoi(m[2])
		minutes += mm
	}
	return &minutes
}

// ParseNutritionValue 解析營養值字串（如 "240 calories"）為數字
// 移除數字與小數點以外的字元後解析，非有限數值時回傳 nil
func ParseNutritionValue(raw string) *float64 {
	if raw == "" {
		return nil
	}
	cleaned := nutritionKeepChars.ReplaceAllString(raw, "")
	f, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	return &f
}

// CoerceInstructions 將多種步驟表示法統一為字串切片
// 依序支援：單一字串（以連續換行切分）、字串陣列、帶 text/name 欄位的步驟物件陣列
// 清理後為空的項目會被丟棄
func CoerceInstructions(raw interface{}) []string {
	var out []string
	appendCleaned := func(s string) {
		if cleaned := CleanText(s); cleaned != "" {
			out = append(out, cleaned)
		}
	}

	switch v := raw.(type) {
	case string:
		for _, part := range newlineRunPattern.Split(v, -1) {
			appendCleaned(part)
		}
	case []interface{}:
		for _, item := range v {
			switch step := item.(type) {
			case string:
				appendCleaned(step)
			case map[string]interface{}:
				// text 優先於 name
				if text, ok := step["text"].(string); ok && text != "" {
					appendCleaned(text)
				} else if name, ok := step["name"].(string); ok && name != "" {
					appendCleaned(name)
				}
			}
		}
	}
	return out
}

// AbsolutizeImageURL 以來源頁面 URL 解析相對圖片 URL
// 任一方缺失或解析失敗時，原樣保留圖片 URL，永不失敗
func AbsolutizeImageURL(imageURL, sourceURL string) string {
	if imageURL == "" || sourceURL == "" {
		return imageURL
	}
	base, err := url.Parse(sourceURL)
	if err != nil {
		return imageURL
	}
	ref, err := url.Parse(imageURL)
	if err != nil {
		return imageURL
	}
	return base.ResolveReference(ref).String()
}

// extractServings 從 recipeYield 取出第一段連續數字作為份數
func extractServings(raw string) *int {
	m := digitRunPattern.FindString(raw)
	if m == "" {
		return nil
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return nil
	}
	return &n
}

// parseNutritionField 接受字串或 JSON 數字形式的營養值
func parseNutritionField(v interface{}) *float64 {
	if s, ok := v.(string); ok {
		return ParseNutritionValue(s)
	}
	if f, ok := common.NumberToFloat(v); ok {
		return &f
	}
	return nil
}
