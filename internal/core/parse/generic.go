package parse

import (
	"regexp"
	"strings"
)

// 啟發式擷取樣式：常見的 class 命名慣例與標題／圖片標籤
var (
	h1Pattern    = regexp.MustCompile(`(?is)<h1[^>]*>(.*?)</h1>`)
	titlePattern = regexp.MustCompile(`(?is)<title[^>]*>(.*?)</title>`)

	ingredientClassPattern  = regexp.MustCompile(`(?is)<(?:li|p|div|span)[^>]*class=["'][^"']*ingredient[^"']*["'][^>]*>(.*?)</(?:li|p|div|span)>`)
	instructionClassPattern = regexp.MustCompile(`(?is)<(?:li|p|div|span)[^>]*class=["'][^"']*(?:instruction|direction|step)[^"']*["'][^>]*>(.*?)</(?:li|p|div|span)>`)

	ogImagePattern     = regexp.MustCompile(`(?is)<meta[^>]*property=["']og:image["'][^>]*content=["']([^"']+)["']`)
	recipeImagePattern = regexp.MustCompile(`(?is)<img[^>]*class=["'][^"']*recipe[^"']*["'][^>]*src=["']([^"']+)["']`)
)

const (
	minIngredientLen  = 3  // 清理後長度低於此值的食材候選丟棄
	minInstructionLen = 11 // 清理後長度低於此值的步驟候選丟棄
)

// ExtractGeneric 啟發式備援擷取，只在高優先階段留下必要欄位空缺時使用
// 沒有任何命中時回傳 nil
func ExtractGeneric(html string) *Draft {
	d := &Draft{}

	// 標題：第一個 <h1>，否則 <title>（在第一個 | 或 - 處截斷）
	if m := h1Pattern.FindStringSubmatch(html); m != nil {
		d.Title = CleanText(m[1])
	}
	if d.Title == "" {
		if m := titlePattern.FindStringSubmatch(html); m != nil {
			d.Title = CleanText(truncateSiteSuffix(m[1]))
		}
	}

	for _, m := range ingredientClassPattern.FindAllStringSubmatch(html, -1) {
		if cleaned := CleanText(m[1]); len(cleaned) >= minIngredientLen {
			d.Ingredients = append(d.Ingredients, cleaned)
		}
	}

	for _, m := range instructionClassPattern.FindAllStringSubmatch(html, -1) {
		if cleaned := CleanText(m[1]); len(cleaned) >= minInstructionLen {
			d.Instructions = append(d.Instructions, cleaned)
		}
	}

	// 圖片：og:image 優先，否則 class 含 recipe 的 <img>
	if m := ogImagePattern.FindStringSubmatch(html); m != nil {
		d.ImageURL = strings.TrimSpace(m[1])
	} else if m := recipeImagePattern.FindStringSubmatch(html); m != nil {
		d.ImageURL = strings.TrimSpace(m[1])
	}

	if d.IsEmpty() {
		return nil
	}
	return d
}

// truncateSiteSuffix 去掉 <title> 常見的站名後綴（第一個 | 或 - 之後）
func truncateSiteSuffix(title string) string {
	if idx := strings.IndexAny(title, "|-"); idx > 0 {
		return title[:idx]
	}
	return title
}
