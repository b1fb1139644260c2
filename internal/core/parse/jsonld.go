package parse

import (
	"regexp"
	"strings"

	"recipe-importer/internal/pkg/common"

	"go.uber.org/zap"
)

var ldJSONPattern = regexp.MustCompile(`(?is)<script[^>]*type=["']application/ld\+json["'][^>]*>(.*?)</script>`)

// ExtractJSONLD 掃描文件中的 JSON-LD 區塊並尋找 Recipe 節點
// 單一區塊解析失敗只跳過該區塊，絕不中斷整體擷取
// 找不到 Recipe 節點時回傳 nil
func ExtractJSONLD(html string) *Draft {
	blocks := ldJSONPattern.FindAllStringSubmatch(html, -1)
	for i, block := range blocks {
		var data interface{}
		if err := common.ParseJSON(block[1], &data); err != nil {
			// 格式錯誤的區塊在本地回收，不往上傳
			common.LogDebug("JSON-LD 區塊解析失敗，跳過",
				zap.Int("block", i),
				zap.Error(err),
			)
			continue
		}
		if node := findRecipeNode(data); node != nil {
			return mapRecipeNode(node)
		}
	}
	return nil
}

// findRecipeNode 深度優先搜尋 @type 為 Recipe 的節點
// 會遞迴進入陣列、@graph 陣列與巢狀物件值，跳過 @context/@id 鍵
func findRecipeNode(data interface{}) map[string]interface{} {
	switch v := data.(type) {
	case []interface{}:
		for _, item := range v {
			if node := findRecipeNode(item); node != nil {
				return node
			}
		}
	case map[string]interface{}:
		if isRecipeType(v["@type"]) {
			return v
		}
		if graph, ok := v["@graph"].([]interface{}); ok {
			for _, item := range graph {
				if node := findRecipeNode(item); node != nil {
					return node
				}
			}
		}
		for key, val := range v {
			if key == "@context" || key == "@id" {
				continue
			}
			if node := findRecipeNode(val); node != nil {
				return node
			}
		}
	}
	return nil
}

// isRecipeType 判斷 @type 是否為 Recipe（可能是字串或字串陣列）
func isRecipeType(t interface{}) bool {
	switch v := t.(type) {
	case string:
		return v == "Recipe"
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok && s == "Recipe" {
				return true
			}
		}
	}
	return false
}

// mapRecipeNode 將 schema.org Recipe 節點逐欄位映射為草稿
func mapRecipeNode(node map[string]interface{}) *Draft {
	d := &Draft{}

	if name, ok := node["name"].(string); ok {
		d.Title = CleanText(name)
	}
	if desc, ok := node["description"].(string); ok {
		d.Description = CleanText(desc)
	}

	if raw, ok := node["recipeIngredient"].([]interface{}); ok {
		for _, item := range raw {
			if s, ok := item.(string); ok {
				if cleaned := CleanText(s); cleaned != "" {
					d.Ingredients = append(d.Ingredients, cleaned)
				}
			}
		}
	}

	d.Instructions = CoerceInstructions(node["recipeInstructions"])

	if s, ok := node["prepTime"].(string); ok {
		d.PrepTime = ParseDuration(s)
	}
	if s, ok := node["cookTime"].(string); ok {
		d.CookTime = ParseDuration(s)
	}
	if s, ok := node["totalTime"].(string); ok {
		d.TotalTime = ParseDuration(s)
	}

	d.Servings = extractYield(node["recipeYield"])

	if s, ok := node["recipeCuisine"].(string); ok {
		d.Cuisine = CleanText(s)
	} else if arr, ok := node["recipeCuisine"].([]interface{}); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			d.Cuisine = CleanText(s)
		}
	}
	if s, ok := node["recipeCategory"].(string); ok {
		d.Course = CleanText(s)
	} else if arr, ok := node["recipeCategory"].([]interface{}); ok && len(arr) > 0 {
		if s, ok := arr[0].(string); ok {
			d.Course = CleanText(s)
		}
	}

	d.ImageURL = extractImage(node["image"])
	d.Author = extractAuthor(node["author"])
	d.Nutrition = extractNutrition(node["nutrition"])
	d.Tags = extractKeywords(node["keywords"])

	return d
}

// extractYield 接受字串或數字形式的份數
func extractYield(v interface{}) *int {
	switch y := v.(type) {
	case string:
		return extractServings(y)
	case []interface{}:
		if len(y) > 0 {
			return extractYield(y[0])
		}
	default:
		if f, ok := common.NumberToFloat(v); ok {
			n := int(f)
			return &n
		}
	}
	return nil
}

// extractImage 依優先順序取出圖片 URL：字串、{url}、{"@id"}、陣列首元素
func extractImage(v interface{}) string {
	switch img := v.(type) {
	case string:
		return strings.TrimSpace(img)
	case map[string]interface{}:
		if u, ok := img["url"].(string); ok {
			return strings.TrimSpace(u)
		}
		if id, ok := img["@id"].(string); ok {
			return strings.TrimSpace(id)
		}
	case []interface{}:
		if len(img) > 0 {
			return extractImage(img[0])
		}
	}
	return ""
}

// extractAuthor 取出作者：字串或 {name}
func extractAuthor(v interface{}) string {
	switch a := v.(type) {
	case string:
		return CleanText(a)
	case map[string]interface{}:
		if name, ok := a["name"].(string); ok {
			return CleanText(name)
		}
	case []interface{}:
		if len(a) > 0 {
			return extractAuthor(a[0])
		}
	}
	return ""
}

// extractNutrition 映射 schema.org NutritionInformation 的 *Content 欄位
func extractNutrition(v interface{}) *common.Nutrition {
	node, ok := v.(map[string]interface{})
	if !ok {
		return nil
	}
	n := &common.Nutrition{
		Calories: parseNutritionField(node["calories"]),
		Protein:  parseNutritionField(node["proteinContent"]),
		Carbs:    parseNutritionField(node["carbohydrateContent"]),
		Fat:      parseNutritionField(node["fatContent"]),
		Fiber:    parseNutritionField(node["fiberContent"]),
		Sugar:    parseNutritionField(node["sugarContent"]),
		Sodium:   parseNutritionField(node["sodiumContent"]),
	}
	if n.Calories == nil && n.Protein == nil && n.Carbs == nil &&
		n.Fat == nil && n.Fiber == nil && n.Sugar == nil && n.Sodium == nil {
		return nil
	}
	return n
}

// extractKeywords 取出標籤：逗號分隔字串或字串陣列
func extractKeywords(v interface{}) []string {
	var tags []string
	switch kw := v.(type) {
	case string:
		for _, part := range strings.Split(kw, ",") {
			if cleaned := CleanText(part); cleaned != "" {
				tags = append(tags, cleaned)
			}
		}
	case []interface{}:
		for _, item := range kw {
			if s, ok := item.(string); ok {
				if cleaned := CleanText(s); cleaned != "" {
					tags = append(tags, cleaned)
				}
			}
		}
	}
	return tags
}
