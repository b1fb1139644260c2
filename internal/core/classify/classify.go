// Package classify 從 ParsedRecipe 的文字推導多面向料理分類。
//
// Classify 是純函數：九個推導各自獨立，任一面向沒有命中就缺席，
// 缺席是有效的最終答案，不做預設值，也沒有錯誤路徑。
package classify

import (
	"strings"

	"recipe-importer/internal/pkg/common"
)

// Classify 計算食譜的料理分類
// 輸入必須是已通過驗證的 ParsedRecipe；重複呼叫結果恆相同
func Classify(r *common.ParsedRecipe) common.CulinaryClassification {
	searchable := searchableText(r)
	ingredients := strings.ToLower(strings.Join(r.Ingredients, " "))
	instructions := strings.ToLower(strings.Join(r.Instructions, " "))

	methods := inferCookingMethods(instructions)

	return common.CulinaryClassification{
		Course:           inferCourse(r, searchable),
		DishForm:         inferDishForm(searchable),
		CookingMethods:   methods,
		Regions:          inferRegions(r.Cuisine, ingredients),
		FlavorProfiles:   inferFlavorProfiles(ingredients),
		FlavorDimensions: inferFlavorDimensions(ingredients),
		DietaryTags:      inferDietaryTags(searchable, ingredients),
		ContextualTags:   inferContextualTags(r, methods),
		IngredientDomain: inferIngredientDomain(ingredients),
	}
}

// searchableText 組合標題、描述、餐段、菜系與標籤為可搜尋文字
func searchableText(r *common.ParsedRecipe) string {
	parts := []string{r.Title, r.Description, r.Course, r.Cuisine}
	parts = append(parts, r.Tags...)
	return strings.ToLower(strings.Join(parts, " "))
}

// inferCourse 推導餐段
// 明示 course 欄位優先；其次掃描可搜尋文字（表順序 = enum 宣告順序）；
// 最後用兩個時段樣式備援；都沒有就缺席
func inferCourse(r *common.ParsedRecipe, searchable string) common.Course {
	if r.Course != "" {
		explicit := strings.ToLower(r.Course)
		for _, rule := range courseRules {
			if rule.pattern.MatchString(explicit) {
				return rule.course
			}
		}
	}
	for _, rule := range courseRules {
		if rule.pattern.MatchString(searchable) {
			return rule.course
		}
	}
	if morningPattern.MatchString(searchable) {
		return common.CourseBreakfast
	}
	if eveningPattern.MatchString(searchable) {
		return common.CourseDinner
	}
	return ""
}

// inferDishForm 推導菜式型態，單表首命中
func inferDishForm(searchable string) common.DishForm {
	for _, rule := range dishFormRules {
		if rule.pattern.MatchString(searchable) {
			return rule.form
		}
	}
	return ""
}

// inferCookingMethods 掃描步驟文字推導烹調方式集合
// 只看步驟，不看標題或描述；每個命中的方式都納入
func inferCookingMethods(instructions string) []common.CookingMethod {
	var methods []common.CookingMethod
	for _, entry := range cookingMethodKeywords {
		for _, kw := range entry.keywords {
			if strings.Contains(instructions, kw) {
				methods = append(methods, entry.method)
				break
			}
		}
	}
	return methods
}

// inferRegions 推導料理文化圈：
// (a) 明示 cuisine 欄位對關鍵字表的命中，聯集
// (b) 食材文字的指標鏈（特徵食材組合）
func inferRegions(cuisine, ingredients string) []common.Region {
	seen := make(map[common.Region]bool)
	var regions []common.Region
	add := func(r common.Region) {
		if !seen[r] {
			seen[r] = true
			regions = append(regions, r)
		}
	}

	if cuisine != "" {
		lowered := strings.ToLower(cuisine)
		for _, entry := range regionCuisineKeywords {
			for _, kw := range entry.keywords {
				if strings.Contains(lowered, kw) {
					add(entry.region)
					break
				}
			}
		}
	}

	// 食材指標鏈：特徵食材的出現直接指向文化圈
	if strings.Contains(ingredients, "gochujang") || strings.Contains(ingredients, "kimchi") {
		add(common.RegionKorean)
	}
	if strings.Contains(ingredients, "miso") || strings.Contains(ingredients, "sake") || strings.Contains(ingredients, "mirin") {
		add(common.RegionJapanese)
	}
	if strings.Contains(ingredients, "fish sauce") && strings.Contains(ingredients, "lemongrass") {
		add(common.RegionThai)
	}
	if strings.Contains(ingredients, "feta") && strings.Contains(ingredients, "tzatziki") {
		add(common.RegionGreek)
	}
	if strings.Contains(ingredients, "garam masala") || strings.Contains(ingredients, "curry leaves") {
		add(common.RegionIndian)
	}
	if strings.Contains(ingredients, "tortilla") && strings.Contains(ingredients, "salsa") &&
		containsAny(ingredients, "cilantro", "lime", "jalape", "cumin") {
		add(common.RegionMexican)
	}

	return regions
}

// inferFlavorProfiles 對食材文字做各自獨立的風味樣式檢查，可複選
func inferFlavorProfiles(ingredients string) []common.FlavorProfile {
	var profiles []common.FlavorProfile
	for _, entry := range flavorProfilePatterns {
		if entry.pattern.MatchString(ingredients) {
			profiles = append(profiles, entry.profile)
		}
	}
	return profiles
}

// inferDietaryTags 推導飲食標籤：
// (a) 可搜尋文字的明示樣式命中
// (b) 食材推導：無肉無魚→vegetarian，再無奶無蛋→vegan；
//     無肉但有魚→pescatarian（取代 vegetarian/vegan）
func inferDietaryTags(searchable, ingredients string) []common.DietaryTag {
	seen := make(map[common.DietaryTag]bool)
	var tags []common.DietaryTag
	add := func(t common.DietaryTag) {
		if !seen[t] {
			seen[t] = true
			tags = append(tags, t)
		}
	}

	for _, entry := range dietaryTagPatterns {
		if entry.pattern.MatchString(searchable) {
			add(entry.tag)
		}
	}

	hasMeat := containsAnyOf(ingredients, meatKeywords)
	hasFish := containsAnyOf(ingredients, fishKeywords)
	hasDairy := containsAnyOf(ingredients, dairyKeywords)
	hasEgg := containsAnyOf(ingredients, eggKeywords)

	switch {
	case !hasMeat && !hasFish:
		add(common.DietVegetarian)
		if !hasDairy && !hasEgg {
			add(common.DietVegan)
		}
	case !hasMeat && hasFish:
		add(common.DietPescatarian)
	}

	return tags
}

// inferContextualTags 推導情境標籤
func inferContextualTags(r *common.ParsedRecipe, methods []common.CookingMethod) []common.ContextualTag {
	var tags []common.ContextualTag

	if r.TotalTime != nil && *r.TotalTime <= 30 {
		tags = append(tags, common.ContextQuick)
	}
	if r.Servings != nil {
		if *r.Servings >= 6 {
			tags = append(tags, common.ContextFamilyStyle)
		}
		if *r.Servings == 1 {
			tags = append(tags, common.ContextSingleServe)
		}
	}
	if onePotPattern.MatchString(strings.ToLower(r.Title)) {
		tags = append(tags, common.ContextOnePot)
	}
	for _, m := range methods {
		if m == common.MethodRawMarinated || m == common.MethodFrozenChilled {
			tags = append(tags, common.ContextNoCook)
			break
		}
	}

	return tags
}

// inferIngredientDomain 統計五桶關鍵字命中數取嚴格最大者
// 全部為 0 時回傳 mixed；同分時迭代順序中先達最大者勝出
func inferIngredientDomain(ingredients string) common.IngredientDomain {
	best := common.DomainMixed
	bestCount := 0
	for _, entry := range ingredientDomainKeywords {
		count := 0
		for _, kw := range entry.keywords {
			if strings.Contains(ingredients, kw) {
				count++
			}
		}
		if count > bestCount {
			bestCount = count
			best = entry.domain
		}
	}
	return best
}

// containsAny 檢查文字是否包含任一關鍵字
func containsAny(s string, keywords ...string) bool {
	return containsAnyOf(s, keywords)
}

func containsAnyOf(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}
