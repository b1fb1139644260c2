package classify

import (
	"strings"

	"recipe-importer/internal/pkg/common"
)

// 辣度指標：優先序列表，首命中即定分，不累加
var spiceIndicators = []struct {
	score    int
	keywords []string
}{
	{5, []string{"ghost pepper", "carolina reaper", "habanero"}},
	{4, []string{"thai chili", "scotch bonnet", "serrano"}},
	{3, []string{"jalapeño", "jalapeno", "cayenne", "hot sauce"}},
	{2, []string{"chili flakes", "red pepper flakes", "paprika", "black pepper"}},
	{1, []string{"mild", "bell pepper"}},
}

// additiveGroup 累加型維度的關鍵字組：每組命中貢獻固定分數，總和封頂 5
type additiveGroup struct {
	weight   int
	keywords []string
}

var (
	acidGroups = []additiveGroup{
		{2, []string{"vinegar", "lemon", "lime"}},
		{2, []string{"tamarind", "sumac", "pickled"}},
		{1, []string{"tomato", "yogurt", "buttermilk"}},
	}
	fatGroups = []additiveGroup{
		{2, []string{"butter", "cream", "cheese"}},
		{2, []string{"bacon", "lard", "mayonnaise"}},
		{1, []string{"olive oil", "coconut milk", "sesame oil"}},
	}
	umamiGroups = []additiveGroup{
		{2, []string{"soy sauce", "fish sauce", "miso"}},
		{2, []string{"mushroom", "parmesan", "anchov"}},
		{1, []string{"tomato paste", "worcestershire"}},
	}
	sweetGroups = []additiveGroup{
		{2, []string{"sugar", "honey", "maple"}},
		{2, []string{"chocolate", "caramel", "condensed milk"}},
		{1, []string{"banana", "apple", "dates"}},
	}
	bitterGroups = []additiveGroup{
		{2, []string{"coffee", "espresso", "cocoa"}},
		{2, []string{"grapefruit", "bitters"}},
		{1, []string{"kale", "radicchio", "endive"}},
	}
)

// inferFlavorDimensions 對食材文字計算六個獨立的 0~5 強度分數
func inferFlavorDimensions(ingredients string) *common.FlavorDimensions {
	return &common.FlavorDimensions{
		Spice:  scoreSpice(ingredients),
		Acid:   scoreAdditive(ingredients, acidGroups),
		Fat:    scoreAdditive(ingredients, fatGroups),
		Umami:  scoreAdditive(ingredients, umamiGroups),
		Sweet:  scoreAdditive(ingredients, sweetGroups),
		Bitter: scoreAdditive(ingredients, bitterGroups),
	}
}

// scoreSpice 辣度採優先序首命中，非累加
func scoreSpice(ingredients string) int {
	for _, ind := range spiceIndicators {
		for _, kw := range ind.keywords {
			if strings.Contains(ingredients, kw) {
				return ind.score
			}
		}
	}
	return 0
}

// scoreAdditive 關鍵字組逐組累加，封頂 5
func scoreAdditive(ingredients string, groups []additiveGroup) int {
	score := 0
	for _, g := range groups {
		for _, kw := range g.keywords {
			if strings.Contains(ingredients, kw) {
				score += g.weight
				break
			}
		}
	}
	if score > 5 {
		score = 5
	}
	return score
}
