package parse

import (
	"recipe-importer/internal/pkg/common"
)

// Draft 單一擷取階段產出的部分結果
// 欄位皆為選填；合併後才交給驗證器
type Draft struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions []string
	PrepTime     *int
	CookTime     *int
	TotalTime    *int
	Servings     *int
	Cuisine      string
	Course       string
	Difficulty   string
	ImageURL     string
	SourceURL    string
	Author       string
	Nutrition    *common.Nutrition
	Tags         []string
}

// IsEmpty 判斷此草稿是否完全沒有內容
func (d *Draft) IsEmpty() bool {
	return d == nil || (d.Title == "" &&
		d.Description == "" &&
		len(d.Ingredients) == 0 &&
		len(d.Instructions) == 0 &&
		d.PrepTime == nil && d.CookTime == nil && d.TotalTime == nil &&
		d.Servings == nil &&
		d.Cuisine == "" && d.Course == "" && d.Difficulty == "" &&
		d.ImageURL == "" && d.Author == "" &&
		d.Nutrition == nil && len(d.Tags) == 0)
}

// mergeDrafts 依優先順序合併多份部分草稿
// 規則：每個欄位取第一個非空值（first-non-empty-wins）——
// 高優先階段已填的欄位，低優先階段不得覆寫，空值也不會抹掉先前結果
func mergeDrafts(drafts ...*Draft) *Draft {
	merged := &Draft{}
	for _, d := range drafts {
		if d == nil {
			continue
		}
		if merged.Title == "" {
			merged.Title = d.Title
		}
		if merged.Description == "" {
			merged.Description = d.Description
		}
		if len(merged.Ingredients) == 0 {
			merged.Ingredients = d.Ingredients
		}
		if len(merged.Instructions) == 0 {
			merged.Instructions = d.Instructions
		}
		if merged.PrepTime == nil {
			merged.PrepTime = d.PrepTime
		}
		if merged.CookTime == nil {
			merged.CookTime = d.CookTime
		}
		if merged.TotalTime == nil {
			merged.TotalTime = d.TotalTime
		}
		if merged.Servings == nil {
			merged.Servings = d.Servings
		}
		if merged.Cuisine == "" {
			merged.Cuisine = d.Cuisine
		}
		if merged.Course == "" {
			merged.Course = d.Course
		}
		if merged.Difficulty == "" {
			merged.Difficulty = d.Difficulty
		}
		if merged.ImageURL == "" {
			merged.ImageURL = d.ImageURL
		}
		if merged.SourceURL == "" {
			merged.SourceURL = d.SourceURL
		}
		if merged.Author == "" {
			merged.Author = d.Author
		}
		if merged.Nutrition == nil {
			merged.Nutrition = d.Nutrition
		}
		if len(merged.Tags) == 0 {
			merged.Tags = d.Tags
		}
	}
	return merged
}
