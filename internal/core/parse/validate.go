package parse

import (
	"recipe-importer/internal/pkg/common"
)

// Validate 將合併後的草稿清理、過濾並檢查最低可用內容
// 通過時回傳不可變的 ParsedRecipe；否則回傳帶欄位名稱的 ValidationError
func Validate(d *Draft) (*common.ParsedRecipe, error) {
	title := CleanText(d.Title)

	var ingredients []string
	for _, ing := range d.Ingredients {
		if cleaned := CleanText(ing); len(cleaned) > 2 {
			ingredients = append(ingredients, cleaned)
		}
	}

	var instructions []string
	for _, ins := range d.Instructions {
		if cleaned := CleanText(ins); len(cleaned) > 10 {
			instructions = append(instructions, cleaned)
		}
	}

	var missing []string
	if title == "" {
		missing = append(missing, "title")
	}
	if len(ingredients) == 0 {
		missing = append(missing, "ingredients")
	}
	if len(instructions) == 0 {
		missing = append(missing, "instructions")
	}
	if len(missing) > 0 {
		return nil, common.NewValidationError(missing...)
	}

	var tags []string
	for _, tag := range d.Tags {
		if cleaned := CleanText(tag); cleaned != "" {
			tags = append(tags, cleaned)
		}
	}

	return &common.ParsedRecipe{
		Title:        title,
		Description:  CleanText(d.Description),
		Ingredients:  ingredients,
		Instructions: instructions,
		PrepTime:     d.PrepTime,
		CookTime:     d.CookTime,
		TotalTime:    d.TotalTime,
		Servings:     d.Servings,
		Cuisine:      CleanText(d.Cuisine),
		Course:       CleanText(d.Course),
		Difficulty:   CleanText(d.Difficulty),
		ImageURL:     AbsolutizeImageURL(d.ImageURL, d.SourceURL),
		SourceURL:    d.SourceURL,
		Author:       CleanText(d.Author),
		Nutrition:    d.Nutrition,
		Tags:         tags,
	}, nil
}
