package parse

import "regexp"

var (
	microNamePattern        = regexp.MustCompile(`(?is)itemprop=["']name["'][^>]*>(.*?)<`)
	microIngredientPattern  = regexp.MustCompile(`(?is)itemprop=["']recipeIngredient["'][^>]*>(.*?)</`)
	microInstructionPattern = regexp.MustCompile(`(?is)itemprop=["']recipeInstructions["'][^>]*>(.*?)</`)
)

// ExtractMicrodata 以 itemprop 標註擷取欄位，作為 JSON-LD 之後的次要結構化來源
// 沒有任何命中時回傳 nil
func ExtractMicrodata(html string) *Draft {
	d := &Draft{}

	if m := microNamePattern.FindStringSubmatch(html); m != nil {
		d.Title = CleanText(m[1])
	}

	for _, m := range microIngredientPattern.FindAllStringSubmatch(html, -1) {
		if cleaned := CleanText(m[1]); cleaned != "" {
			d.Ingredients = append(d.Ingredients, cleaned)
		}
	}

	for _, m := range microInstructionPattern.FindAllStringSubmatch(html, -1) {
		if cleaned := CleanText(m[1]); cleaned != "" {
			d.Instructions = append(d.Instructions, cleaned)
		}
	}

	if d.IsEmpty() {
		return nil
	}
	return d
}
