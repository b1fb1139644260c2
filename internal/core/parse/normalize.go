package parse

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// 只處理常見實體，罕見實體保留原樣
	entityReplacer = strings.NewReplacer(
		"&nbsp;", " ",
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
	)
)

// CleanText 清理原始字串：移除標籤、解碼實體、折疊空白、去除首尾空白
// 永遠回傳字串（可能為空），不會失敗
func CleanText(raw string) string {
	s := tagPattern.ReplaceAllString(raw, " ")
	s = entityReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
