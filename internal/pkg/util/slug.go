package util

import (
	"regexp"
	"strings"
)

var slugInvalidRegex = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify 由标题派生 URL 安全的 slug：
// 小写化，非字母数字的连续段折叠为单个连字符，去掉首尾连字符
func Slugify(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugInvalidRegex.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// EscapeSearch 转义自由文本中的正则元字符后才能作为匹配模式使用，
// 防止灾难性回溯与非预期匹配
func EscapeSearch(search string) string {
	return regexp.QuoteMeta(strings.TrimSpace(search))
}
