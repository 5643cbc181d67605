// Package util provides common utility functions
// Package util 提供通用工具函数
package util

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SlugMaxLength slug 最大长度
const SlugMaxLength = 80

// stripMarks removes combining marks after NFD decomposition, so "café"
// becomes "cafe" instead of losing the letter entirely
// stripMarks 在 NFD 分解后移除组合记号，使 "café" 变为 "cafe" 而不是丢掉整个字母
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify derives a URL-safe identifier from a title.
// Lower-case, diacritics stripped, anything outside [a-z0-9 -] dropped,
// whitespace runs become single hyphens, repeated hyphens collapse, and
// the result is capped at SlugMaxLength characters. Empty input yields "".
// Slugify 从标题派生 URL 安全的标识符。
// 转小写、去除变音符、丢弃 [a-z0-9 -] 之外的字符、空白折叠为连字符、
// 连续连字符合并、截断到 SlugMaxLength。空输入返回空串。
func Slugify(title string) string {
	if title == "" {
		return ""
	}

	s := strings.ToLower(title)
	if normalized, _, err := transform.String(stripMarks, s); err == nil {
		s = normalized
	}

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	s = strings.TrimSpace(b.String())

	// 空白折叠为单个连字符
	s = strings.Join(strings.Fields(s), "-")

	// 合并连续连字符
	for strings.Contains(s, "--") {
		s = strings.ReplaceAll(s, "--", "-")
	}

	if len(s) > SlugMaxLength {
		s = s[:SlugMaxLength]
	}

	// 截断可能留下结尾连字符
	return strings.Trim(s, "-")
}
